package stepc

// Version is the release of the stepc module. Release builds override it with
// -ldflags "-X github.com/aretw0/stepc.Version=...".
var Version = "0.1.0"
