package compiler

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update", false, "update golden sections in testdata")

// TestGolden translates the "input.step" section of every testdata archive and
// compares the result with its "want.c" section.
func TestGolden(t *testing.T) {
	cases, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no golden cases found")
	}

	for _, tc := range cases {
		name := strings.TrimSuffix(filepath.Base(tc), filepath.Ext(tc))

		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(tc)
			if err != nil {
				t.Fatal(err)
			}

			input := section(t, ar, "input.step")
			node, err := NewParser().Parse(input)
			if err != nil {
				t.Fatalf("Parse(): %v", err)
			}
			lines, err := NewEmitter().Lines(node)
			if err != nil {
				t.Fatalf("Lines(): %v", err)
			}
			got := strings.Join(lines, "\n") + "\n"

			if *update {
				for i := range ar.Files {
					if ar.Files[i].Name == "want.c" {
						ar.Files[i].Data = []byte(got)
					}
				}
				if err := os.WriteFile(tc, txtar.Format(ar), 0o644); err != nil {
					t.Fatalf("unable to update %q: %v", tc, err)
				}
				return
			}

			want := string(section(t, ar, "want.c"))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("(-want +got): \n%s", diff)
			}
		})
	}
}

func section(t *testing.T, ar *txtar.Archive, name string) []byte {
	t.Helper()
	for _, f := range ar.Files {
		if f.Name == name {
			return f.Data
		}
	}
	t.Fatalf("archive has no %q section", name)
	return nil
}
