package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/stepc/pkg/domain"
)

// GraphOverlay marks a state to highlight on the diagram.
type GraphOverlay struct {
	CurrentState string
}

// GenerateMermaid produces a Mermaid flowchart from program transitions.
// Every state of the table is drawn, used or not:
// - Entry pseudo-state: ((Circle))
// - Initial state: ([Stadium])
// - Default: [Rectangle]
// Conditions label the edges. An overlay, if provided, highlights one state.
func GenerateMermaid(transitions []Transition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, t := range transitions {
		if t.From == EntryNode {
			sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", EntryNode, EntryNode))
			break
		}
	}

	for _, st := range domain.States() {
		opener, closer := "[", "]"
		if st.Name == domain.InitialState {
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s <br/> %d\"%s\n", st.Name, opener, st.Name, st.Code, closer))
	}

	for _, t := range transitions {
		arrow := "-->"
		if t.Condition != "" {
			// Escape double quotes in condition for Mermaid label
			safeCondition := strings.ReplaceAll(t.Condition, "\"", "'")
			arrow = fmt.Sprintf("-- \"%s\" -->", safeCondition)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", t.From, arrow, t.To))
	}

	if overlay != nil && overlay.CurrentState != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current;\n", overlay.CurrentState))
	}

	return sb.String()
}
