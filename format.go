package deptbrain

import (
	"fmt"
	"strings"
)

// FormatAnswer formats an answer for terminal display. The answer text comes
// first, followed by the route and the evidence behind it. Retrieval sources
// show their distance.
func FormatAnswer(a *Answer) string {
	var sb strings.Builder

	sb.WriteString(a.Text)
	sb.WriteString("\n\nroute: ")
	sb.WriteString(string(a.Route))

	if len(a.Sources) > 0 {
		sb.WriteString("\nsources:")
		for _, s := range a.Sources {
			if s.Score != nil {
				fmt.Fprintf(&sb, "\n  [%s] %s (distance %.4f)", s.ID, s.Text, *s.Score)
			} else {
				fmt.Fprintf(&sb, "\n  [%s] %s", s.ID, s.Text)
			}
		}
	}

	return sb.String()
}
