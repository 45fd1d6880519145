package output

import (
	"fmt"
	"io"
	"strings"

	"wow-analyzer/model"
)

// RenderText writes a plain-text report of the statistics: one box per
// analyzer with its fields, tooltip and any suggestions.
func RenderText(w io.Writer, statistics []model.Statistic) error {
	var b strings.Builder
	for i, s := range statistics {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "== %s [%s]\n", s.Title, s.Category)
		for _, f := range s.Fields {
			fmt.Fprintf(&b, "  %s %s\n", FormatField(f), f.Label)
		}
		for _, line := range s.Tooltip {
			fmt.Fprintf(&b, "  > %s\n", line)
		}
		for _, sg := range s.Suggestions {
			fmt.Fprintf(&b, "  ! [%s] %s %s. %s\n", sg.Importance, sg.Text, sg.Actual, sg.Recommended)
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
