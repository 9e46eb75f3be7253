package table

import (
	"fmt"
	"strings"

	"github.com/aretw0/isaw/pkg/domain"
)

// GenerateMarkdown produces a Markdown table of per-length counts for mode,
// followed by a bold grand total line.
func GenerateMarkdown(t *domain.CountTable, mode domain.Mode) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "| Length | %s |\n", columnTitle(mode))
	sb.WriteString("|---:|---:|\n")
	for _, row := range t.Rows {
		fmt.Fprintf(&sb, "| %d | %s |\n", row.Length, row.Count(mode).String())
	}
	fmt.Fprintf(&sb, "\n**Total: %s**\n", t.Total(mode).String())

	return sb.String()
}

// GeneratePlain produces the same information as aligned plain text lines.
func GeneratePlain(t *domain.CountTable, mode domain.Mode) string {
	var sb strings.Builder

	width := len(fmt.Sprint(t.Range.Max))
	for _, row := range t.Rows {
		fmt.Fprintf(&sb, "  Length %*d: %s\n", width, row.Length, row.Count(mode).String())
	}

	return sb.String()
}

func columnTitle(mode domain.Mode) string {
	switch mode {
	case domain.ModeCombination:
		return "Combinations"
	case domain.ModeProduct:
		return "Products"
	default:
		return "Permutations"
	}
}
