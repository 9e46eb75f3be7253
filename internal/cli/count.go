package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/aretw0/isaw/internal/config"
	"github.com/aretw0/isaw/internal/presentation/table"
	"github.com/aretw0/isaw/internal/presentation/tui"
	"github.com/aretw0/isaw/pkg/domain"
)

// CountOptions contains the flags of the count command.
type CountOptions struct {
	Letters      string
	Min          int
	Max          int
	Combinations bool
}

// Count prints per-length totals without generating any arrangement.
// On an interactive terminal the table is rendered as Markdown.
func (a *App) Count(o CountOptions) error {
	letters, err := SanitizeInput(o.Letters)
	if err != nil {
		return fmt.Errorf("invalid letters: %w", err)
	}

	mode := domain.ModePermutation
	if o.Combinations {
		mode = domain.ModeCombination
	}

	t, err := a.Engine.Count(utf8.RuneCountInString(letters), domain.LengthRange{Min: o.Min, Max: o.Max})
	if err != nil {
		return err
	}

	a.printer.Header("Counting %ss for '%s'", mode, letters)

	if a.color != config.ColorNever && tui.IsTerminal(a.Out) {
		out, err := a.renderMarkdown(t, mode)
		if err == nil {
			a.printer.Raw(out)
			return nil
		}
		a.Logger.Warn("Markdown rendering failed, falling back to plain text", "error", err)
	}

	a.printer.Separator()
	a.printer.Raw(table.GeneratePlain(t, mode))
	a.printer.Separator()
	a.printer.Summary("Total: %s", t.Total(mode).String())
	return nil
}

func (a *App) renderMarkdown(t *domain.CountTable, mode domain.Mode) (string, error) {
	render, err := tui.NewRenderer(tui.Width(a.Out))
	if err != nil {
		return "", err
	}
	return render(table.GenerateMarkdown(t, mode))
}
