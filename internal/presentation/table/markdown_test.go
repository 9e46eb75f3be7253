package table_test

import (
	"strings"
	"testing"

	"github.com/aretw0/isaw/internal/counter"
	"github.com/aretw0/isaw/internal/presentation/table"
	"github.com/aretw0/isaw/pkg/domain"
)

func TestGenerateMarkdown(t *testing.T) {
	ct, err := counter.Table(4, domain.LengthRange{})
	if err != nil {
		t.Fatalf("counter.Table() error = %v", err)
	}

	tests := []struct {
		name     string
		mode     domain.Mode
		contains []string
	}{
		{
			name:     "Permutations",
			mode:     domain.ModePermutation,
			contains: []string{"| Length | Permutations |", "| 2 | 12 |", "| 4 | 24 |", "**Total: 64**"},
		},
		{
			name:     "Combinations",
			mode:     domain.ModeCombination,
			contains: []string{"| Length | Combinations |", "| 2 | 6 |", "**Total: 15**"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := table.GenerateMarkdown(ct, tt.mode)
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("GenerateMarkdown() missing %q\nGot:\n%s", want, output)
				}
			}
		})
	}
}

func TestGeneratePlain(t *testing.T) {
	ct, err := counter.Table(10, domain.LengthRange{Min: 9})
	if err != nil {
		t.Fatalf("counter.Table() error = %v", err)
	}

	want := "  Length  9: 3628800\n  Length 10: 3628800\n"
	if got := table.GeneratePlain(ct, domain.ModePermutation); got != want {
		t.Errorf("GeneratePlain() = %q, want %q", got, want)
	}
}
