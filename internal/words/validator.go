// Package words checks candidate arrangements against an injected dictionary.
package words

import (
	"strings"

	"github.com/aretw0/isaw/pkg/ports"
)

// Validator performs one membership test per candidate.
// It borrows the dictionary and never modifies it.
type Validator struct {
	dict ports.Dictionary
	fold bool
}

// New returns a Validator over dict. When fold is set, candidates are lowercased
// before lookup, so dict is expected to hold lowercased words.
func New(dict ports.Dictionary, fold bool) *Validator {
	return &Validator{dict: dict, fold: fold}
}

// Valid reports whether candidate is a known word.
func (v *Validator) Valid(candidate string) bool {
	if v.fold {
		candidate = strings.ToLower(candidate)
	}
	return v.dict.Contains(candidate)
}

// Pruner returns a check that rejects prefixes no word starts with, folded like Valid.
// It returns nil when the dictionary cannot answer prefix queries.
func (v *Validator) Pruner() func(prefix string) bool {
	pd, ok := v.dict.(ports.PrefixDictionary)
	if !ok {
		return nil
	}
	if !v.fold {
		return pd.HasPrefix
	}
	return func(prefix string) bool {
		return pd.HasPrefix(strings.ToLower(prefix))
	}
}
