package odds

import (
	"roulette_backend/internal/model"
)

// Entry - payout of a selector and the outcomes it covers.
type Entry struct {
	Multiplier uint64
	Covers     map[string]struct{}
}

// Table - odds table of one game variant.
type Table struct {
	outcomes []string
	entries  map[string]Entry
}

// Built once at init and only read afterwards.
var tables = map[model.GameVariant]*Table{
	model.EuropeanRoulette: newEuropeanTable(),
}

// For returns the table of a variant.
func For(variant model.GameVariant) (*Table, bool) {
	t, ok := tables[variant]
	return t, ok
}

// Lookup returns the entry of a selector under a variant.
func Lookup(variant model.GameVariant, selector string) (Entry, bool) {
	t, ok := For(variant)
	if !ok {
		return Entry{}, false
	}
	return t.Lookup(selector)
}

// Multiplier returns the payout multiplier of a recognized selector.
func Multiplier(variant model.GameVariant, selector string) (uint64, bool) {
	e, ok := Lookup(variant, selector)
	if !ok {
		return 0, false
	}
	return e.Multiplier, true
}

// Covers reports whether the selector wins when outcome is drawn.
func Covers(variant model.GameVariant, selector, outcome string) bool {
	e, ok := Lookup(variant, selector)
	if !ok {
		return false
	}
	_, ok = e.Covers[outcome]
	return ok
}

// Outcomes returns the outcome space of a variant, nil for unknown variants.
func Outcomes(variant model.GameVariant) []string {
	t, ok := For(variant)
	if !ok {
		return nil
	}
	return t.Outcomes()
}

func (t *Table) Lookup(selector string) (Entry, bool) {
	e, ok := t.entries[selector]
	return e, ok
}

// Outcomes returns a copy of the outcome space in draw order.
func (t *Table) Outcomes() []string {
	out := make([]string, len(t.outcomes))
	copy(out, t.outcomes)
	return out
}

// Selectors returns every recognized selector, in no particular order.
func (t *Table) Selectors() []string {
	out := make([]string, 0, len(t.entries))
	for s := range t.entries {
		out = append(out, s)
	}
	return out
}

func (t *Table) add(selector string, multiplier uint64, covers ...string) {
	set := make(map[string]struct{}, len(covers))
	for _, c := range covers {
		set[c] = struct{}{}
	}
	t.entries[selector] = Entry{Multiplier: multiplier, Covers: set}
}
