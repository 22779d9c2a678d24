package repairkit

import (
	"math"
	"sort"

	"github.com/osse101/GearRepair_Go/internal/domain"
)

// EmptyThreshold is the amount below which a stored material counts as gone.
// Entries that fall below it are deleted rather than kept as residue.
const EmptyThreshold = 0.01

// MaterialOrder supplies the attributes ledger entries are ordered by
type MaterialOrder interface {
	Tier(m domain.MaterialInstance) int
	DisplayName(m domain.MaterialInstance) string
}

// LedgerEntry is one stored material with its ordering attributes resolved
type LedgerEntry struct {
	Material domain.MaterialInstance
	Amount   float64
	Tier     int
	Name     string
}

// Ledger records how much of each material a repair kit holds. Keys that
// could not be resolved are carried through Encode untouched but are not
// counted or offered for repairs.
type Ledger struct {
	amounts    map[domain.MaterialInstance]float64
	unresolved map[string]float64
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		amounts:    make(map[domain.MaterialInstance]float64),
		unresolved: make(map[string]float64),
	}
}

// DecodeLedger builds a ledger from its persisted key to amount form. It
// returns the keys that failed to decode.
func DecodeLedger(storage map[string]float64) (*Ledger, []string) {
	l := NewLedger()
	var bad []string
	for key, amount := range storage {
		m, err := domain.ParseShorthand(key)
		if err != nil {
			l.unresolved[key] = amount
			bad = append(bad, key)
			continue
		}
		if !validAmount(amount) || amount < EmptyThreshold {
			continue
		}
		l.amounts[m] += amount
	}
	sort.Strings(bad)
	return l, bad
}

// Encode returns the persisted form of the ledger
func (l *Ledger) Encode() map[string]float64 {
	out := make(map[string]float64, len(l.amounts)+len(l.unresolved))
	for key, amount := range l.unresolved {
		out[key] = amount
	}
	for m, amount := range l.amounts {
		out[m.Shorthand()] = amount
	}
	return out
}

// Retain moves every material for which keep returns false out of the
// active ledger and returns them sorted by shorthand.
func (l *Ledger) Retain(keep func(m domain.MaterialInstance) bool) []domain.MaterialInstance {
	var dropped []domain.MaterialInstance
	for m, amount := range l.amounts {
		if keep(m) {
			continue
		}
		l.unresolved[m.Shorthand()] = amount
		delete(l.amounts, m)
		dropped = append(dropped, m)
	}
	sort.Slice(dropped, func(i, j int) bool {
		return dropped[i].Shorthand() < dropped[j].Shorthand()
	})
	return dropped
}

// Amount returns the stored amount of a material
func (l *Ledger) Amount(m domain.MaterialInstance) float64 {
	return l.amounts[m]
}

// Total returns the sum of all stored amounts
func (l *Ledger) Total() float64 {
	total := 0.0
	for _, amount := range l.amounts {
		total += amount
	}
	return total
}

// Len returns the number of stored materials
func (l *Ledger) Len() int {
	return len(l.amounts)
}

// IsEmpty reports whether nothing is stored
func (l *Ledger) IsEmpty() bool {
	return len(l.amounts) == 0
}

// Add stores amount more of a material. Non-positive amounts are ignored.
// Capacity is not checked here; see Kit.AddMaterial.
func (l *Ledger) Add(m domain.MaterialInstance, amount float64) {
	if !validAmount(amount) || amount <= 0 {
		return
	}
	l.amounts[m] += amount
}

// Remove takes amount of a material out of the ledger. An entry left below
// EmptyThreshold is deleted.
func (l *Ledger) Remove(m domain.MaterialInstance, amount float64) {
	current, ok := l.amounts[m]
	if !ok || !validAmount(amount) {
		return
	}
	remaining := current - amount
	if remaining < EmptyThreshold {
		delete(l.amounts, m)
		return
	}
	l.amounts[m] = remaining
}

// Entries returns the stored materials ordered by ascending tier, then
// display name, then shorthand.
func (l *Ledger) Entries(order MaterialOrder) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(l.amounts))
	for m, amount := range l.amounts {
		entries = append(entries, LedgerEntry{
			Material: m,
			Amount:   amount,
			Tier:     order.Tier(m),
			Name:     order.DisplayName(m),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entryLess(entries[i], entries[j])
	})
	return entries
}

// Clone returns an independent copy of the ledger
func (l *Ledger) Clone() *Ledger {
	c := NewLedger()
	for m, amount := range l.amounts {
		c.amounts[m] = amount
	}
	for key, amount := range l.unresolved {
		c.unresolved[key] = amount
	}
	return c
}

func entryLess(a, b LedgerEntry) bool {
	if a.Tier != b.Tier {
		return a.Tier < b.Tier
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Material.Shorthand() < b.Material.Shorthand()
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
