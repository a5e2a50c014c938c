package veedor

import (
	"fmt"
)

// ValuationMode selects how raw registry amounts are rescaled before
// aggregation.
type ValuationMode int

const (
	// Nominal leaves amounts exactly as published.
	Nominal ValuationMode = iota
	// Real restates amounts in the purchasing power of the latest month
	// present in the inflation index.
	Real
	// Dollar converts amounts using the exchange-rate table.
	Dollar
)

func (m ValuationMode) String() string {
	switch m {
	case Nominal:
		return "nominal"
	case Real:
		return "real"
	case Dollar:
		return "usd"
	default:
		return "unknown"
	}
}

// ParseValuationMode parses a string into a ValuationMode.
func ParseValuationMode(s string) (ValuationMode, error) {
	switch s {
	case "nominal":
		return Nominal, nil
	case "real":
		return Real, nil
	case "usd":
		return Dollar, nil
	default:
		return 0, fmt.Errorf("unknown valuation mode: %q", s)
	}
}

// Normalizer rescales individual debt records per the selected valuation
// mode. It is applied to every record before aggregation, so per-month totals
// and per-institution details stay consistent.
type Normalizer struct {
	mode      ValuationMode
	inflation *IndexTable
	dollar    *IndexTable
	latest    float64 // inflation index at its chronologically last month
}

// NewNormalizer builds a normalizer for the mode using the dataset's index
// tables.
func NewNormalizer(mode ValuationMode, meta Meta) *Normalizer {
	n := &Normalizer{mode: mode, inflation: meta.Inflation, dollar: meta.Dollar}
	if n.inflation != nil {
		_, n.latest = n.inflation.Latest()
	}
	return n
}

// Mode returns the valuation mode this normalizer applies.
func (n *Normalizer) Mode() ValuationMode { return n.mode }

// Apply returns the record's amount under the valuation mode.
//
// In Real mode a record dated on a month missing from the inflation table is
// left unchanged (fallback to nominal for that single record); an empty or
// degenerate inflation table makes Real behave as Nominal entirely.
//
// In Dollar mode a missing or non-positive exchange rate yields an explicit
// zero: unknown FX means no dollar value can be stated. The asymmetry with
// Real mode is deliberate and must be preserved.
func (n *Normalizer) Apply(r DebtRecord) Amount {
	nominal := Thousands(r.Amount, Pesos)
	switch n.mode {
	case Real:
		if n.inflation == nil || n.latest <= 0 {
			return nominal
		}
		at, ok := n.inflation.Get(r.Month)
		if !ok || at <= 0 {
			return nominal
		}
		return nominal.Rescale(n.latest, at)
	case Dollar:
		if n.dollar == nil {
			return Zero(Dollars)
		}
		rate, ok := n.dollar.Get(r.Month)
		if !ok || rate <= 0 {
			return Zero(Dollars)
		}
		return nominal.Convert(rate, Dollars)
	default:
		return nominal
	}
}
