package password

import (
	cerr "github.com/cockroachdb/errors"
)

// MinLength is the shortest password Generate will produce.
const MinLength = 8

// Policy is the set of options a single Generate call works from.
type Policy struct {
	Length         int  `json:"length" yaml:"length"`
	IncludeUpper   bool `json:"include_upper" yaml:"include_upper"`
	IncludeLower   bool `json:"include_lower" yaml:"include_lower"`
	IncludeDigits  bool `json:"include_digits" yaml:"include_digits"`
	IncludeSymbols bool `json:"include_symbols" yaml:"include_symbols"`
	AvoidAmbiguous bool `json:"avoid_ambiguous" yaml:"avoid_ambiguous"`
}

// DefaultPolicy matches the form's initial state.
func DefaultPolicy() Policy {
	return Policy{
		Length:         16,
		IncludeUpper:   true,
		IncludeLower:   true,
		IncludeDigits:  true,
		IncludeSymbols: true,
		AvoidAmbiguous: true,
	}
}

// Validate checks the length first, then the class selection.
func (p Policy) Validate() error {
	if p.Length < MinLength {
		return cerr.WithHintf(
			cerr.Wrapf(ErrInvalidLength, "length %d is below the minimum of %d", p.Length, MinLength),
			"use a length of at least %d characters", MinLength)
	}
	if len(p.Classes()) == 0 {
		return cerr.WithHint(ErrNoCharacterClassSelected,
			"enable at least one of uppercase, lowercase, digits or symbols")
	}
	return nil
}

// Classes lists the selected classes in pool order.
func (p Policy) Classes() []Class {
	var classes []Class
	if p.IncludeUpper {
		classes = append(classes, ClassUpper)
	}
	if p.IncludeLower {
		classes = append(classes, ClassLower)
	}
	if p.IncludeDigits {
		classes = append(classes, ClassDigit)
	}
	if p.IncludeSymbols {
		classes = append(classes, ClassSymbol)
	}
	return classes
}

// Pools returns one pool per selected class, in the same order as Classes.
func (p Policy) Pools() []string {
	classes := p.Classes()
	pools := make([]string, 0, len(classes))
	for _, c := range classes {
		pools = append(pools, Pool(c, p.AvoidAmbiguous))
	}
	return pools
}

// AsMap is the policy as plain data, used as Rego input.
func (p Policy) AsMap() map[string]any {
	return map[string]any{
		"length":          p.Length,
		"include_upper":   p.IncludeUpper,
		"include_lower":   p.IncludeLower,
		"include_digits":  p.IncludeDigits,
		"include_symbols": p.IncludeSymbols,
		"avoid_ambiguous": p.AvoidAmbiguous,
	}
}
