package password

import "strings"

const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()-_=+[]{};:,.?/"

	// Ambiguous glyphs are dropped from the letter and digit pools when requested.
	Ambiguous = "O0Il1"
)

// Class is one character class a policy can select.
type Class int

const (
	ClassUpper Class = iota
	ClassLower
	ClassDigit
	ClassSymbol
)

func (c Class) String() string {
	switch c {
	case ClassUpper:
		return "uppercase"
	case ClassLower:
		return "lowercase"
	case ClassDigit:
		return "digits"
	case ClassSymbol:
		return "symbols"
	default:
		return "unknown"
	}
}

// Pool returns the candidate characters for c. The symbol pool is never
// filtered for ambiguity.
func Pool(c Class, avoidAmbiguous bool) string {
	var base string
	switch c {
	case ClassUpper:
		base = Uppercase
	case ClassLower:
		base = Lowercase
	case ClassDigit:
		base = Digits
	case ClassSymbol:
		return Symbols
	default:
		return ""
	}
	if !avoidAmbiguous {
		return base
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(Ambiguous, r) {
			return -1
		}
		return r
	}, base)
}
