package password

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Strength is the three-tier label Estimate assigns.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// MarshalText lets the label serialise by name.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Score returns the 0-7 heuristic score of pw. Length thresholds are
// cumulative and counted in runes.
func Score(pw string) int {
	score := 0

	n := utf8.RuneCountInString(pw)
	for _, threshold := range []int{8, 12, 16} {
		if n >= threshold {
			score++
		}
	}

	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.In(r, unicode.Upper, unicode.Other_Uppercase):
			upper = true
		case unicode.In(r, unicode.Lower, unicode.Other_Lowercase):
			lower = true
		case unicode.In(r, unicode.Nd, digitSigns):
			digit = true
		}
		if strings.ContainsRune(Symbols, r) {
			symbol = true
		}
	}
	for _, has := range []bool{upper, lower, digit, symbol} {
		if has {
			score++
		}
	}
	return score
}

// Estimate maps Score onto a Strength. It never fails.
func Estimate(pw string) Strength {
	switch score := Score(pw); {
	case score <= 3:
		return Weak
	case score <= 5:
		return Medium
	default:
		return Strong
	}
}

// digitSigns holds the characters outside Nd that still carry a single digit
// value (superscripts, subscripts, circled and parenthesised digits).
var digitSigns = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}
