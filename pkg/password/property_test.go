package password

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func policyGen() *rapid.Generator[Policy] {
	return rapid.Custom(func(t *rapid.T) Policy {
		p := Policy{
			Length:         rapid.IntRange(MinLength, 128).Draw(t, "length"),
			IncludeUpper:   rapid.Bool().Draw(t, "upper"),
			IncludeLower:   rapid.Bool().Draw(t, "lower"),
			IncludeDigits:  rapid.Bool().Draw(t, "digits"),
			IncludeSymbols: rapid.Bool().Draw(t, "symbols"),
			AvoidAmbiguous: rapid.Bool().Draw(t, "avoid_ambiguous"),
		}
		if len(p.Classes()) == 0 {
			p.IncludeLower = true
		}
		return p
	})
}

func TestGenerateProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := policyGen().Draw(t, "policy")

		pw, err := Generate(p)
		if err != nil {
			t.Fatalf("valid policy %+v rejected: %v", p, err)
		}
		if len(pw) != p.Length {
			t.Fatalf("length %d, want %d", len(pw), p.Length)
		}

		allowed := strings.Join(p.Pools(), "")
		for _, r := range pw {
			if !strings.ContainsRune(allowed, r) {
				t.Fatalf("%q outside selected pools", r)
			}
		}
		for i, pool := range p.Pools() {
			if !strings.ContainsAny(pw, pool) {
				t.Fatalf("no %s character in %q", p.Classes()[i], pw)
			}
		}
		if p.AvoidAmbiguous && strings.ContainsAny(pw, Ambiguous) {
			t.Fatalf("ambiguous glyph in %q", pw)
		}
	})
}

func TestScoreProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pw := rapid.String().Draw(t, "password")

		score := Score(pw)
		if score < 0 || score > 7 {
			t.Fatalf("score %d out of range", score)
		}
		if Estimate(pw) != Estimate(pw) {
			t.Fatalf("estimate is not deterministic for %q", pw)
		}

		// Appending characters can only add length points or classes.
		extra := rapid.SampledFrom([]string{"A", "a", "7", "!", "xxxx"}).Draw(t, "extra")
		if Estimate(pw+extra) < Estimate(pw) {
			t.Fatalf("label dropped after appending %q to %q", extra, pw)
		}
	})
}
