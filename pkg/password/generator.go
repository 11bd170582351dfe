package password

import (
	"io"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/crypto"
	cerr "github.com/cockroachdb/errors"
)

// Generator draws every character and the final shuffle from one source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading entropy from r. Production code
// should use Generate, which reads from crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate builds a password for p using crypto/rand.
func Generate(p Policy) (string, error) {
	return NewGenerator(crypto.SecureSource).Generate(p)
}

// Generate builds a password of exactly p.Length characters holding at least
// one character of every selected class.
func (g *Generator) Generate(p Policy) (string, error) {
	// ASSESS
	if err := p.Validate(); err != nil {
		return "", err
	}
	pools := p.Pools()
	all := strings.Join(pools, "")

	// INTERVENE
	pw := make([]byte, 0, p.Length)
	for _, pool := range pools {
		c, err := crypto.RandomChar(g.rand, pool)
		if err != nil {
			return "", cerr.Wrap(err, "draw guaranteed class character")
		}
		pw = append(pw, c)
	}
	for len(pw) < p.Length {
		c, err := crypto.RandomChar(g.rand, all)
		if err != nil {
			return "", cerr.Wrap(err, "draw filler character")
		}
		pw = append(pw, c)
	}
	if err := crypto.Shuffle(g.rand, pw); err != nil {
		return "", cerr.Wrap(err, "shuffle password")
	}

	// EVALUATE
	if len(pw) != p.Length {
		return "", cerr.AssertionFailedf("generated %d characters, want %d", len(pw), p.Length)
	}
	return string(pw), nil
}
