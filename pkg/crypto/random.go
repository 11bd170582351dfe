/* pkg/crypto/random.go */

package crypto

import (
	"crypto/rand"
	"io"
	"math/big"

	cerr "github.com/cockroachdb/errors"
)

// SecureSource is the only entropy source used in production.
var SecureSource io.Reader = rand.Reader

// RandomIndex returns a uniform int in [0, n) drawn from r.
func RandomIndex(r io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, cerr.AssertionFailedf("random index requested for empty range (n=%d)", n)
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, cerr.Wrap(err, "read from entropy source")
	}
	return int(v.Int64()), nil
}

// RandomChar picks one byte of charset uniformly.
func RandomChar(r io.Reader, charset string) (byte, error) {
	i, err := RandomIndex(r, len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// Shuffle permutes b in place with Fisher-Yates.
func Shuffle(r io.Reader, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := RandomIndex(r, i+1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
