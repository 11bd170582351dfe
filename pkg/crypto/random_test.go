// pkg/crypto/random_test.go

package crypto

import (
	"bytes"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestRandomIndex(t *testing.T) {
	t.Run("stays in range", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			n, err := RandomIndex(SecureSource, 7)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 7)
		}
	})

	t.Run("rejects empty range", func(t *testing.T) {
		_, err := RandomIndex(SecureSource, 0)
		assert.Error(t, err)
	})

	t.Run("propagates reader failure", func(t *testing.T) {
		_, err := RandomIndex(failingReader{}, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entropy exhausted")
	})
}

func TestRandomChar(t *testing.T) {
	const charset = "xyz"
	for i := 0; i < 100; i++ {
		c, err := RandomChar(SecureSource, charset)
		require.NoError(t, err)
		assert.Contains(t, charset, string(c))
	}
}

func TestShuffle(t *testing.T) {
	t.Run("is a permutation", func(t *testing.T) {
		orig := []byte("abcdefghijklmnop")
		b := append([]byte(nil), orig...)
		require.NoError(t, Shuffle(SecureSource, b))

		sorted := append([]byte(nil), b...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		assert.Equal(t, orig, sorted)
	})

	t.Run("eventually reorders", func(t *testing.T) {
		orig := []byte("abcdefghijklmnop")
		moved := false
		for i := 0; i < 10 && !moved; i++ {
			b := append([]byte(nil), orig...)
			require.NoError(t, Shuffle(SecureSource, b))
			moved = !bytes.Equal(orig, b)
		}
		assert.True(t, moved, "16 bytes should not stay in order across 10 shuffles")
	})

	t.Run("single element needs no entropy", func(t *testing.T) {
		assert.NoError(t, Shuffle(failingReader{}, []byte("a")))
	})

	t.Run("propagates reader failure", func(t *testing.T) {
		assert.Error(t, Shuffle(failingReader{}, []byte("ab")))
	})
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "(empty)", Redact(""))
	assert.Equal(t, "****", Redact("pa$$"))
	assert.Equal(t, "**", Redact("é!"))
}
