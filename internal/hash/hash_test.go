package hash

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veiltrust/pairing-pedersen/pkg/math/curve"
	"github.com/veiltrust/pairing-pedersen/pkg/math/sample"
)

func TestHash_WriteAny(t *testing.T) {
	testFunc := func(vs ...interface{}) error {
		h := New()
		for _, v := range vs {
			if err := h.WriteAny(v); err != nil {
				return err
			}
		}
		return nil
	}

	assert.NoError(t, testFunc([]byte{1, 4, 6}))
	assert.NoError(t, testFunc(sample.Scalar(rand.Reader)))
	assert.NoError(t, testFunc(new(curve.G1).ScalarBaseMult(sample.Scalar(rand.Reader))))
	assert.NoError(t, testFunc(new(curve.G2).ScalarBaseMult(sample.Scalar(rand.Reader))))
	assert.NoError(t, testFunc([]byte{1}, sample.Scalar(rand.Reader)))
}

func TestHash_DomainSeparation(t *testing.T) {
	// The same bytes under different domains must digest differently.
	h1 := New()
	require.NoError(t, h1.WriteAny(BytesWithDomain{TheDomain: "A", Bytes: []byte{1, 2, 3}}))
	h2 := New()
	require.NoError(t, h2.WriteAny(BytesWithDomain{TheDomain: "B", Bytes: []byte{1, 2, 3}}))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestHash_Clone(t *testing.T) {
	h := New()
	require.NoError(t, h.WriteAny([]byte("prefix")))
	clone := h.Clone()

	require.NoError(t, h.WriteAny([]byte("a")))
	require.NoError(t, clone.WriteAny([]byte("b")))
	assert.NotEqual(t, h.Sum(), clone.Sum())
}

func TestHash_SumLength(t *testing.T) {
	assert.Len(t, New().Sum(), DigestLengthBytes)
}
