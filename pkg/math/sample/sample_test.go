package sample

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veiltrust/pairing-pedersen/pkg/math/curve"
)

func TestScalarInField(t *testing.T) {
	x := Scalar(rand.Reader)
	v := x.BigInt(new(big.Int))
	assert.True(t, v.Cmp(curve.Order()) < 0, "sampled scalar exceeds the group order")
}

func TestScalarNonZero(t *testing.T) {
	for i := 0; i < 8; i++ {
		assert.False(t, ScalarNonZero(rand.Reader).IsZero())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken entropy source")
}

func TestScalarPanicsWithoutEntropy(t *testing.T) {
	require.Panics(t, func() { Scalar(failingReader{}) })
}

// This exists to save the results of functions we want to benchmark, to avoid
// having them optimized away.
var resultScalar *curve.Scalar

func BenchmarkScalar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		resultScalar = Scalar(rand.Reader)
	}
}
