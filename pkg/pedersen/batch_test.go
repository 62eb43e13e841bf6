package pedersen

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veiltrust/pairing-pedersen/pkg/math/curve"
	"github.com/veiltrust/pairing-pedersen/pkg/math/sample"
	"github.com/veiltrust/pairing-pedersen/pkg/pool"
)

func TestVerifyBatch(t *testing.T) {
	pl := pool.NewPool(0)
	defer pl.TearDown()

	params, err := Setup(rand.Reader)
	require.NoError(t, err)

	const n = 8
	rng := pool.NewLockedReader(rand.Reader)
	coms := make([]*Commitment, n)
	as := make([]*curve.Scalar, n)
	bs := make([]*curve.Scalar, n)
	for i := 0; i < n; i++ {
		as[i] = sample.Scalar(rng)
		bs[i] = sample.Scalar(rng)
		coms[i], err = params.Commit(as[i], bs[i])
		require.NoError(t, err)
	}
	// Tamper with a single claimed value; only that entry should fail.
	bad := curve.NewScalar().Add(as[3], curve.NewScalar().SetUint64(1))
	as[3] = bad

	results, err := params.VerifyBatch(pl, coms, as, bs)
	require.NoError(t, err)
	require.Len(t, results, n)
	for i, ok := range results {
		if i == 3 {
			assert.False(t, ok, "tampered entry verified")
		} else {
			assert.True(t, ok, "honest entry %d failed", i)
		}
	}
}

func TestVerifyBatchNilPool(t *testing.T) {
	params, err := Setup(rand.Reader)
	require.NoError(t, err)

	a := sample.Scalar(rand.Reader)
	b := sample.Scalar(rand.Reader)
	com, err := params.Commit(a, b)
	require.NoError(t, err)

	results, err := params.VerifyBatch(nil, []*Commitment{com}, []*curve.Scalar{a}, []*curve.Scalar{b})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0])
}

func TestVerifyBatchLengthMismatch(t *testing.T) {
	params, err := Setup(rand.Reader)
	require.NoError(t, err)

	a := sample.Scalar(rand.Reader)
	com, err := params.Commit(a, a)
	require.NoError(t, err)

	_, err = params.VerifyBatch(nil, []*Commitment{com}, []*curve.Scalar{a, a}, []*curve.Scalar{a})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
