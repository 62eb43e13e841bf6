package curve

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomScalar(t *testing.T) *Scalar {
	t.Helper()
	buf := make([]byte, 32)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return NewScalar().SetBigInt(new(big.Int).SetBytes(buf))
}

func TestPairingBilinearAdd(t *testing.T) {
	x, y := randomScalar(t), randomScalar(t)
	P := new(G1).ScalarBaseMult(x)
	Q := new(G1).ScalarBaseMult(y)
	g2 := NewBasePointG2()

	// e(G₂, P+Q) = e(G₂, P)⋅e(G₂, Q)
	lhs, err := Pair(g2, new(G1).Add(P, Q))
	require.NoError(t, err)
	eP, err := Pair(g2, P)
	require.NoError(t, err)
	eQ, err := Pair(g2, Q)
	require.NoError(t, err)
	assert.True(t, lhs.Equal(new(GT).Mul(eP, eQ)), "pairing is not additive in the G1 argument")
}

func TestPairingBilinearScalarMult(t *testing.T) {
	x := randomScalar(t)
	g1 := NewBasePointG1()
	g2 := NewBasePointG2()

	// e(G₂, x⋅G₁) = e(G₂, G₁)ˣ
	lhs, err := Pair(g2, new(G1).ScalarBaseMult(x))
	require.NoError(t, err)
	base, err := Pair(g2, g1)
	require.NoError(t, err)
	assert.True(t, lhs.Equal(new(GT).Exp(base, x)), "pairing does not commute with scalar multiplication")
}

func TestPairingCrossGroupConsistency(t *testing.T) {
	s := randomScalar(t)
	require.False(t, s.IsZero())

	// e(G₂, s⋅G₁) = e(s⋅G₂, G₁)
	lhs, err := Pair(NewBasePointG2(), new(G1).ScalarBaseMult(s))
	require.NoError(t, err)
	rhs, err := Pair(new(G2).ScalarBaseMult(s), NewBasePointG1())
	require.NoError(t, err)
	assert.True(t, lhs.Equal(rhs))
}

func TestPairingNilPoint(t *testing.T) {
	_, err := Pair(nil, NewBasePointG1())
	assert.Error(t, err)
	_, err = Pair(NewBasePointG2(), nil)
	assert.Error(t, err)
}

func TestGeneratorsValid(t *testing.T) {
	assert.NoError(t, NewBasePointG1().Validate())
	assert.NoError(t, NewBasePointG2().Validate())
	assert.False(t, NewBasePointG1().IsIdentity())
	assert.False(t, NewBasePointG2().IsIdentity())
}

func TestScalarMarshalRoundTrip(t *testing.T) {
	x := randomScalar(t)
	data, err := x.MarshalBinary()
	require.NoError(t, err)
	y := NewScalar()
	require.NoError(t, y.UnmarshalBinary(data))
	assert.True(t, x.Equal(y))

	jsonData, err := json.Marshal(x)
	require.NoError(t, err)
	z := NewScalar()
	require.NoError(t, json.Unmarshal(jsonData, z))
	assert.True(t, x.Equal(z))
}

func TestScalarUnmarshalRejectsNonCanonical(t *testing.T) {
	data := make([]byte, 32)
	Order().FillBytes(data)
	err := NewScalar().UnmarshalBinary(data)
	assert.Error(t, err, "the group order is not a canonical scalar encoding")
}

func TestPointMarshalRoundTrip(t *testing.T) {
	x := randomScalar(t)

	p := new(G1).ScalarBaseMult(x)
	data, err := p.MarshalBinary()
	require.NoError(t, err)
	q := &G1{}
	require.NoError(t, q.UnmarshalBinary(data))
	assert.True(t, p.Equal(q))
	assert.NoError(t, q.Validate())

	p2 := new(G2).ScalarBaseMult(x)
	data2, err := p2.MarshalBinary()
	require.NoError(t, err)
	q2 := &G2{}
	require.NoError(t, q2.UnmarshalBinary(data2))
	assert.True(t, p2.Equal(q2))
	assert.NoError(t, q2.Validate())
}

func TestPointUnmarshalRejectsGarbage(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = 0xFF
	}
	assert.Error(t, (&G1{}).UnmarshalBinary(data))
	assert.Error(t, (&G1{}).UnmarshalBinary(data[:5]))

	data2 := make([]byte, 64)
	for i := range data2 {
		data2[i] = 0xFF
	}
	assert.Error(t, (&G2{}).UnmarshalBinary(data2))
}

func TestScalarZero(t *testing.T) {
	x := randomScalar(t)
	require.False(t, x.IsZero())
	x.Zero()
	assert.True(t, x.IsZero())
}
