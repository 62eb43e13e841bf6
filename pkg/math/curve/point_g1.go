package curve

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// G1 is a point on the first source group of the pairing.
type G1 struct {
	p bn254.G1Affine
}

// Set sets v = u, and returns v.
func (v *G1) Set(u *G1) *G1 {
	v.p.Set(&u.p)
	return v
}

// Add sets v = p + q, and returns v.
func (v *G1) Add(p, q *G1) *G1 {
	v.p.Add(&p.p, &q.p)
	return v
}

// Negate sets v = -p, and returns v.
func (v *G1) Negate(p *G1) *G1 {
	v.p.Neg(&p.p)
	return v
}

// ScalarMult sets v = s⋅q, and returns v.
func (v *G1) ScalarMult(s *Scalar, q *G1) *G1 {
	v.p.ScalarMultiplication(&q.p, s.s.BigInt(new(big.Int)))
	return v
}

// ScalarBaseMult sets v = s⋅G₁, and returns v.
func (v *G1) ScalarBaseMult(s *Scalar) *G1 {
	return v.ScalarMult(s, NewBasePointG1())
}

// Equal returns true if v = u.
func (v *G1) Equal(u *G1) bool {
	return v.p.Equal(&u.p)
}

// IsIdentity returns true if v is the group identity.
func (v *G1) IsIdentity() bool {
	return v.p.IsInfinity()
}

// Validate returns an error unless v lies on the curve and in the
// prime-order subgroup.
func (v *G1) Validate() error {
	if v == nil {
		return errors.New("curve.G1: nil point")
	}
	if !v.p.IsOnCurve() {
		return errors.New("curve.G1: point is not on the curve")
	}
	if !v.p.IsInSubGroup() {
		return errors.New("curve.G1: point is not in the prime-order subgroup")
	}
	return nil
}
