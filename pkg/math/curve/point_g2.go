package curve

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// G2 is a point on the second source group of the pairing.
type G2 struct {
	p bn254.G2Affine
}

// Set sets v = u, and returns v.
func (v *G2) Set(u *G2) *G2 {
	v.p.Set(&u.p)
	return v
}

// Add sets v = p + q, and returns v.
func (v *G2) Add(p, q *G2) *G2 {
	v.p.Add(&p.p, &q.p)
	return v
}

// Negate sets v = -p, and returns v.
func (v *G2) Negate(p *G2) *G2 {
	v.p.Neg(&p.p)
	return v
}

// ScalarMult sets v = s⋅q, and returns v.
func (v *G2) ScalarMult(s *Scalar, q *G2) *G2 {
	v.p.ScalarMultiplication(&q.p, s.s.BigInt(new(big.Int)))
	return v
}

// ScalarBaseMult sets v = s⋅G₂, and returns v.
func (v *G2) ScalarBaseMult(s *Scalar) *G2 {
	return v.ScalarMult(s, NewBasePointG2())
}

// Equal returns true if v = u.
func (v *G2) Equal(u *G2) bool {
	return v.p.Equal(&u.p)
}

// IsIdentity returns true if v is the group identity.
func (v *G2) IsIdentity() bool {
	return v.p.IsInfinity()
}

// Validate returns an error unless v lies on the curve and in the
// prime-order subgroup.
func (v *G2) Validate() error {
	if v == nil {
		return errors.New("curve.G2: nil point")
	}
	if !v.p.IsOnCurve() {
		return errors.New("curve.G2: point is not on the curve")
	}
	if !v.p.IsInSubGroup() {
		return errors.New("curve.G2: point is not in the prime-order subgroup")
	}
	return nil
}
