package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Scalar is an element of the scalar field of BN254.
type Scalar struct {
	s fr.Element
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Set sets s = t, and returns s.
func (s *Scalar) Set(t *Scalar) *Scalar {
	s.s.Set(&t.s)
	return s
}

// SetUint64 sets s to the given small integer, and returns s.
func (s *Scalar) SetUint64(v uint64) *Scalar {
	s.s.SetUint64(v)
	return s
}

// SetBigInt sets s to v reduced modulo the group order, and returns s.
func (s *Scalar) SetBigInt(v *big.Int) *Scalar {
	s.s.SetBigInt(v)
	return s
}

// BigInt sets v to the value of s, and returns v.
func (s *Scalar) BigInt(v *big.Int) *big.Int {
	return s.s.BigInt(v)
}

// Add sets s = a + b, and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.s.Add(&a.s, &b.s)
	return s
}

// Sub sets s = a - b, and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.s.Sub(&a.s, &b.s)
	return s
}

// Mul sets s = a * b, and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.s.Mul(&a.s, &b.s)
	return s
}

// Negate sets s = -a, and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.s.Neg(&a.s)
	return s
}

// Equal returns true if s = t.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.s.Equal(&t.s)
}

// IsZero returns true if s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Zero overwrites s with the zero scalar.
//
// Callers holding a secret scalar should invoke this once the scalar is no
// longer needed. The erasure covers this value only, not any copies the
// caller may have produced.
func (s *Scalar) Zero() {
	s.s.SetZero()
}
