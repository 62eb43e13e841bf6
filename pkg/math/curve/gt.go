package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// GT is an element of the target group of the pairing.
//
// GT values only ever appear as intermediates of a verification equation;
// they are deliberately not serializable.
type GT struct {
	e bn254.GT
}

// Set sets z = x, and returns z.
func (z *GT) Set(x *GT) *GT {
	z.e.Set(&x.e)
	return z
}

// Mul sets z = x ⋅ y, and returns z.
func (z *GT) Mul(x, y *GT) *GT {
	z.e.Mul(&x.e, &y.e)
	return z
}

// Exp sets z = xᵏ, and returns z.
func (z *GT) Exp(x *GT, k *Scalar) *GT {
	z.e.Exp(x.e, k.s.BigInt(new(big.Int)))
	return z
}

// Equal returns true if z = x. GT elements compare by exact equality;
// there is no meaningful approximate comparison.
func (z *GT) Equal(x *GT) bool {
	return z.e.Equal(&x.e)
}

// IsOne returns true if z is the identity of GT.
func (z *GT) IsOne() bool {
	var one bn254.GT
	one.SetOne()
	return z.e.Equal(&one)
}
