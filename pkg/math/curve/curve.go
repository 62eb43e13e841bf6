// Package curve wraps the BN254 groups of gnark-crypto behind small typed
// values, so that protocol code never handles raw library types.
//
// The package exposes exactly the operations the commitment protocol
// consumes: group addition, scalar multiplication, the two fixed generators,
// curve-membership validation, and the bilinear pairing e: G₂ × G₁ → GT.
// All operations produce new values; no function mutates its arguments
// except the explicit Set and Zero methods on the receiver.
package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	g1Gen bn254.G1Affine
	g2Gen bn254.G2Affine
)

func init() {
	_, _, g1Gen, g2Gen = bn254.Generators()
}

// Order returns the order of the scalar field shared by G₁, G₂ and GT.
func Order() *big.Int {
	return fr.Modulus()
}

// NewBasePointG1 returns a new copy of the fixed G₁ generator.
func NewBasePointG1() *G1 {
	return &G1{p: g1Gen}
}

// NewBasePointG2 returns a new copy of the fixed G₂ generator.
func NewBasePointG2() *G2 {
	return &G2{p: g2Gen}
}
