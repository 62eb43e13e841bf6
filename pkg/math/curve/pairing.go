package curve

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Pair evaluates the bilinear pairing e(q, p), for q ∈ G₂ and p ∈ G₁.
//
// The argument order matches the usual protocol notation e: G₂ × G₁ → GT;
// the underlying library takes its arguments the other way around.
func Pair(q *G2, p *G1) (*GT, error) {
	if q == nil || p == nil {
		return nil, errors.New("curve.Pair: nil point")
	}
	res, err := bn254.Pair([]bn254.G1Affine{p.p}, []bn254.G2Affine{q.p})
	if err != nil {
		return nil, fmt.Errorf("curve.Pair: %w", err)
	}
	return &GT{e: res}, nil
}
