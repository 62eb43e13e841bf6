package sample

import (
	"fmt"
	"io"
	"math/big"

	"github.com/veiltrust/pairing-pedersen/internal/params"
	"github.com/veiltrust/pairing-pedersen/pkg/math/curve"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Scalar samples a uniform element of the BN254 scalar field.
func Scalar(rand io.Reader) *curve.Scalar {
	order := curve.Order()
	buf := make([]byte, params.BytesScalar)
	n := new(big.Int)
	for {
		mustReadBits(rand, buf)
		n.SetBytes(buf)
		if n.Cmp(order) < 0 {
			return curve.NewScalar().SetBigInt(n)
		}
	}
}

// ScalarNonZero samples a uniform nonzero element of the BN254 scalar field.
func ScalarNonZero(rand io.Reader) *curve.Scalar {
	for i := 0; i < maxIterations; i++ {
		if s := Scalar(rand); !s.IsZero() {
			return s
		}
	}
	panic(ErrMaxIterations)
}
