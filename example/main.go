package main

import (
	"crypto/rand"
	"fmt"

	"github.com/veiltrust/pairing-pedersen/pkg/math/curve"
	"github.com/veiltrust/pairing-pedersen/pkg/pedersen"
)

// This example walks through the full flow: a simulated trusted setup, a
// commitment to two secret values, and a pairing-based verification of the
// claimed values. Only public artifacts are printed.
func main() {
	params, err := pedersen.Setup(rand.Reader)
	if err != nil {
		panic(err)
	}
	if err := pedersen.ValidateParameters(params); err != nil {
		panic(err)
	}
	fmt.Println("paramG1:", params.G1s())
	fmt.Println("paramG2:", params.G2s())

	a := curve.NewScalar().SetUint64(2)
	b := curve.NewScalar().SetUint64(3)
	com, err := params.Commit(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println("commitment:", com.Point())

	ok, err := params.Verify(com, a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println("verify (2, 3):", ok)

	ok, err = params.Verify(com, a, curve.NewScalar().SetUint64(4))
	if err != nil {
		panic(err)
	}
	fmt.Println("verify (2, 4):", ok)
}
