// Package pedersen implements a pairing-based Pedersen commitment over BN254.
//
// A one-time trusted setup derives public parameters (s⋅G₁, s⋅G₂) from a
// secret scalar s. A committer binds two secret scalars (a, b) into the
// single G₁ element a⋅(s⋅G₁) + b⋅G₁, and a verifier checks the commitment
// against claimed values using a bilinear pairing identity, without the setup
// secret.
//
// Binding holds because finding a second pair (a′, b′) with the same
// commitment requires solving the discrete logarithm in G₁; this is a
// property of the underlying curve library, not of this package.
package pedersen

import (
	"fmt"
	"io"

	"github.com/veiltrust/pairing-pedersen/pkg/math/curve"
	"github.com/veiltrust/pairing-pedersen/pkg/math/sample"
)

type Error string

const (
	ErrNilFields              Error = "contains nil field"
	ErrZeroSetupScalar        Error = "setup scalar cannot be zero"
	ErrMalformedPoint         Error = "point is not a valid group element"
	ErrPairingFailure         Error = "pairing could not be evaluated"
	ErrInconsistentParameters Error = "parameters are not scalar multiples of the generators by a single setup scalar"
	ErrLengthMismatch         Error = "batch slices have different lengths"
)

func (e Error) Error() string {
	return fmt.Sprintf("pedersen: %s", string(e))
}

// Parameters is the public reference string of the scheme: the pair
// (s⋅G₁, s⋅G₂) for a setup scalar s that is secret, and ideally erased.
//
// Parameters are immutable once created and safe for concurrent use.
type Parameters struct {
	g1s *curve.G1
	g2s *curve.G2
}

// NewParameters derives the public parameters (s⋅G₁, s⋅G₂) from the setup
// scalar s.
//
// s must be nonzero: a zero scalar yields identity parameters, which make
// every commitment trivially forgeable. The caller keeps s secret and is
// responsible for erasing it after use; Setup does both on the caller's
// behalf.
func NewParameters(s *curve.Scalar) (*Parameters, error) {
	if s == nil {
		return nil, ErrNilFields
	}
	if s.IsZero() {
		return nil, ErrZeroSetupScalar
	}
	return &Parameters{
		g1s: new(curve.G1).ScalarBaseMult(s),
		g2s: new(curve.G2).ScalarBaseMult(s),
	}, nil
}

// Setup samples a fresh setup scalar from rand, derives the public
// parameters, and erases the scalar before returning.
//
// This scopes the trusted-setup secret to this function: nothing outside it
// ever observes s. Note this is a single-party simulation of a trusted
// setup, not a multi-party ceremony.
func Setup(rand io.Reader) (*Parameters, error) {
	s := sample.ScalarNonZero(rand)
	defer s.Zero()
	return NewParameters(s)
}

// G1s returns s⋅G₁. The result must be treated as read-only.
func (p *Parameters) G1s() *curve.G1 { return p.g1s }

// G2s returns s⋅G₂. The result must be treated as read-only.
func (p *Parameters) G2s() *curve.G2 { return p.g2s }

// ValidateParameters checks p, and returns an error if any of the following
// is true:
// - either element is nil, off-curve, or outside the prime-order subgroup.
// - either element is the identity (a zero setup scalar).
// - the two elements are not multiples of their generators by the same scalar,
//   checked via e(s⋅G₂, G₁) = e(G₂, s⋅G₁).
//
// A verifier receiving parameters from a third party should call this once
// before trusting them; the pairing check makes it relatively expensive.
func ValidateParameters(p *Parameters) error {
	if p == nil || p.g1s == nil || p.g2s == nil {
		return ErrNilFields
	}
	if err := p.g1s.Validate(); err != nil {
		return fmt.Errorf("%w: paramG1: %v", ErrMalformedPoint, err)
	}
	if err := p.g2s.Validate(); err != nil {
		return fmt.Errorf("%w: paramG2: %v", ErrMalformedPoint, err)
	}
	if p.g1s.IsIdentity() || p.g2s.IsIdentity() {
		return ErrZeroSetupScalar
	}
	lhs, err := curve.Pair(p.g2s, curve.NewBasePointG1())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPairingFailure, err)
	}
	rhs, err := curve.Pair(curve.NewBasePointG2(), p.g1s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPairingFailure, err)
	}
	if !lhs.Equal(rhs) {
		return ErrInconsistentParameters
	}
	return nil
}

// Commitment is a single G₁ element binding two scalars to the parameters it
// was produced under. Once published it is a public, immutable artifact.
type Commitment struct {
	c *curve.G1
}

// Point returns the underlying G₁ element. The result must be treated as
// read-only.
func (c *Commitment) Point() *curve.G1 { return c.c }

// Commit computes a⋅(s⋅G₁) + b⋅G₁.
//
// a and b are read-only inputs and remain secret; the commitment hides them.
// The result is membership-checked before it is returned. With valid
// parameters the check cannot fail, but it is asserted rather than assumed.
func (p *Parameters) Commit(a, b *curve.Scalar) (*Commitment, error) {
	if p == nil || p.g1s == nil || a == nil || b == nil {
		return nil, ErrNilFields
	}

	var ag1s, bg1 curve.G1
	ag1s.ScalarMult(a, p.g1s)
	bg1.ScalarBaseMult(b)

	c := new(curve.G1).Add(&ag1s, &bg1)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPoint, err)
	}
	return &Commitment{c: c}, nil
}

// Verify reports whether com satisfies
//
//	e(G₂, C) = e(s⋅G₂, G₁)ᵃ ⋅ e(G₂, G₁)ᵇ
//
// for the claimed values a and b.
//
// The cross term is computed as e(s⋅G₂, G₁) and never as the algebraically
// equal e(G₂, s⋅G₁). By bilinearity both equal e(G₂, G₁)ˢ, but only the
// former ties the G₂ half of the parameters into the equation; evaluating
// the G₁ side instead would leave the setup's cross-group consistency
// unchecked.
//
// A false result means the identity does not hold for (a, b). A non-nil
// error means the identity could not be evaluated at all. The two must never
// be conflated: on error the returned bool carries no meaning.
func (p *Parameters) Verify(com *Commitment, a, b *curve.Scalar) (bool, error) {
	if p == nil || p.g1s == nil || p.g2s == nil || com == nil || com.c == nil || a == nil || b == nil {
		return false, ErrNilFields
	}
	// Membership is cheap relative to a pairing, so check before evaluating.
	if err := com.c.Validate(); err != nil {
		return false, fmt.Errorf("%w: commitment: %v", ErrMalformedPoint, err)
	}
	if err := p.g2s.Validate(); err != nil {
		return false, fmt.Errorf("%w: paramG2: %v", ErrMalformedPoint, err)
	}

	g1 := curve.NewBasePointG1()
	g2 := curve.NewBasePointG2()

	// left = e(G₂, C)
	left, err := curve.Pair(g2, com.c)
	if err != nil {
		return false, fmt.Errorf("%w: left: %v", ErrPairingFailure, err)
	}
	// crossTerm = e(s⋅G₂, G₁) = e(G₂, G₁)ˢ
	crossTerm, err := curve.Pair(p.g2s, g1)
	if err != nil {
		return false, fmt.Errorf("%w: cross term: %v", ErrPairingFailure, err)
	}
	// baseTerm = e(G₂, G₁)
	baseTerm, err := curve.Pair(g2, g1)
	if err != nil {
		return false, fmt.Errorf("%w: base term: %v", ErrPairingFailure, err)
	}

	// right = crossTermᵃ ⋅ baseTermᵇ
	var right curve.GT
	right.Mul(new(curve.GT).Exp(crossTerm, a), new(curve.GT).Exp(baseTerm, b))

	return left.Equal(&right), nil
}
