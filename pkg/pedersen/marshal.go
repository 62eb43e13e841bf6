package pedersen

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/veiltrust/pairing-pedersen/internal/params"
	"github.com/veiltrust/pairing-pedersen/pkg/math/curve"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The encoding is the concatenation of the compressed forms of s⋅G₁ and
// s⋅G₂.
func (p *Parameters) MarshalBinary() ([]byte, error) {
	if p == nil || p.g1s == nil || p.g2s == nil {
		return nil, ErrNilFields
	}
	g1Data, err := p.g1s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	g2Data, err := p.g2s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(g1Data, g2Data...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Both points are membership-checked during decoding. The cross-group
// consistency of the pair is not re-derived here; callers receiving
// parameters from an untrusted source should follow up with
// ValidateParameters.
func (p *Parameters) UnmarshalBinary(data []byte) error {
	if len(data) < params.BytesG1+params.BytesG2 {
		return errors.New("pedersen.Parameters.Unmarshal: data is too small")
	}
	g1s := &curve.G1{}
	if err := g1s.UnmarshalBinary(data[:params.BytesG1]); err != nil {
		return fmt.Errorf("pedersen.Parameters.Unmarshal: paramG1: %w", err)
	}
	g2s := &curve.G2{}
	if err := g2s.UnmarshalBinary(data[params.BytesG1 : params.BytesG1+params.BytesG2]); err != nil {
		return fmt.Errorf("pedersen.Parameters.Unmarshal: paramG2: %w", err)
	}
	p.g1s = g1s
	p.g2s = g2s
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *Parameters) MarshalJSON() ([]byte, error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Parameters) UnmarshalJSON(bytes []byte) error {
	var data []byte
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("pedersen.Parameters: failed to unmarshal: %w", err)
	}
	return p.UnmarshalBinary(data)
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (p *Parameters) WriteTo(w io.Writer) (int64, error) {
	if p == nil || p.g1s == nil || p.g2s == nil {
		return 0, io.ErrUnexpectedEOF
	}
	nAll := int64(0)
	n, err := p.g1s.WriteTo(w)
	nAll += n
	if err != nil {
		return nAll, err
	}
	n, err = p.g2s.WriteTo(w)
	nAll += n
	return nAll, err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (Parameters) Domain() string {
	return "Pedersen Parameters"
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	if c == nil || c.c == nil {
		return nil, ErrNilFields
	}
	return c.c.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Commitment) UnmarshalBinary(data []byte) error {
	point := &curve.G1{}
	if err := point.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("pedersen.Commitment.Unmarshal: %w", err)
	}
	c.c = point
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c *Commitment) MarshalJSON() ([]byte, error) {
	data, err := c.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Commitment) UnmarshalJSON(bytes []byte) error {
	var data []byte
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("pedersen.Commitment: failed to unmarshal: %w", err)
	}
	return c.UnmarshalBinary(data)
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (c *Commitment) WriteTo(w io.Writer) (int64, error) {
	if c == nil || c.c == nil {
		return 0, io.ErrUnexpectedEOF
	}
	return c.c.WriteTo(w)
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (Commitment) Domain() string {
	return "Pedersen Commitment"
}
