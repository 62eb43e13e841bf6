package curve

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/veiltrust/pairing-pedersen/internal/params"
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	data := s.s.Bytes()
	return data[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if len(data) < params.BytesScalar {
		return errors.New("curve.Scalar.Unmarshal: data is too small")
	}
	v := new(big.Int).SetBytes(data[:params.BytesScalar])
	if v.Cmp(Order()) >= 0 {
		return errors.New("curve.Scalar.Unmarshal: scalar was >= group order")
	}
	s.s.SetBigInt(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Scalar) MarshalJSON() ([]byte, error) {
	data, _ := s.MarshalBinary()
	return json.Marshal(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(bytes []byte) error {
	var data []byte
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("curve.Scalar: failed to unmarshal scalar: %w", err)
	}
	return s.UnmarshalBinary(data)
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (s *Scalar) WriteTo(w io.Writer) (int64, error) {
	if s == nil {
		return 0, io.ErrUnexpectedEOF
	}
	data := s.s.Bytes()
	n, err := w.Write(data[:])
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (*Scalar) Domain() string {
	return "BN254 Scalar"
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The encoding is gnark-crypto's compressed form; the identity has its own
// valid encoding, so any G₁ value round-trips.
func (v *G1) MarshalBinary() ([]byte, error) {
	if v == nil {
		return nil, errors.New("curve.G1.Marshal: point is nil")
	}
	data := v.p.Bytes()
	return data[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// The decoded point is checked for curve and subgroup membership; a value
// that fails either check never enters the system.
func (v *G1) UnmarshalBinary(data []byte) error {
	if len(data) < params.BytesG1 {
		return errors.New("curve.G1.Unmarshal: data is too small")
	}
	if _, err := v.p.SetBytes(data[:params.BytesG1]); err != nil {
		return fmt.Errorf("curve.G1.Unmarshal: invalid point: %w", err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v *G1) MarshalJSON() ([]byte, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *G1) UnmarshalJSON(bytes []byte) error {
	var data []byte
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("curve.G1: failed to unmarshal compressed point: %w", err)
	}
	return v.UnmarshalBinary(data)
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (v *G1) WriteTo(w io.Writer) (int64, error) {
	if v == nil {
		return 0, io.ErrUnexpectedEOF
	}
	data := v.p.Bytes()
	n, err := w.Write(data[:])
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (*G1) Domain() string {
	return "BN254 G1 Point"
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v *G2) MarshalBinary() ([]byte, error) {
	if v == nil {
		return nil, errors.New("curve.G2.Marshal: point is nil")
	}
	data := v.p.Bytes()
	return data[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *G2) UnmarshalBinary(data []byte) error {
	if len(data) < params.BytesG2 {
		return errors.New("curve.G2.Unmarshal: data is too small")
	}
	if _, err := v.p.SetBytes(data[:params.BytesG2]); err != nil {
		return fmt.Errorf("curve.G2.Unmarshal: invalid point: %w", err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v *G2) MarshalJSON() ([]byte, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *G2) UnmarshalJSON(bytes []byte) error {
	var data []byte
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("curve.G2: failed to unmarshal compressed point: %w", err)
	}
	return v.UnmarshalBinary(data)
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (v *G2) WriteTo(w io.Writer) (int64, error) {
	if v == nil {
		return 0, io.ErrUnexpectedEOF
	}
	data := v.p.Bytes()
	n, err := w.Write(data[:])
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (*G2) Domain() string {
	return "BN254 G2 Point"
}

// String implements fmt.Stringer.
func (v *G1) String() string {
	if v == nil {
		return "nil"
	}
	if v.IsIdentity() {
		return "G1{Identity}"
	}
	return fmt.Sprintf("G1{X: %v, Y: %v}", v.p.X, v.p.Y)
}

// String implements fmt.Stringer.
func (v *G2) String() string {
	if v == nil {
		return "nil"
	}
	if v.IsIdentity() {
		return "G2{Identity}"
	}
	return fmt.Sprintf("G2{X: %v, Y: %v}", v.p.X, v.p.Y)
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	if s == nil {
		return "nil"
	}
	return s.s.String()
}
