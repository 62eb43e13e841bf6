package pedersen

import (
	"fmt"

	"github.com/veiltrust/pairing-pedersen/pkg/math/curve"
	"github.com/veiltrust/pairing-pedersen/pkg/pool"
)

// VerifyBatch verifies each commitment against its claimed pair of values,
// distributing the pairing evaluations over pl. A nil pool runs everything
// on the calling goroutine.
//
// Verification shares no mutable state, so the individual checks are fully
// independent. The result slice aligns with coms: out[i] is the outcome for
// coms[i] against (as[i], bs[i]). A single malformed input fails the whole
// batch with an error, since its verdict could not be evaluated.
func (p *Parameters) VerifyBatch(pl *pool.Pool, coms []*Commitment, as, bs []*curve.Scalar) ([]bool, error) {
	if len(as) != len(coms) || len(bs) != len(coms) {
		return nil, ErrLengthMismatch
	}

	type verdict struct {
		ok  bool
		err error
	}
	results := pl.Parallelize(len(coms), func(i int) interface{} {
		ok, err := p.Verify(coms[i], as[i], bs[i])
		return verdict{ok: ok, err: err}
	})

	out := make([]bool, len(results))
	for i, r := range results {
		v := r.(verdict)
		if v.err != nil {
			return nil, fmt.Errorf("commitment %d: %w", i, v.err)
		}
		out[i] = v.ok
	}
	return out, nil
}
