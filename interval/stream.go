package interval

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Stream returns the points start, start+step, start+2*step, ... that lie
// before the end of b. The step is checked against the stepper before the
// sequence is returned. Each candidate is compared with the end before it is
// yielded, and a step that fails to move forward ends the sequence.
//
// The sequence is lazy and can be ranged over any number of times; every
// iteration starts again from the start of b.
func Stream[T Point[T], S any](b Bounds[T], step S, stepper Stepper[T, S]) (iter.Seq[T], error) {
	if absent(b) {
		return nil, errors.Wrap(ErrNullArgument, "interval")
	}
	if err := requirePresent("step", step); err != nil {
		return nil, err
	}
	if absent(stepper) {
		return nil, errors.Wrap(ErrNullArgument, "stepper")
	}
	if err := stepper.CheckStep(step); err != nil {
		return nil, err
	}
	start, end := b.Start(), b.End()
	return func(yield func(T) bool) {
		p := start
		for p.Compare(end) < 0 {
			if !yield(p) {
				return
			}
			next := stepper.Step(p, step)
			if next.Compare(p) <= 0 {
				return
			}
			p = next
		}
	}, nil
}

// Quantize returns the points start, start+q, start+2*q, ... of s. Exactly
// floor(duration / q) points are produced, so the end of the span itself is
// never part of the sequence.
func (k SpanKind[T, D, S]) Quantize(s S, q D) (iter.Seq[T], error) {
	if err := requirePresent("quantum", q); err != nil {
		return nil, err
	}
	if err := k.arith.CheckQuantum(q); err != nil {
		return nil, err
	}
	count, err := k.arith.Units(s.Duration(), q)
	if err != nil {
		return nil, err
	}
	start := s.Start()
	return func(yield func(T) bool) {
		p := start
		for n := int64(0); n < count; n++ {
			if n > 0 {
				p = k.arith.Add(p, q)
			}
			if !yield(p) {
				return
			}
		}
	}, nil
}

func (s Span[T, D]) Quantize(q D) (iter.Seq[T], error) { return s.kind().Quantize(s, q) }
