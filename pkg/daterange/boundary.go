package daterange

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/username/cncal/pkg/dateutil"
)

// ErrInvalidStep is returned when a boundary is built with a step below 1
var ErrInvalidStep = errors.New("step must be positive")

// Boundary is a stepped sequence of instants from start to end. The i-th
// element is start moved by i*step units of field, so month steps from the
// 31st land on each month's last day instead of drifting.
//
// A Boundary holds no iteration state; every Iterator starts over.
type Boundary struct {
	start        time.Time
	end          time.Time
	field        dateutil.Field
	step         int
	includeStart bool
	includeEnd   bool
}

// NewBoundary creates a Boundary. includeStart and includeEnd control
// whether start and end themselves are produced.
func NewBoundary(start, end time.Time, field dateutil.Field, step int, includeStart, includeEnd bool) (Boundary, error) {
	if step < 1 {
		return Boundary{}, fmt.Errorf("boundary step %d: %w", step, ErrInvalidStep)
	}
	if !field.Valid() {
		return Boundary{}, fmt.Errorf("boundary field %s is not a calendar field", field)
	}
	// elements carry millisecond precision, so do the bounds
	return Boundary{
		start:        start.Truncate(time.Millisecond),
		end:          end.Truncate(time.Millisecond),
		field:        field,
		step:         step,
		includeStart: includeStart,
		includeEnd:   includeEnd,
	}, nil
}

// Iterator returns a fresh cursor positioned before the first element
func (b Boundary) Iterator() *Iterator {
	return &Iterator{b: b}
}

// All returns the sequence as a range-over-func iterator
func (b Boundary) All() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		it := b.Iterator()
		for {
			t, ok := it.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// Slice materializes the whole sequence
func (b Boundary) Slice() []time.Time {
	var out []time.Time
	for t := range b.All() {
		out = append(out, t)
	}
	return out
}

func (b Boundary) at(i int) time.Time {
	if i == 0 {
		return b.start
	}
	return dateutil.New(b.start).Offset(b.field, i*b.step).Time()
}

// Iterator walks a Boundary. It is not safe for concurrent use.
type Iterator struct {
	b     Boundary
	index int
	done  bool
}

// Next returns the next element, or false once the next candidate would be
// after end.
func (it *Iterator) Next() (time.Time, bool) {
	for !it.done {
		i := it.index
		it.index++

		candidate := it.b.at(i)
		if candidate.After(it.b.end) {
			it.done = true
			break
		}
		if i == 0 {
			if it.b.includeStart {
				return candidate, true
			}
			continue
		}
		if !it.b.includeEnd && candidate.Equal(it.b.end) {
			it.done = true
			break
		}
		return candidate, true
	}
	return time.Time{}, false
}
