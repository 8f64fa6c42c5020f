package table

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/handle"
	"github.com/wippyai/handle/errors"
	"github.com/wippyai/handle/narrow"
)

// Table maps generational handles tagged with S to values of type T.
type Table[S comparable, T any] struct {
	slots     []slot[T]
	free      []uint32
	observers []Observer[S]
	live      int
}

type slot[T any] struct {
	value T
	gen   uint32
	valid bool
}

// New creates an empty table.
func New[S comparable, T any]() *Table[S, T] {
	return &Table[S, T]{
		// slot 0 is the reserved sentinel
		slots: make([]slot[T], 1, 64),
		free:  make([]uint32, 0, 16),
	}
}

// Insert stores v and returns its handle.
func (t *Table[S, T]) Insert(v T) Handle[S] {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = narrow.Cast[uint32](len(t.slots))
		t.slots = append(t.slots, slot[T]{gen: 1})
	}

	s := &t.slots[idx]
	s.value = v
	s.valid = true
	t.live++

	h := handle.Wrap[S](handle.NewGenerational(idx, s.gen))
	Logger().Debug("slot inserted", handle.Field("handle", h))
	t.notify(Event[S]{Type: EventInserted, Handle: h, Value: v})
	return h
}

// Get retrieves the value addressed by h.
func (t *Table[S, T]) Get(h Handle[S]) (T, bool) {
	s, err := t.lookup(h)
	if err != nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Lookup retrieves the value addressed by h, reporting why it failed.
func (t *Table[S, T]) Lookup(h Handle[S]) (T, error) {
	s, err := t.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Set replaces the value addressed by h. It returns false if h does not
// resolve.
func (t *Table[S, T]) Set(h Handle[S], v T) bool {
	s, err := t.lookup(h)
	if err != nil {
		return false
	}
	s.value = v
	return true
}

// Contains reports whether h resolves to a live value.
func (t *Table[S, T]) Contains(h Handle[S]) bool {
	_, err := t.lookup(h)
	return err == nil
}

// Remove frees the slot addressed by h and returns its value. A slot whose
// generation counter is exhausted is retired instead of being reused.
func (t *Table[S, T]) Remove(h Handle[S]) (T, bool) {
	s, err := t.lookup(h)
	if err != nil {
		var zero T
		Logger().Debug("remove failed", handle.Field("handle", h), zap.Error(err))
		return zero, false
	}

	value := s.value
	var zero T
	s.value = zero
	s.valid = false
	if s.gen == math.MaxUint32 {
		Logger().Debug("slot retired", handle.Field("handle", h))
	} else {
		s.gen++
		t.free = append(t.free, uint32(h.Raw()))
	}
	t.live--

	if d, ok := any(value).(Dropper); ok {
		d.Drop()
	}

	Logger().Debug("slot removed", handle.Field("handle", h))
	t.notify(Event[S]{Type: EventRemoved, Handle: h, Value: value})
	return value, true
}

// Len returns the number of live values.
func (t *Table[S, T]) Len() int {
	return t.live
}

// Cap returns the number of allocated slots, live or free.
func (t *Table[S, T]) Cap() int {
	return len(t.slots) - 1
}

// Each calls fn for every live value in slot order until fn returns false.
func (t *Table[S, T]) Each(fn func(Handle[S], T) bool) {
	for i := 1; i < len(t.slots); i++ {
		s := &t.slots[i]
		if !s.valid {
			continue
		}
		h := handle.Wrap[S](handle.NewGenerational(uint32(i), s.gen))
		if !fn(h, s.value) {
			return
		}
	}
}

// Clear removes every live value.
func (t *Table[S, T]) Clear() {
	// collect first, Remove mutates the slots Each walks
	var handles []Handle[S]
	t.Each(func(h Handle[S], _ T) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[S, T]) Subscribe(o Observer[S]) {
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table[S, T]) Unsubscribe(o Observer[S]) {
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table[S, T]) lookup(h Handle[S]) (*slot[T], error) {
	idx := h.Raw()
	if idx == 0 || idx >= uint64(len(t.slots)) {
		return nil, errors.NotFound(errors.PhaseLookup, "slot", h)
	}

	s := &t.slots[idx]
	if gen := h.Property().Generation(); gen != s.gen {
		return nil, errors.Stale(errors.PhaseLookup, h, gen, s.gen)
	}
	if !s.valid {
		return nil, errors.NotFound(errors.PhaseLookup, "slot", h)
	}
	return s, nil
}

func (t *Table[S, T]) notify(e Event[S]) {
	for _, o := range t.observers {
		o.OnSlotEvent(e)
	}
}
