package handle

import (
	"reflect"
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/handle/errors"
)

type nodeTag struct{}
type edgeTag struct{}

type (
	nodeID = Of[nodeTag]
	edgeID = Of[edgeTag]
)

// counter is a property without a String method.
type counter struct{ n Value }

func (counter) FromRaw(v Value) counter    { return counter{v} }
func (c counter) Raw() Value               { return c.n }
func (c counter) Add(d Difference) counter { return counter{c.n + d} }
func (c counter) Sub(d Difference) counter { return counter{c.n - d} }
func (c counter) Less(other counter) bool  { return c.n < other.n }

func TestHandle_DefaultIdentity(t *testing.T) {
	var h nodeID
	if h.Raw() != 0 {
		t.Errorf("zero handle Raw() = %d, want 0", h.Raw())
	}
	if h != Make[nodeTag](0) {
		t.Error("zero handle should equal Make(0)")
	}
}

func TestHandle_ConstructionEquivalence(t *testing.T) {
	direct := New[nodeTag, Index](5)
	literal := From[nodeTag, Index](5)
	wrapped := Wrap[nodeTag](NewIndex(5))
	made := Make[nodeTag](5)

	for name, h := range map[string]nodeID{"literal": literal, "wrapped": wrapped, "made": made} {
		if !direct.Equal(h) || direct != h {
			t.Errorf("%s handle %v != direct %v", name, h, direct)
		}
		if h.Raw() != 5 {
			t.Errorf("%s handle Raw() = %d, want 5", name, h.Raw())
		}
	}
}

func TestHandle_InitializerGuard(t *testing.T) {
	t.Run("zero elements", func(t *testing.T) {
		mustPanic(t, func() { _ = From[nodeTag, Index, int]() })
	})

	t.Run("two elements", func(t *testing.T) {
		mustPanic(t, func() { _ = From[nodeTag, Index](1, 2) })
	})

	t.Run("Parse reports instead", func(t *testing.T) {
		if _, err := Parse[nodeTag, Index, int](); err == nil {
			t.Error("Parse() with no elements should fail")
		}
		if _, err := Parse[nodeTag, Index](3, 4); err == nil {
			t.Error("Parse(3, 4) should fail")
		}
		h, err := Parse[nodeTag, Index](int16(8))
		if err != nil {
			t.Fatalf("Parse(8): %v", err)
		}
		if h.Raw() != 8 {
			t.Errorf("Parse(8) = %v", h)
		}
	})

	t.Run("violation is logged", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		prev := Logger()
		SetLogger(zap.New(core))
		defer SetLogger(prev)

		r := mustPanic(t, func() { _ = IndexOf(1, 2, 3) })
		if err, ok := r.(*errors.Error); !ok || err.Value != 3 {
			t.Errorf("panic value = %v", r)
		}
		if logs.Len() != 1 {
			t.Fatalf("expected 1 log entry, got %d", logs.Len())
		}
		if got := logs.All()[0].ContextMap()["elements"]; got != int64(3) {
			t.Errorf("elements field = %v, want 3", got)
		}
	})
}

func TestHandle_TypeIsolation(t *testing.T) {
	node := reflect.TypeFor[nodeID]()
	edge := reflect.TypeFor[edgeID]()
	raw := reflect.TypeFor[Value]()

	if node == edge {
		t.Fatal("differently tagged handles share a type")
	}
	if node.AssignableTo(edge) || edge.AssignableTo(node) {
		t.Error("differently tagged handles are assignable")
	}
	if node.ConvertibleTo(edge) || edge.ConvertibleTo(node) {
		t.Error("differently tagged handles are convertible")
	}
	if raw.ConvertibleTo(node) || node.ConvertibleTo(raw) {
		t.Error("handle converts implicitly to or from the raw value")
	}
	if raw.ConvertibleTo(reflect.TypeFor[Index]()) {
		t.Error("raw value converts to Index")
	}
	if !node.Comparable() {
		t.Error("handles should be comparable")
	}
	if node.Size() != reflect.TypeFor[Index]().Size() {
		t.Errorf("handle size %d, want %d", node.Size(), reflect.TypeFor[Index]().Size())
	}

	n := Make[nodeTag](4)
	e := Make[edgeTag](4)
	if n.Raw() != e.Raw() {
		t.Error("raw values should be comparable explicitly")
	}
}

func TestHandle_Arithmetic(t *testing.T) {
	t.Run("postfix increment", func(t *testing.T) {
		h := Make[nodeTag](10)
		old := h.PostInc()
		if h.Raw() != 11 {
			t.Errorf("after PostInc() = %v, want 11", h)
		}
		if old.Raw() != 10 {
			t.Errorf("PostInc() = %v, want 10", old)
		}
	})

	t.Run("pure addition", func(t *testing.T) {
		h := Make[nodeTag](10)
		sum := h.Add(5)
		if sum.Raw() != 15 {
			t.Errorf("Add(5) = %v, want 15", sum)
		}
		if h.Raw() != 10 {
			t.Errorf("original changed to %v", h)
		}
	})

	t.Run("in place", func(t *testing.T) {
		h := Make[nodeTag](10)
		if got := h.Inc(); got.Raw() != 11 {
			t.Errorf("Inc() = %v", got)
		}
		if got := h.Dec(); got.Raw() != 10 {
			t.Errorf("Dec() = %v", got)
		}
		if got := h.PostDec(); got.Raw() != 10 || h.Raw() != 9 {
			t.Errorf("PostDec() = %v, h = %v", got, h)
		}
		h.AddAssign(11)
		if h.Raw() != 20 {
			t.Errorf("AddAssign(11) = %v", h)
		}
		h.SubAssign(20)
		if h.Raw() != 0 {
			t.Errorf("SubAssign(20) = %v", h)
		}
	})

	t.Run("pure subtraction", func(t *testing.T) {
		h := Make[nodeTag](10)
		if got := h.Sub(3); got.Raw() != 7 || h.Raw() != 10 {
			t.Errorf("Sub(3) = %v, h = %v", got, h)
		}
	})

	t.Run("copies are independent", func(t *testing.T) {
		a := Make[nodeTag](1)
		b := a
		b.Inc()
		if a.Raw() != 1 || b.Raw() != 2 {
			t.Errorf("a = %v, b = %v", a, b)
		}
	})
}

func TestHandle_Ordering(t *testing.T) {
	h3, h7, h7b := Make[nodeTag](3), Make[nodeTag](7), Make[nodeTag](7)

	if !h3.Less(h7) {
		t.Error("3 < 7 does not hold")
	}
	if !h7.LessEqual(h7b) {
		t.Error("7 <= 7 does not hold")
	}
	if h7.Less(h7b) {
		t.Error("7 < 7 holds")
	}
	if !h7.GreaterEqual(h3) {
		t.Error("7 >= 3 does not hold")
	}
	if !h7.Greater(h3) || h3.Greater(h7) {
		t.Error("Greater is not the reverse of Less")
	}
	if !h7.Equal(h7b) || h7.NotEqual(h7b) || !h3.NotEqual(h7) {
		t.Error("equality inconsistent")
	}

	hs := []nodeID{Make[nodeTag](9), h7, h3, Make[nodeTag](0)}
	slices.SortFunc(hs, nodeID.Compare)
	for i := 1; i < len(hs); i++ {
		if hs[i].Less(hs[i-1]) {
			t.Fatalf("not sorted: %v", hs)
		}
	}
}

func TestHandle_Set(t *testing.T) {
	var h nodeID
	h.Set(NewIndex(3))
	if h.Property() != NewIndex(3) {
		t.Errorf("Property() = %v after Set", h.Property())
	}
	h.SetRaw(8)
	if h.Raw() != 8 {
		t.Errorf("Raw() = %v after SetRaw(8)", h.Raw())
	}
}

func TestHandle_MapKey(t *testing.T) {
	m := map[nodeID]string{
		Make[nodeTag](1): "a",
		Make[nodeTag](2): "b",
	}
	if m[From[nodeTag, Index](uint32(2))] != "b" {
		t.Error("lookup by equal handle failed")
	}
}

func TestHandle_String(t *testing.T) {
	if got := Make[nodeTag](17).String(); got != "17" {
		t.Errorf("String() = %q", got)
	}
}

func TestHandle_StringFallback(t *testing.T) {
	h := New[nodeTag, counter](41).Add(1)
	if got := h.String(); got != "42" {
		t.Errorf("String() = %q, want raw value 42", got)
	}
	if !h.Greater(New[nodeTag, counter](41)) || !h.LessEqual(h) || !h.GreaterEqual(h) {
		t.Error("ordering does not forward to the property")
	}
}

func TestHandle_TagComparable(t *testing.T) {
	type named interface{ Name() string }
	type sized [2]uint8

	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"empty struct", reflect.TypeFor[Of[nodeTag]]()},
		{"interface", reflect.TypeFor[Of[named]]()},
		{"array", reflect.TypeFor[Of[sized]]()},
		{"generational", reflect.TypeFor[Handle[nodeTag, Generational]]()},
		{"custom property", reflect.TypeFor[Handle[edgeTag, counter]]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.typ.Comparable() {
				t.Errorf("%v is not comparable", tt.typ)
			}
		})
	}

	m := map[Of[named]]int{Make[named](1): 1}
	if m[Make[named](1)] != 1 {
		t.Error("interface-tagged handle does not work as a map key")
	}
}

func TestHandle_LogField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	log.Debug("visit", Field("node", Make[nodeTag](6)))

	fields := logs.All()[0].ContextMap()
	obj, ok := fields["node"].(map[string]any)
	if !ok {
		t.Fatalf("node field = %#v", fields["node"])
	}
	if obj["index"] != uint64(6) {
		t.Errorf("index = %#v, want 6", obj["index"])
	}
}
