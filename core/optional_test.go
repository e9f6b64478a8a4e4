package core

import "testing"

func TestOptional_States(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		o         Optional[int]
		state     State
		specified bool
		null      bool
		value     int
		ok        bool
	}{
		{name: "unspecified", o: Unspecified[int](), state: Unset},
		{name: "null", o: Null[int](), state: ExplicitNull, specified: true, null: true},
		{name: "zero value", o: Some(0), state: Present, specified: true, ok: true},
		{name: "value", o: Some(42), state: Present, specified: true, value: 42, ok: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.o.State(); got != tc.state {
				t.Fatalf("State()=%v, want %v", got, tc.state)
			}
			if tc.o.IsSpecified() != tc.specified || tc.o.IsNull() != tc.null {
				t.Fatalf("IsSpecified()=%v IsNull()=%v", tc.o.IsSpecified(), tc.o.IsNull())
			}
			v, ok := tc.o.Get()
			if v != tc.value || ok != tc.ok {
				t.Fatalf("Get()=(%v,%v), want (%v,%v)", v, ok, tc.value, tc.ok)
			}
		})
	}
}

func TestOptional_ValueOr(t *testing.T) {
	t.Parallel()

	if got := Null[string]().ValueOr("def"); got != "def" {
		t.Fatalf("ValueOr on null=%q", got)
	}
	if got := Some("x").ValueOr("def"); got != "x" {
		t.Fatalf("ValueOr on value=%q", got)
	}
}

func TestOptional_NullableInterop(t *testing.T) {
	t.Parallel()

	for _, o := range []Optional[string]{Unspecified[string](), Null[string](), Some("v")} {
		n := o.Nullable()
		if n.IsSpecified() != o.IsSpecified() || n.IsNull() != o.IsNull() {
			t.Fatalf("Nullable() of %v: specified=%v null=%v", o.State(), n.IsSpecified(), n.IsNull())
		}
		back := FromNullable(n)
		if back != o {
			t.Fatalf("FromNullable(Nullable())=%+v, want %+v", back, o)
		}
	}
}
