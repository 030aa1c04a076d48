package resource

import "testing"

func TestFlagZeroValueUsesDefault(t *testing.T) {
	var f Flag

	if f.IsSet() {
		t.Error("zero Flag should not be set")
	}
	if got := f.Eval(true); got != true {
		t.Errorf("Eval(true) = %v, want true", got)
	}
	if got := f.Eval(false); got != false {
		t.Errorf("Eval(false) = %v, want false", got)
	}
}

func TestFlagBool(t *testing.T) {
	tests := []struct {
		name string
		flag Flag
		def  bool
		want bool
	}{
		{"true overrides false default", Bool(true), false, true},
		{"false overrides true default", Bool(false), true, false},
		{"true with true default", Bool(true), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.flag.IsSet() {
				t.Error("Bool flag should be set")
			}
			if got := tt.flag.Eval(tt.def); got != tt.want {
				t.Errorf("Eval(%v) = %v, want %v", tt.def, got, tt.want)
			}
		})
	}
}

func TestFlagFunc(t *testing.T) {
	calls := 0
	f := Func(func() bool {
		calls++
		return calls == 1
	})

	if !f.IsSet() {
		t.Error("Func flag should be set")
	}
	if got := f.Eval(false); !got {
		t.Error("first Eval should return true")
	}
	if got := f.Eval(true); got {
		t.Error("second Eval should return false (predicate state advanced)")
	}
	if calls != 2 {
		t.Errorf("predicate called %d times, want 2", calls)
	}
}

func TestFlagFuncWinsOverValue(t *testing.T) {
	// A predicate takes precedence even when a fixed value was also set.
	f := Func(func() bool { return true })
	if got := f.Eval(false); !got {
		t.Error("predicate result should win over the default")
	}
}
