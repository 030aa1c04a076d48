package resource

// Flag is a boolean that can be fixed at declaration time or computed by a
// nullary predicate at resolution time. The zero value is "unset" and
// evaluates to the default supplied by the caller, so Include defaults to
// true and Skip defaults to false without extra bookkeeping.
//
// A predicate always wins over a fixed value. Predicates are evaluated
// exactly once per resolution pass per entity; callers must not rely on
// side effects inside them.
type Flag struct {
	value bool
	fn    func() bool
	set   bool
}

// Bool returns a Flag fixed to v.
func Bool(v bool) Flag { return Flag{value: v, set: true} }

// Func returns a Flag computed by fn each resolution pass.
// A nil fn yields the unset Flag.
func Func(fn func() bool) Flag { return Flag{fn: fn} }

// Eval returns the flag's value, or def if the flag is unset.
func (f Flag) Eval(def bool) bool {
	if f.fn != nil {
		return f.fn()
	}
	if f.set {
		return f.value
	}
	return def
}

// IsSet reports whether the flag carries a value or predicate.
func (f Flag) IsSet() bool { return f.set || f.fn != nil }
