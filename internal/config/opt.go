package config

// Opt is an optional rule value. "Not configured" is distinguishable from a
// configured zero value: an unset rule is simply not checked.
type Opt[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

func (o Opt[T]) IsSet() bool {
	return o.set
}

func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the value when set, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}
