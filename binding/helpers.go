package binding

import "github.com/newbpydev/tuifw/arena"

// FuncTarget adapts a plain func(T) into a Target. OnClear, if set, runs
// once when the owning binding drops; a nil OnClear makes Clear a no-op.
type FuncTarget[T any] struct {
	Fn      func(value T)
	OnClear func()
}

// Execute implements Target.
func (f FuncTarget[T]) Execute(value any) { f.Fn(value.(T)) }

// Clear implements Target.
func (f FuncTarget[T]) Clear() {
	if f.OnClear != nil {
		f.OnClear()
	}
}

// Bind1 creates a one-source binding (BindingN for N=1): filterMap is
// invoked whenever a fires, and the binding's target (set separately via
// SetTarget) receives its output whenever filterMap reports ok.
func Bind1[A, T any](bs *Bindings, a Source, filterMap func(A) (T, bool)) arena.Id {
	id := bs.New(1, func(sources []any, _ any, _ bool) (any, bool) {
		v, ok := filterMap(sources[0].(A))
		if !ok {
			return nil, false
		}
		return v, true
	})
	bs.SetSource(id, 0, a)
	return id
}

// Bind2 creates a two-source binding.
func Bind2[A, B, T any](bs *Bindings, a Source, b Source, filterMap func(A, B) (T, bool)) arena.Id {
	id := bs.New(2, func(sources []any, _ any, _ bool) (any, bool) {
		v, ok := filterMap(sources[0].(A), sources[1].(B))
		if !ok {
			return nil, false
		}
		return v, true
	})
	bs.SetSource(id, 0, a)
	bs.SetSource(id, 1, b)
	return id
}

// Bind3 creates a three-source binding.
func Bind3[A, B, C, T any](bs *Bindings, a Source, b Source, c Source, filterMap func(A, B, C) (T, bool)) arena.Id {
	id := bs.New(3, func(sources []any, _ any, _ bool) (any, bool) {
		v, ok := filterMap(sources[0].(A), sources[1].(B), sources[2].(C))
		if !ok {
			return nil, false
		}
		return v, true
	})
	bs.SetSource(id, 0, a)
	bs.SetSource(id, 1, b)
	bs.SetSource(id, 2, c)
	return id
}

// BindSync1 creates a BindingYN with one plain source and one sync source:
// filterMap is invoked both when a fires (passing the last value seen from
// the sync source) and when the sync source fires (passing its fresh
// *Y). A BindingYN never has a persistent target value of its own — it
// exists purely to drive Target.Execute as a side effect, matching the
// spec's "get_value() returns None" note.
func BindSync1[A any, Y any, T any](bs *Bindings, a Source, sync SyncSource, filterMap func(A, *Y) (T, bool)) arena.Id {
	id := bs.New(1, func(sources []any, syncVal any, hasSync bool) (any, bool) {
		if !hasSync {
			return nil, false
		}
		v, ok := filterMap(sources[0].(A), syncVal.(*Y))
		if !ok {
			return nil, false
		}
		return v, true
	})
	bs.SetSource(id, 0, a)
	bs.SetSyncSource(id, sync)
	return id
}
