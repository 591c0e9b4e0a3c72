// Package binding implements the spec's N-ary bindings engine: a source
// fires, a pure filter_map combines the current values of up to MaxSources
// sources (plus an optional sync source), and the result is pushed into a
// target. The engine is single-threaded and cooperatively executed; there
// is no internal scheduler, no locking, and no goroutines anywhere in this
// package (spec §5).
package binding

import "github.com/newbpydev/tuifw/arena"

// MaxSources bounds how many plain sources a single binding may hold
// (BindingN for N up to MaxSources).
const MaxSources = 16

// Handler is invoked by a Source whenever its value changes.
type Handler func(value any)

// SyncHandler is invoked by a SyncSource whenever its value changes; value
// is the side-channel's address, boxed as any (typically *Y).
type SyncHandler func(value any)

// HandledSource is returned by Register/RegisterSync: the value observed
// at registration time, and the Detach func that unregisters the handler
// exactly once.
type HandledSource struct {
	Value  any
	Detach func()
}

// Source is a plain observable: a T that notifies registered handlers on
// change.
type Source interface {
	Register(h Handler) HandledSource
}

// SyncSource additionally conveys a mutable side channel (Option<&mut Y> in
// the spec) on registration and on every fire.
type SyncSource interface {
	RegisterSync(h SyncHandler) HandledSource
}

// Target receives the filter_map's output whenever all of a binding's
// sources are present, and is given a chance to clean up on drop.
type Target interface {
	Execute(value any)
	Clear()
}

// Holder is released exactly once when the owning binding drops.
type Holder interface {
	Release()
}

// FilterMap combines a binding's current source values (sources, in source
// order) and, if the binding has a sync source, its current side-channel
// value (sync, hasSync) into an optional target value. Returning ok=false
// means no target invocation happens for this firing.
type FilterMap func(sources []any, sync any, hasSync bool) (value any, ok bool)

// sourceSlot tracks one registered source's last-seen value and its detach
// func, so Drop and SetSource can unregister exactly once.
type sourceSlot struct {
	hasValue bool
	value    any
	detach   func()
}

// binding is the arena-owned node backing BindingN, BindingYN and
// RefBindingYN alike: the spec's own note treats binding.rs/binding_t.rs as
// one superset spec, and which "variant" a given node behaves as is purely
// a function of what its FilterMap returns and whether a sync source was
// ever set — there is no separate representation to maintain.
type binding struct {
	arity   int
	sources [MaxSources]sourceSlot

	sync    sourceSlot
	hasSync bool

	filterMap FilterMap
	target    Target
	holder    Holder
}

// Bindings is the arena of binding nodes a WindowTree embeds (spec §5).
type Bindings struct {
	arena *arena.Arena[binding]
}

// NewBindings creates an empty Bindings arena.
func NewBindings() *Bindings {
	return &Bindings{arena: arena.New[binding]()}
}

// Len reports how many live bindings remain.
func (bs *Bindings) Len() int { return bs.arena.Len() }

// New creates a binding of the given fixed arity (the N in BindingN) with
// the given filter_map and no sources, target, or holder yet. recompute
// will not invoke filterMap until all arity plain sources have been set via
// SetSource, regardless of the order SetSource is called in.
func (bs *Bindings) New(arity int, filterMap FilterMap) arena.Id {
	if arity < 0 || arity > MaxSources {
		panic("binding: arity out of range")
	}
	return arena.Insert(bs.arena, func(self arena.Id) (binding, arena.Id) {
		return binding{arity: arity, filterMap: filterMap}, self
	})
}

// SetTarget installs id's target and immediately recomputes: if all
// sources are already present, the target is invoked with the current
// filter_map output.
func (bs *Bindings) SetTarget(id arena.Id, target Target) {
	bs.arena.Get(id).target = target
	bs.recompute(id)
}

// SetHolder installs the Holder released exactly once when id drops.
func (bs *Bindings) SetHolder(id arena.Id, holder Holder) {
	bs.arena.Get(id).holder = holder
}

// SetSource replaces id's i-th source (spec's "set_source_i"): the prior
// registration at that slot, if any, is unregistered exactly once, the new
// source is registered, its current value seeded, and the binding
// recomputed.
//
// index must be in [0, arity) as declared to New.
func (bs *Bindings) SetSource(id arena.Id, index int, src Source) {
	b := bs.arena.Get(id)
	if index < 0 || index >= b.arity {
		panic("binding: source index out of range")
	}
	if prior := b.sources[index].detach; prior != nil {
		prior()
	}

	hs := src.Register(func(v any) {
		// Re-fetch on every fire: a handler may itself create or drop
		// bindings (spec §4.7 re-entrancy), which can grow bs.arena and
		// move slot storage. Never hold a pointer into the arena across
		// a call that can re-enter it.
		slot := &bs.arena.Get(id).sources[index]
		slot.value, slot.hasValue = v, true
		bs.recompute(id)
	})
	b.sources[index] = sourceSlot{hasValue: true, value: hs.Value, detach: hs.Detach}
	bs.recompute(id)
}

// SetSyncSource installs id's sync source (spec's BindingYN), replacing any
// prior one.
func (bs *Bindings) SetSyncSource(id arena.Id, src SyncSource) {
	b := bs.arena.Get(id)
	if prior := b.sync.detach; prior != nil {
		prior()
	}

	hs := src.RegisterSync(func(v any) {
		slot := &bs.arena.Get(id).sync
		slot.value, slot.hasValue = v, true
		bs.recompute(id)
	})
	b.hasSync = true
	b.sync = sourceSlot{hasValue: true, value: hs.Value, detach: hs.Detach}
	bs.recompute(id)
}

// recompute implements the spec's recompute algorithm: if every declared
// source is present, call filter_map, then release the arena borrow before
// invoking the target.
func (bs *Bindings) recompute(id arena.Id) {
	b, ok := bs.arena.TryGet(id)
	if !ok || b.filterMap == nil {
		return
	}
	var values []any
	if b.arity > 0 {
		values = make([]any, b.arity)
		for i := 0; i < b.arity; i++ {
			if !b.sources[i].hasValue {
				return
			}
			values[i] = b.sources[i].value
		}
	}

	if b.hasSync && !b.sync.hasValue {
		return
	}
	var syncVal any
	if b.hasSync {
		syncVal = b.sync.value
	}

	// b is a value copy (arena.TryGet); filterMap and target below are
	// themselves copied out of it, so calling target.Execute holds no
	// pointer into the arena.
	value, ok := b.filterMap(values, syncVal, b.hasSync)
	if !ok || b.target == nil {
		return
	}
	b.target.Execute(value)
}

// Drop releases id: every registered source and the sync source (if any)
// are unregistered exactly once, then holder.Release and target.Clear are
// each called exactly once (spec §4.7 drop semantics).
func (bs *Bindings) Drop(id arena.Id) {
	b := bs.arena.Remove(id)
	for i := 0; i < b.arity; i++ {
		if b.sources[i].detach != nil {
			b.sources[i].detach()
		}
	}
	if b.hasSync && b.sync.detach != nil {
		b.sync.detach()
	}
	if b.holder != nil {
		b.holder.Release()
	}
	if b.target != nil {
		b.target.Clear()
	}
}
