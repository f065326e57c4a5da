package hooks

import (
	"slices"
	"sync"
)

// DefaultPriority is used when callers have no ordering requirements.
// Lower priorities run earlier.
const DefaultPriority = 10

// Built-in actions emitted by a Registry whenever its hook set changes.
// HookAdded fires with (hook, namespace, priority), HookRemoved with
// (hook, namespace).
const (
	HookAdded   = "hookAdded"
	HookRemoved = "hookRemoved"
)

// FilterFunc transforms a value as it passes through a filter chain.
// The extra args carry call-site context and must not be mutated.
type FilterFunc func(value any, args ...any) any

// ActionFunc reacts to a named action. Return values are not collected.
type ActionFunc func(args ...any)

type filterEntry struct {
	namespace string
	fn        FilterFunc
	priority  int
}

type actionEntry struct {
	namespace string
	fn        ActionFunc
	priority  int
}

// Registry is an isolated named-filter/named-action registry.
// Filters transform a value through an ordered chain; actions are
// fire-and-forget notifications. Callbacks run in ascending priority
// order, registration order within equal priority.
//
// Registering or removing any callback emits the HookAdded/HookRemoved
// action on the same registry, so subscribers can observe hook churn.
// All methods are safe for concurrent use.
type Registry struct {
	filters map[string][]filterEntry
	actions map[string][]actionEntry
	mu      sync.RWMutex
}

// New creates an empty registry, independent from the shared Default one.
func New() *Registry {
	return &Registry{
		filters: make(map[string][]filterEntry),
		actions: make(map[string][]actionEntry),
	}
}

// AddFilter registers fn under the given hook name. The namespace
// identifies the registration for later removal; it does not have to be
// unique. Nil callbacks are ignored.
func (r *Registry) AddFilter(hook, namespace string, fn FilterFunc, priority int) {
	if hook == "" || fn == nil {
		return
	}

	r.mu.Lock()
	r.filters[hook] = insertOrdered(r.filters[hook], filterEntry{
		namespace: namespace,
		fn:        fn,
		priority:  priority,
	}, func(e filterEntry) int { return e.priority })
	r.mu.Unlock()

	// Emitted outside the lock so HookAdded handlers may mutate the
	// registry without deadlocking.
	r.DoAction(HookAdded, hook, namespace, priority)
}

// RemoveFilter removes all filters registered under hook with the given
// namespace and returns how many were removed.
func (r *Registry) RemoveFilter(hook, namespace string) int {
	r.mu.Lock()
	prev := r.filters[hook]
	kept := slices.DeleteFunc(prev, func(e filterEntry) bool {
		return e.namespace == namespace
	})
	removed := len(prev) - len(kept)
	if len(kept) == 0 {
		delete(r.filters, hook)
	} else {
		r.filters[hook] = kept
	}
	r.mu.Unlock()

	if removed > 0 {
		r.DoAction(HookRemoved, hook, namespace)
	}
	return removed
}

// HasFilter reports whether at least one filter is registered under hook.
func (r *Registry) HasFilter(hook string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.filters[hook]) > 0
}

// ApplyFilters threads value through every filter registered under hook
// and returns the final result. With no filters registered the value is
// returned unchanged. The extra args are passed to each filter as-is.
func (r *Registry) ApplyFilters(hook string, value any, args ...any) any {
	r.mu.RLock()
	chain := slices.Clone(r.filters[hook])
	r.mu.RUnlock()

	for _, e := range chain {
		value = e.fn(value, args...)
	}
	return value
}

// AddAction registers fn under the given action name.
// Nil callbacks are ignored.
func (r *Registry) AddAction(hook, namespace string, fn ActionFunc, priority int) {
	if hook == "" || fn == nil {
		return
	}

	r.mu.Lock()
	r.actions[hook] = insertOrdered(r.actions[hook], actionEntry{
		namespace: namespace,
		fn:        fn,
		priority:  priority,
	}, func(e actionEntry) int { return e.priority })
	r.mu.Unlock()

	r.DoAction(HookAdded, hook, namespace, priority)
}

// RemoveAction removes all actions registered under hook with the given
// namespace and returns how many were removed.
func (r *Registry) RemoveAction(hook, namespace string) int {
	r.mu.Lock()
	prev := r.actions[hook]
	kept := slices.DeleteFunc(prev, func(e actionEntry) bool {
		return e.namespace == namespace
	})
	removed := len(prev) - len(kept)
	if len(kept) == 0 {
		delete(r.actions, hook)
	} else {
		r.actions[hook] = kept
	}
	r.mu.Unlock()

	if removed > 0 {
		r.DoAction(HookRemoved, hook, namespace)
	}
	return removed
}

// HasAction reports whether at least one action is registered under hook.
func (r *Registry) HasAction(hook string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions[hook]) > 0
}

// DoAction invokes every action registered under hook, in order.
// Callbacks run on a snapshot of the registration list, so they may
// add or remove hooks without affecting the current dispatch.
func (r *Registry) DoAction(hook string, args ...any) {
	r.mu.RLock()
	chain := slices.Clone(r.actions[hook])
	r.mu.RUnlock()

	for _, e := range chain {
		e.fn(args...)
	}
}

// insertOrdered places e after every entry with priority <= e's priority,
// keeping registration order stable within equal priority.
func insertOrdered[E any](list []E, e E, priority func(E) int) []E {
	idx := len(list)
	for i, existing := range list {
		if priority(existing) > priority(e) {
			idx = i
			break
		}
	}
	return slices.Insert(list, idx, e)
}
