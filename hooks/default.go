package hooks

// defaultRegistry is the process-wide shared registry. Scoped registries
// (e.g. one per provider) coexist with it; application code that has no
// scope of its own registers here.
var defaultRegistry = New()

// Default returns the process-wide shared registry.
func Default() *Registry {
	return defaultRegistry
}

// AddFilter registers a filter on the shared registry.
func AddFilter(hook, namespace string, fn FilterFunc, priority int) {
	defaultRegistry.AddFilter(hook, namespace, fn, priority)
}

// RemoveFilter removes namespace's filters for hook from the shared registry.
func RemoveFilter(hook, namespace string) int {
	return defaultRegistry.RemoveFilter(hook, namespace)
}

// HasFilter reports whether the shared registry has filters for hook.
func HasFilter(hook string) bool {
	return defaultRegistry.HasFilter(hook)
}

// ApplyFilters threads value through the shared registry's filters for hook.
func ApplyFilters(hook string, value any, args ...any) any {
	return defaultRegistry.ApplyFilters(hook, value, args...)
}

// AddAction registers an action on the shared registry.
func AddAction(hook, namespace string, fn ActionFunc, priority int) {
	defaultRegistry.AddAction(hook, namespace, fn, priority)
}

// RemoveAction removes namespace's actions for hook from the shared registry.
func RemoveAction(hook, namespace string) int {
	return defaultRegistry.RemoveAction(hook, namespace)
}

// HasAction reports whether the shared registry has actions for hook.
func HasAction(hook string) bool {
	return defaultRegistry.HasAction(hook)
}

// DoAction invokes the shared registry's actions for hook.
func DoAction(hook string, args ...any) {
	defaultRegistry.DoAction(hook, args...)
}
