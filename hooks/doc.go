// Package hooks provides a named-filter and named-action registry for
// extensibility points.
//
// Filters transform a value through an ordered callback chain; actions
// are fire-and-forget notifications. Callbacks are keyed by hook name,
// tagged with a namespace for removal, and invoked in ascending priority
// order (registration order within equal priority).
//
// Basic usage:
//
//	import "github.com/parlohq/parlo/hooks"
//
//	reg := hooks.New()
//
//	reg.AddFilter("render.title", "myapp", func(v any, args ...any) any {
//		return strings.ToUpper(v.(string))
//	}, hooks.DefaultPriority)
//
//	title := reg.ApplyFilters("render.title", "hello").(string)
//	// Output: "HELLO"
//
// # Shared Registry
//
// Default returns the process-wide registry; the package-level functions
// delegate to it. Create isolated instances with New when callbacks must
// be scoped to a component's lifetime:
//
//	hooks.AddAction("startup", "myapp", onStartup, hooks.DefaultPriority)
//	hooks.DoAction("startup")
//
// # Change Notifications
//
// Every registration and removal emits the built-in HookAdded or
// HookRemoved action on the same registry, which lets owners of scoped
// registries react to hook churn (for example by rebuilding a derived
// value). Handlers run on a snapshot of the registration list, so they
// may safely add or remove hooks during dispatch.
//
// All operations are safe for concurrent use.
package hooks
