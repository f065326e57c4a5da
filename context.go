package parlo

import (
	"context"
	"sync"
)

type providerCtxKey struct{}

var defaultTranslator = sync.OnceValue(func() *Translator {
	return NewTranslator(nil)
})

// FromContext returns the Translator published by the nearest enclosing
// [Provider]. Contexts outside any provider yield a process-wide identity
// translator with locale "en" and no catalog, so reads never fail.
func FromContext(ctx context.Context) *Translator {
	if p, ok := ctx.Value(providerCtxKey{}).(*Provider); ok {
		return p.Translator()
	}
	return defaultTranslator()
}

// ProviderFromContext returns the nearest enclosing Provider and whether one
// was present.
func ProviderFromContext(ctx context.Context) (*Provider, bool) {
	p, ok := ctx.Value(providerCtxKey{}).(*Provider)
	return p, ok
}
