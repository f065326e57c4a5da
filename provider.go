package parlo

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/parlohq/parlo/hooks"
)

// Provider owns a filter registry for one scope and keeps a [Translator]
// snapshot in sync with both its locale data and the registry's evolving
// filter set. Every change notification replaces the snapshot synchronously,
// so a consumer reading through [FromContext] after the notification always
// observes the new filters.
//
// Providers nest through [Provider.Context]: the innermost provider wins,
// mirroring scoped configuration. Call [Provider.Close] when the scope ends
// to detach the provider from the shared registry.
type Provider struct {
	registry  *hooks.Registry
	namespace string
	logger    *slog.Logger

	mu         sync.RWMutex
	data       *LocaleData
	translator *Translator
	closed     bool
}

// ProviderOption configures a [Provider] during construction.
type ProviderOption func(*Provider)

// WithLocaleData sets the provider's initial translation catalog.
func WithLocaleData(data *LocaleData) ProviderOption {
	return func(p *Provider) {
		p.data = data
	}
}

// WithLogger sets the logger for snapshot rebuild diagnostics. Defaults to
// a no-op logger.
func WithLogger(logger *slog.Logger) ProviderOption {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider creates a provider with a fresh private filter registry and
// builds its initial translator snapshot.
//
// Filters registered through the package-level [hooks] functions land on the
// shared registry and announce themselves only there, so the provider
// re-broadcasts the shared registry's change notifications onto its private
// one. Local subscribers then observe every change regardless of which
// registry received it.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		registry:  hooks.New(),
		namespace: "parlo/provider/" + uuid.NewString(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.mu.Lock()
	p.rebuildLocked()
	p.mu.Unlock()

	shared := hooks.Default()
	shared.AddAction(hooks.HookAdded, p.namespace, func(args ...any) {
		p.registry.DoAction(hooks.HookAdded, args...)
	}, hooks.DefaultPriority)
	shared.AddAction(hooks.HookRemoved, p.namespace, func(args ...any) {
		p.registry.DoAction(hooks.HookRemoved, args...)
	}, hooks.DefaultPriority)

	p.registry.AddAction(hooks.HookAdded, p.namespace, func(...any) { p.rebuild() }, hooks.DefaultPriority)
	p.registry.AddAction(hooks.HookRemoved, p.namespace, func(...any) { p.rebuild() }, hooks.DefaultPriority)

	return p
}

// Translator returns the current snapshot. The returned value is immutable;
// hold on to it for a consistent view or re-read to pick up filter changes.
func (p *Provider) Translator() *Translator {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.translator
}

// Registry returns the provider's private filter registry. Filters added
// here trigger a snapshot rebuild through the registry's own change
// notifications.
func (p *Provider) Registry() *hooks.Registry {
	return p.registry
}

// LocaleData returns the provider's current catalog, nil when none was set.
func (p *Provider) LocaleData() *LocaleData {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data
}

// SetLocaleData replaces the provider's catalog and rebuilds the snapshot.
// Passing the value already held is a no-op, so repeated calls with the
// same catalog stay cheap. Closed providers ignore the call.
func (p *Provider) SetLocaleData(data *LocaleData) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.data == data {
		return
	}
	p.data = data
	p.rebuildLocked()
}

// Context returns a child context carrying the provider. Nested calls
// shadow outer providers; [FromContext] resolves the nearest one.
func (p *Provider) Context(ctx context.Context) context.Context {
	return context.WithValue(ctx, providerCtxKey{}, p)
}

// Close detaches the provider from the shared registry and stops snapshot
// rebuilds. Safe to call multiple times. Existing snapshots and contexts
// remain readable; they simply stop tracking further changes.
func (p *Provider) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	shared := hooks.Default()
	shared.RemoveAction(hooks.HookAdded, p.namespace)
	shared.RemoveAction(hooks.HookRemoved, p.namespace)
	p.registry.RemoveAction(hooks.HookAdded, p.namespace)
	p.registry.RemoveAction(hooks.HookRemoved, p.namespace)

	p.logger.Debug("provider closed", "namespace", p.namespace)
	return nil
}

func (p *Provider) rebuild() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rebuildLocked()
}

func (p *Provider) rebuildLocked() {
	if p.closed {
		return
	}
	p.translator = NewTranslator(p.data, WithFilters(p.registry))
	p.logger.Debug("rebuilt translation snapshot", "locale", p.translator.Locale())
}
