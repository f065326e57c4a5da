package parlo

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LoadDir loads one catalog per locale file from the root of fsys. Files
// are named after their locale: fr.json, es.yaml, pt-BR.yml. Other files
// and directories are skipped. Files parse concurrently; the first failure
// aborts the load.
//
// A catalog that names no locale inherits it from the filename stem. A
// catalog that names a different locale than its filename is rejected, so
// a directory cannot silently serve mislabeled translations.
func LoadDir(ctx context.Context, fsys fs.FS) (map[string]*LocaleData, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("parlo: read catalog dir: %w", err)
	}

	var mu sync.Mutex
	catalogs := make(map[string]*LocaleData)

	g, ctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("parlo: read %q: %w", name, err)
			}

			var catalog *LocaleData
			if ext == ".json" {
				catalog, err = ParseJSON(data)
			} else {
				catalog, err = ParseYAML(data)
			}
			if err != nil {
				return fmt.Errorf("parse %q: %w", name, err)
			}

			stem := strings.TrimSuffix(name, path.Ext(name))
			if catalog.Locale == "" {
				catalog.Locale = stem
			} else if !strings.EqualFold(catalog.Locale, stem) {
				return fmt.Errorf("%w: %q declares locale %q", ErrLocaleMismatch, name, catalog.Locale)
			}

			mu.Lock()
			defer mu.Unlock()
			if _, dup := catalogs[catalog.Locale]; dup {
				return fmt.Errorf("parlo: duplicate catalog for locale %q", catalog.Locale)
			}
			catalogs[catalog.Locale] = catalog
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return catalogs, nil
}

// NewProviders builds one provider per catalog, keyed like the input map.
// Options apply to every provider. Close each provider when its scope ends.
func NewProviders(catalogs map[string]*LocaleData, opts ...ProviderOption) map[string]*Provider {
	providers := make(map[string]*Provider, len(catalogs))
	for locale, data := range catalogs {
		providers[locale] = NewProvider(append([]ProviderOption{WithLocaleData(data)}, opts...)...)
	}
	return providers
}
