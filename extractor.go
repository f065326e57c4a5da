package parlo

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Extractor reads a locale hint from an HTTP request. Returns the locale
// and true when found, or ("", false) when the source has nothing to offer.
type Extractor func(r *http.Request) (string, bool)

// FromCookie returns an extractor that reads a locale from a cookie.
func FromCookie(name string) Extractor {
	return func(r *http.Request) (string, bool) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			return "", false
		}
		return cookie.Value, true
	}
}

// FromQuery returns an extractor that reads a locale from a query parameter.
func FromQuery(name string) Extractor {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromHeader returns an extractor that reads a locale from a request header.
func FromHeader(name string) Extractor {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromAcceptLanguage returns an extractor that negotiates the best match
// between the Accept-Language header and the available locales. The result
// is always one of the available strings as given, never a canonicalized
// tag. Unparseable available entries are skipped.
func FromAcceptLanguage(available ...string) Extractor {
	var tags []language.Tag
	var locales []string
	for _, a := range available {
		tag, err := language.Parse(a)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		locales = append(locales, a)
	}
	if len(tags) == 0 {
		return func(*http.Request) (string, bool) { return "", false }
	}

	matcher := language.NewMatcher(tags)
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		desired, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(desired) == 0 {
			return "", false
		}
		_, index, conf := matcher.Match(desired...)
		if conf == language.No {
			return "", false
		}
		return locales[index], true
	}
}

// extractLocale tries sources in order and returns the first hit.
func extractLocale(sources []Extractor, r *http.Request) (string, bool) {
	for _, src := range sources {
		if v, ok := src(r); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
