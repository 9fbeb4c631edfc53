package pipeline

import (
	"context"
	"strings"

	"go.trai.ch/swatch/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultListSeparator separates entries of a stylesheet list.
const DefaultListSeparator = ","

// listConcurrency bounds how many list entries compile at once.
const listConcurrency = 4

// IsStylesheet reports whether raw names a preprocessor source, ignoring
// its query and fragment.
func IsStylesheet(raw string) bool {
	p, _, _ := strings.Cut(raw, "#")
	p, _, _ = strings.Cut(p, "?")
	return strings.HasSuffix(p, domain.SourceExt) || strings.HasSuffix(p, domain.SourceExt+".php")
}

// FilterURL returns the compiled artifact URL for a stylesheet source and
// any other URL unchanged.
func (p *Pipeline) FilterURL(ctx context.Context, url string, handle domain.Handle) (string, error) {
	if !IsStylesheet(url) {
		return url, nil
	}
	artifact, err := p.Resolve(ctx, Request{URL: url, Handle: handle})
	if err != nil {
		return "", err
	}
	return artifact.URL, nil
}

// ResolveList filters every entry of a sep delimited list and joins the
// results with the same separator in the same order. Entries are trimmed of
// surrounding whitespace, so "a.css, b.scss" yields "a.css,<artifact>".
// Handles are derived from each entry's path. The first failing entry aborts
// the whole list.
func (p *Pipeline) ResolveList(ctx context.Context, list, sep string) (string, error) {
	if sep == "" {
		sep = DefaultListSeparator
	}
	entries := strings.Split(list, sep)
	results := make([]string, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)

	for i, entry := range entries {
		url := strings.TrimSpace(entry)
		if !IsStylesheet(url) {
			results[i] = url
			continue
		}
		g.Go(func() error {
			filtered, err := p.FilterURL(ctx, url, domain.Handle{})
			if err != nil {
				return err
			}
			results[i] = filtered
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(results, sep), nil
}
