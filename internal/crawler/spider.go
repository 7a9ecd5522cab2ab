package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nao1215/linkrank/internal/model"
)

// DefaultExtension marks a file as a corpus page.
const DefaultExtension = ".html"

// Builder turns a corpus directory into a model.Graph.
type Builder struct {
	// extension is the file name suffix of corpus pages.
	extension string

	// extractor pulls link targets out of page content.
	extractor LinkExtractor

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithExtension sets the file name suffix that marks a page.
func WithExtension(ext string) Option {
	return func(b *Builder) {
		b.extension = ext
	}
}

// WithExtractor sets the link extractor.
func WithExtractor(e LinkExtractor) Option {
	return func(b *Builder) {
		b.extractor = e
	}
}

// WithLogger sets a custom logger for the builder.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a Builder reading ".html" pages with the regexp extractor.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		extension: DefaultExtension,
		extractor: NewRegexpExtractor(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build lists dir, extracts the links of every page and returns the graph.
//
// Pages are keyed by their file name exactly as stored on disk. Link targets
// are matched against page names after NFC normalization on both sides, so
// a link spelled with decomposed accents still reaches its page.
// Subdirectories and files without the configured extension are ignored.
// A missing or unreadable directory, or an unreadable page, fails the whole
// build; there is no partial corpus.
func (b *Builder) Build(ctx context.Context, dir string) (*model.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	pages := make([]model.Page, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, b.extension) {
			continue
		}
		pages = append(pages, model.Page(name))
	}
	resolve := newResolver(pages)

	raw := make(map[model.Page][]model.Page, len(pages))
	for _, page := range pages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		path := filepath.Join(dir, string(page))
		content, err := os.ReadFile(path) //nolint:gosec // Corpus path is user-provided
		if err != nil {
			return nil, fmt.Errorf("failed to read page %s: %w", path, err)
		}

		targets := b.extractor.Extract(content)
		links := make([]model.Page, 0, len(targets))
		for _, target := range targets {
			if p, ok := resolve(target); ok {
				links = append(links, p)
			}
		}
		raw[page] = links

		b.logger.Debug("page scanned",
			"page", string(page),
			"hrefs", len(targets),
			"inCorpus", len(links),
			"extractor", b.extractor.Name(),
		)
	}

	g := model.NewGraph(raw)
	b.logger.Info("corpus built",
		"dir", dir,
		"pages", g.Len(),
		"links", g.LinkCount(),
		"sinks", len(g.Sinks()),
	)
	return g, nil
}

// newResolver returns a function mapping a link target to the page it
// names. Names are compared in NFC form. If two files share an NFC form,
// the first one in directory order wins.
func newResolver(pages []model.Page) func(target string) (model.Page, bool) {
	byNFC := make(map[string]model.Page, len(pages))
	for _, p := range pages {
		key := norm.NFC.String(string(p))
		if _, taken := byNFC[key]; !taken {
			byNFC[key] = p
		}
	}
	return func(target string) (model.Page, bool) {
		p, ok := byNFC[norm.NFC.String(target)]
		return p, ok
	}
}
