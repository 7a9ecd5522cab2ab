// Package crawler builds a link graph from a directory of HTML pages.
//
// # Architecture
//
// The crawler package is designed around the Builder type, which lists a
// corpus directory, reads every page with the configured extension, and
// hands the content to a LinkExtractor. Once every page is known, links
// pointing outside the corpus are dropped and the result is returned as an
// immutable model.Graph.
//
// # Extractors
//
//   - RegexpExtractor: the default. Matches <a ... href="..."> with a fixed
//     pattern. Only double-quoted href values are recognized.
//   - HTMLExtractor: tokenizes the page with golang.org/x/net/html and
//     accepts any quoting style the HTML tokenizer understands.
//
// Malformed markup is never an error; it simply yields fewer links.
//
// # Usage
//
//	builder := crawler.NewBuilder(crawler.WithExtension(".html"))
//	graph, err := builder.Build(ctx, "corpus0")
//
// # Page names
//
// A page is named by its file name exactly as the directory lists it. Link
// targets are matched to those names after Unicode NFC normalization, so a
// link written in composed form still reaches a file whose name the file
// system stores decomposed.
package crawler
