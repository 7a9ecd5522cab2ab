// Package main provides the entry point for the linkrank CLI.
//
// linkrank estimates the PageRank of every page in a directory of HTML
// files, once by simulating a random surfer and once by iterating the
// PageRank equation to a fixed point, and prints both results.
//
// Usage:
//
//	linkrank <corpus-directory>
//	linkrank --samples 100000 --seed 42 corpus0
//
// See --help for all available options.
package main

// main is the entry point for linkrank.
func main() {
	Execute()
}
