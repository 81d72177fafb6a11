// Package pkg provides the treemap layout libraries.
//
// # Overview
//
// A treemap turns a list of weighted items into a tiling of a rectangle where
// each item's area is proportional to its weight. The pkg directory is
// organized into a small set of focused packages:
//
//  1. [geom] - Rectangle primitives shared by every algorithm
//  2. [treemap] - The layout algorithms (slice, dice, binary, squarify, ordered pivot)
//  3. [scenario] - TOML-described layout jobs for files and fixtures
//  4. [errors] - Structured errors with machine-readable codes
//  5. [observability] - Layout lifecycle hooks and logging
//
// # Architecture
//
// The typical data flow:
//
//	Weighted items (any type, via accessor callbacks)
//	         ↓
//	    [treemap] package (validate + lay out)
//	         ↓
//	    [geom] rectangles written back through the caller's setter
//
// The layout functions never allocate result slices or touch the filesystem;
// callers own their data and receive rectangles through callbacks. The
// [scenario] package layers file-driven configuration on top for tools that
// want it.
package pkg
