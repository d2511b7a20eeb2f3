// Package mcdm is a small toolkit for multi-criteria decision-making:
// rank a set of alternatives scored against weighted criteria of mixed
// polarity (benefit vs. cost) and get a defensible compromise ordering.
//
// 🚀 What is mcdm?
//
//	A pure-Go library that brings together:
//		• vikor/    — the VIKOR compromise-ranking algorithm (S, R, Q indices)
//		• decision/ — a fluent builder + YAML loader for decision tables,
//		  including boundary-layer weight normalization
//		• export/   — the stable CSV contract (Alternative,S,R,Q,Rank) and
//		  human-readable tables
//		• history/  — an injected name-suggestion store for interactive
//		  front-ends
//
// ✨ Why choose mcdm?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions, no hidden state, stable tie order
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – each method lives in its own package; adding another
//     MCDM method (TOPSIS, AHP, ...) is a new sibling package
//
// Quick start:
//
//	tbl, _ := decision.NewBuilder().
//	    Criterion("Price", 0.4, vikor.Cost).
//	    Criterion("RAM", 0.6, vikor.Benefit).
//	    Alternative("Zephyrus", 1200, 16).
//	    Alternative("Air", 999, 8).
//	    Build()
//	res, _ := tbl.Rank()
//	fmt.Println(res.Best().Label)
//
// A ready-to-use CLI lives in cmd/vikor: feed it a YAML decision file and
// it prints the reference vectors and the ranked table, or exports CSV.
//
//	go get github.com/katalvlaran/mcdm
package mcdm
