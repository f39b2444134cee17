// Package glykit is your in-memory toolkit for building, comparing and
// mining glycan structures — from residue-level primitives to common
// subgraph extraction and fragment enrichment statistics.
//
// 🚀 What is glykit?
//
//	A composition-exact carbohydrate structure library that brings together:
//		• Core primitives: monosaccharides, substituents & typed glycosidic links
//		• Structure container: traversal indices, cloning, rerooting, branch labels
//		• Similarity: trait scoring with fuzzy and position-exact modes
//		• Equality: flat, exact-ordering and topological predicates
//		• Subtree search: inclusion scoring, occurrence search, lock-step walks
//		• Common subgraphs: the Aoki similarity-matrix tree matcher
//		• Treelets: k-fragment enumeration, tree kernels & Fisher enrichment
//
// ✨ Why choose glykit?
//
//   - Mass-exact by construction – every bond and group pays its composition loss
//   - Honest about ambiguity – unknown anomers, positions and rings are first-class
//   - Pure Go core – the numerics ride on gonum, nothing else hides underneath
//   - Assembler included – declare residues and bonds, get an indexed structure
//
// Under the hood, everything is organized under six subpackages:
//
//	builder/     — sticky-error structure assembler + named reference glycans
//	composition/ — elemental formula arithmetic & monoisotopic masses
//	core/        — Monosaccharide, Substituent, Link & Glycan primitives
//	similarity/  — trait scoring and the three equality predicates
//	subtree/     — inclusion, occurrence search & maximum common subgraph
//	treelet/     — k-treelet enumeration, similarity kernel & enrichment
//
// Quick ASCII example:
//
//	    GlcNAc─GlcNAc─Man┬─Man
//	                     └─Man
//
//	represents the five-residue core shared by all N-linked glycans.
//
// Dive into the examples/ programs for end-to-end assembly, search and
// enrichment walkthroughs.
//
//	go get github.com/glykit/glykit
package glykit
