// Package linalg is a dense numerical linear-algebra toolkit: a rectangular
// float64 matrix type plus the three classical factorizations: LU with
// partial pivoting, QR by Householder reflections, and singular value
// decomposition by implicit Golub–Kahan–Reinsch iteration.
//
// 🚀 What is linalg?
//
//	A compact, deterministic library that brings together:
//		• Dense: row-major float64 matrices with safe accessors
//		• Elementary operations: add, subtract, multiply, transpose, Hadamard quotient
//		• LU: row-pivoted factorization, determinant, linear solve
//		• QR: Householder factorization, least-squares solve
//		• SVD: ordered singular values, numerical rank, condition number
//		• Square: a width=height specialization with a direct determinant
//
// ✨ Why choose linalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no map iteration, reproducible results
//   - Pure Go core – no cgo; the only runtime surface is plain errors
//   - Defensive – sentinel errors instead of panics at the public surface
//
// Under the hood, everything is organized under one code subpackage:
//
//	dense/       - Dense storage, arithmetic kernels, LU/QR/SVD, Square
//	cmd/svdplot/ - demo binary rendering singular-value scree plots
//
// Quick sketch of the decomposition flow:
//
//	    A ──► NewLU(A)  ──► Determinant / Solve
//	    A ──► NewQR(A)  ──► IsFullRank / Solve (least squares)
//	    A ──► NewSVD(A) ──► Values / Rank / Cond
//
// Decompositions run eagerly at construction and cache their factors, so
// every subsequent query is a cheap lookup.
//
//	go get github.com/katalvlaran/linalg/dense
package linalg
