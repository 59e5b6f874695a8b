// Package dense implements dense float64 matrices and the classical
// factorizations built on top of them.
//
// The dense package provides:
//
//   - Dense: a row-major rectangular matrix with safe, error-returning
//     accessors and deterministic loop orders throughout.
//   - Elementary kernels (Add, Sub, Mul, Scale, DivElem, Transpose, MatVec,
//     Augment) as package-level functions returning fresh results, plus
//     in-place forms on *Dense that replace the owned buffer.
//   - LUDecomposition: Crout/Doolittle elimination with partial pivoting;
//     determinant, non-singularity test, and linear solve.
//   - QRDecomposition: compact Householder factorization for rows >= cols;
//     full-rank test and least-squares solve.
//   - SVD: implicit Golub–Kahan–Reinsch iteration; ordered singular values,
//     numerical rank, condition number.
//   - Square: a rows==cols specialization with a direct determinant.
//
// Decompositions copy their source at construction time and run eagerly, so
// a factorization object is immutable and safe to query from many goroutines
// once built. Mutating the source matrix afterwards does not disturb it.
//
// See the examples in this package for usage patterns.
package dense
