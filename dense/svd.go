// SPDX-License-Identifier: MIT
// Package dense: singular value decomposition by implicit QR iteration.
//
// Purpose:
//   - Factor a rows×cols matrix A into U·diag(S)·Vᵀ with orthogonal U, V and
//     the singular values S sorted in descending order.
//   - The kernel is the classical Golub–Kahan–Reinsch scheme in three phases:
//     Householder bidiagonalization (accumulating U and V), boundary setup of
//     the trailing diagonal/superdiagonal pair, then the implicitly shifted
//     QR diagonalization loop with deflation and splitting.
//
// Behavior highlights:
//   - The decomposition exists for every finite matrix, so the constructor
//     fails only on a nil or non-finite input; rank and condition queries
//     are cheap reads afterwards.
//   - A wide matrix (rows < cols) is decomposed through its transpose:
//     Aᵀ = U'·S·V'ᵀ gives A = V'·S·U'ᵀ, so the factors swap roles. The direct
//     schedule accumulates V only up to min(rows, cols) columns and is
//     therefore run on tall or square input exclusively.
//   - Negligibility of superdiagonal/diagonal entries is judged against
//     tiny + eps·(sum of neighboring magnitudes), the LINPACK tolerance.

package dense

import "math"

// SVD holds the converged singular value decomposition.
//   - s has length min(rows, cols) and is sorted descending.
//   - u is rows×min(rows,cols), v is cols×min(rows,cols); both carry
//     orthonormal columns.
type SVD struct {
	s          []float64 // singular values, descending
	u, v       *Dense    // left and right singular vectors
	rows, cols int
}

// NewSVD computes the singular value decomposition of m.
//
// Implementation:
//   - Stage 0: reject non-finite entries (the negligibility tests never hold
//     for NaN, so the iteration would not terminate); route a wide input
//     through its transpose and swap the resulting factors.
//   - Stage 1: bidiagonalize via alternating left/right Householder
//     reflections; the diagonal lands in s, the superdiagonal in e, and the
//     reflections are recorded for back-accumulation into U and V.
//   - Stage 2: set up the trailing one or two entries the generic loop bound
//     leaves unhandled, then generate the full U and V by back-multiplying
//     the stored reflections.
//   - Stage 3: shrink the active bidiagonal block with the four-case
//     implicit-QR loop: deflate a negligible last superdiagonal, split at a
//     negligible diagonal, run a shifted QR step (Wilkinson shift from the
//     trailing 2×2), or accept convergence: force the value non-negative
//     (flipping the matching V column) and bubble it into descending order,
//     swapping U/V columns alongside.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite entry in the input).
//
// Complexity:
//   - Time O(rows·cols·min(rows,cols)) plus the iteration tail, Space O(rows·cols).
func NewSVD(m Matrix) (*SVD, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opSVD, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, opErrorf(opSVD, err)
	}
	for _, x := range src.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, opErrorf(opSVD, ErrNaNInf)
		}
	}

	// Wide input: decompose the transpose and swap the factors.
	if src.r < src.c {
		at, tErr := Transpose(src)
		if tErr != nil {
			return nil, opErrorf(opSVD, tErr)
		}
		dt, tErr := NewSVD(at)
		if tErr != nil {
			return nil, tErr
		}

		return &SVD{s: dt.s, u: dt.v, v: dt.u, rows: src.r, cols: src.c}, nil
	}

	rows, cols := src.r, src.c
	a := src.clone().data // working copy, consumed by the reduction
	nu := rows
	if cols < nu {
		nu = cols
	}
	slen := rows + 1
	if cols < slen {
		slen = cols
	}
	d := &SVD{
		s:    make([]float64, slen),
		rows: rows,
		cols: cols,
	}
	d.u, _ = NewDense(rows, nu)
	d.v, _ = NewDense(cols, cols)
	u, v := d.u.data, d.v.data
	s := d.s
	e := make([]float64, cols)
	work := make([]float64, rows)

	// Stage 1: reduce A to bidiagonal form, storing the diagonal elements
	// in s and the super-diagonal elements in e.
	nct := rows - 1
	if cols < nct {
		nct = cols
	}
	nrt := cols - 2
	if rows < nrt {
		nrt = rows
	}
	if nrt < 0 {
		nrt = 0
	}
	limit := nct
	if nrt > limit {
		limit = nrt
	}

	var i, j, k int
	var t float64
	for k = 0; k < limit; k++ {
		if k < nct {
			// Compute the transformation for the k-th column and place the
			// k-th diagonal in s[k] (2-norm without under/overflow).
			s[k] = 0
			for i = k; i < rows; i++ {
				s[k] = Hypot(s[k], a[i*cols+k])
			}
			if s[k] != 0.0 {
				if a[k*cols+k] < 0.0 {
					s[k] = -s[k]
				}
				for i = k; i < rows; i++ {
					a[i*cols+k] /= s[k]
				}
				a[k*cols+k] += 1.0
			}
			s[k] = -s[k]
		}
		for j = k + 1; j < cols; j++ {
			if k < nct && s[k] != 0.0 {
				// Apply the transformation.
				t = 0
				for i = k; i < rows; i++ {
					t += a[i*cols+k] * a[i*cols+j]
				}
				t = -t / a[k*cols+k]
				for i = k; i < rows; i++ {
					a[i*cols+j] += t * a[i*cols+k]
				}
			}
			// Place the k-th row of A into e for the subsequent
			// calculation of the row transformation.
			e[j] = a[k*cols+j]
		}
		if k < nct {
			// Place the transformation in U for subsequent back multiplication.
			for i = k; i < rows; i++ {
				u[i*nu+k] = a[i*cols+k]
			}
		}
		if k < nrt {
			// Compute the k-th row transformation and place the
			// k-th super-diagonal in e[k].
			e[k] = 0
			for i = k + 1; i < cols; i++ {
				e[k] = Hypot(e[k], e[i])
			}
			if e[k] != 0.0 {
				if e[k+1] < 0.0 {
					e[k] = -e[k]
				}
				for i = k + 1; i < cols; i++ {
					e[i] /= e[k]
				}
				e[k+1] += 1.0
			}
			e[k] = -e[k]
			if k+1 < rows && e[k] != 0.0 {
				// Apply the transformation.
				for i = k + 1; i < rows; i++ {
					work[i] = 0.0
				}
				for j = k + 1; j < cols; j++ {
					for i = k + 1; i < rows; i++ {
						work[i] += e[j] * a[i*cols+j]
					}
				}
				for j = k + 1; j < cols; j++ {
					t = -e[j] / e[k+1]
					for i = k + 1; i < rows; i++ {
						a[i*cols+j] += t * work[i]
					}
				}
			}
			// Place the transformation in V for subsequent back multiplication.
			for i = k + 1; i < cols; i++ {
				v[i*cols+k] = e[i]
			}
		}
	}

	// Stage 2: set up the final bidiagonal matrix of order p.
	p := cols
	if rows+1 < p {
		p = rows + 1
	}
	if nct < cols {
		s[nct] = a[nct*cols+nct]
	}
	if rows < p {
		s[p-1] = 0.0
	}
	if nrt+1 < p {
		e[nrt] = a[nrt*cols+(p-1)]
	}
	e[p-1] = 0.0

	// Generate U.
	for j = nct; j < nu; j++ {
		for i = 0; i < rows; i++ {
			u[i*nu+j] = 0.0
		}
		u[j*nu+j] = 1.0
	}
	for k = nct - 1; k >= 0; k-- {
		if s[k] != 0.0 {
			for j = k + 1; j < nu; j++ {
				t = 0
				for i = k; i < rows; i++ {
					t += u[i*nu+k] * u[i*nu+j]
				}
				t = -t / u[k*nu+k]
				for i = k; i < rows; i++ {
					u[i*nu+j] += t * u[i*nu+k]
				}
			}
			for i = k; i < rows; i++ {
				u[i*nu+k] = -u[i*nu+k]
			}
			u[k*nu+k] = 1.0 + u[k*nu+k]
			for i = 0; i < k-1; i++ {
				u[i*nu+k] = 0.0
			}
		} else {
			for i = 0; i < rows; i++ {
				u[i*nu+k] = 0.0
			}
			u[k*nu+k] = 1.0
		}
	}

	// Generate V.
	for k = cols - 1; k >= 0; k-- {
		if k < nrt && e[k] != 0.0 {
			for j = k + 1; j < nu; j++ {
				t = 0
				for i = k + 1; i < cols; i++ {
					t += v[i*cols+k] * v[i*cols+j]
				}
				t = -t / v[(k+1)*cols+k]
				for i = k + 1; i < cols; i++ {
					v[i*cols+j] += t * v[i*cols+k]
				}
			}
		}
		for i = 0; i < cols; i++ {
			v[i*cols+k] = 0.0
		}
		v[k*cols+k] = 1.0
	}

	// Stage 3: main iteration loop for the singular values.
	pp := p - 1
	var kase int
	var f, g, cs, sn, scale, sp, spm1, epm1, sk, ek, b, c, shift float64
	for p > 0 {
		// Inspect for negligible elements in the s and e arrays. On
		// completion k and kase are set as follows:
		// kase = 1 if s(p) and e[k-1] are negligible and k<p
		// kase = 2 if s(k) is negligible and k<p
		// kase = 3 if e[k-1] is negligible, k<p, and
		//          s(k), ..., s(p) are not negligible (qr step).
		// kase = 4 if e(p-1) is negligible (convergence).
		for k = p - 2; k >= -1; k-- {
			if k == -1 {
				break
			}
			if math.Abs(e[k]) <= tiny+eps*(math.Abs(s[k])+math.Abs(s[k+1])) {
				e[k] = 0.0
				break
			}
		}
		if k == p-2 {
			kase = 4
		} else {
			var ks int
			for ks = p - 1; ks >= k; ks-- {
				if ks == k {
					break
				}
				t = 0
				if ks != p {
					t = math.Abs(e[ks])
				}
				if ks != k+1 {
					t += math.Abs(e[ks-1])
				}
				if math.Abs(s[ks]) <= tiny+eps*t {
					s[ks] = 0.0
					break
				}
			}
			switch {
			case ks == k:
				kase = 3
			case ks == p-1:
				kase = 1
			default:
				kase = 2
				k = ks
			}
		}
		k++

		// Perform the task indicated by kase.
		switch kase {
		// Deflate negligible s(p).
		case 1:
			f = e[p-2]
			e[p-2] = 0.0
			for j = p - 2; j >= k; j-- {
				t = Hypot(s[j], f)
				cs = s[j] / t
				sn = f / t
				s[j] = t
				if j != k {
					f = -sn * e[j-1]
					e[j-1] = cs * e[j-1]
				}
				for i = 0; i < cols; i++ {
					t = cs*v[i*cols+j] + sn*v[i*cols+(p-1)]
					v[i*cols+(p-1)] = -sn*v[i*cols+j] + cs*v[i*cols+(p-1)]
					v[i*cols+j] = t
				}
			}

		// Split at negligible s(k).
		case 2:
			f = e[k-1]
			e[k-1] = 0.0
			for j = k; j < p; j++ {
				t = Hypot(s[j], f)
				cs = s[j] / t
				sn = f / t
				s[j] = t
				f = -sn * e[j]
				e[j] = cs * e[j]
				for i = 0; i < rows; i++ {
					t = cs*u[i*nu+j] + sn*u[i*nu+(k-1)]
					u[i*nu+(k-1)] = -sn*u[i*nu+j] + cs*u[i*nu+(k-1)]
					u[i*nu+j] = t
				}
			}

		// Perform one qr step.
		case 3:
			// Calculate the Wilkinson shift from the trailing 2×2 block,
			// scaled to avoid overflow.
			scale = math.Max(math.Max(math.Max(math.Max(
				math.Abs(s[p-1]), math.Abs(s[p-2])), math.Abs(e[p-2])),
				math.Abs(s[k])), math.Abs(e[k]))
			sp = s[p-1] / scale
			spm1 = s[p-2] / scale
			epm1 = e[p-2] / scale
			sk = s[k] / scale
			ek = e[k] / scale
			b = ((spm1+sp)*(spm1-sp) + epm1*epm1) / 2.0
			c = sp * epm1 * (sp * epm1)
			shift = 0.0
			if b != 0.0 || c != 0.0 {
				shift = math.Sqrt(b*b + c)
				if b < 0.0 {
					shift = -shift
				}
				shift = c / (b + shift)
			}
			f = (sk+sp)*(sk-sp) + shift
			g = sk * ek

			// Chase the bulge of Givens rotations down the active block.
			for j = k; j < p-1; j++ {
				t = Hypot(f, g)
				cs = f / t
				sn = g / t
				if j != k {
					e[j-1] = t
				}
				f = cs*s[j] + sn*e[j]
				e[j] = cs*e[j] - sn*s[j]
				g = sn * s[j+1]
				s[j+1] = cs * s[j+1]
				for i = 0; i < cols; i++ {
					t = cs*v[i*cols+j] + sn*v[i*cols+(j+1)]
					v[i*cols+(j+1)] = -sn*v[i*cols+j] + cs*v[i*cols+(j+1)]
					v[i*cols+j] = t
				}
				t = Hypot(f, g)
				cs = f / t
				sn = g / t
				s[j] = t
				f = cs*e[j] + sn*s[j+1]
				s[j+1] = -sn*e[j] + cs*s[j+1]
				g = sn * e[j+1]
				e[j+1] = cs * e[j+1]
				if j < rows-1 {
					for i = 0; i < rows; i++ {
						t = cs*u[i*nu+j] + sn*u[i*nu+(j+1)]
						u[i*nu+(j+1)] = -sn*u[i*nu+j] + cs*u[i*nu+(j+1)]
						u[i*nu+j] = t
					}
				}
			}
			e[p-2] = f

		// Convergence.
		case 4:
			// Make the singular value non-negative.
			if s[k] <= 0.0 {
				if s[k] < 0.0 {
					s[k] = -s[k]
				} else {
					s[k] = 0.0
				}
				for i = 0; i <= pp; i++ {
					v[i*cols+k] = -v[i*cols+k]
				}
			}
			// Order the singular values.
			for k < pp {
				if s[k] >= s[k+1] {
					break
				}
				t = s[k]
				s[k] = s[k+1]
				s[k+1] = t
				if k < cols-1 {
					for i = 0; i < cols; i++ {
						t = v[i*cols+(k+1)]
						v[i*cols+(k+1)] = v[i*cols+k]
						v[i*cols+k] = t
					}
				}
				if k < rows-1 {
					for i = 0; i < rows; i++ {
						t = u[i*nu+(k+1)]
						u[i*nu+(k+1)] = u[i*nu+k]
						u[i*nu+k] = t
					}
				}
				k++
			}
			p--
		}
	}

	return d, nil
}

// Values returns a copy of the singular values, sorted descending.
// Complexity: O(len(s)).
func (d *SVD) Values() []float64 {
	out := make([]float64, len(d.s))
	copy(out, d.s)

	return out
}

// U returns the left singular vectors as a fresh rows×min(rows,cols) Dense.
// Complexity: O(rows·min(rows,cols)).
func (d *SVD) U() *Dense { return d.u.clone() }

// V returns the right singular vectors as a fresh cols×min(rows,cols) Dense.
// Complexity: O(cols·min(rows,cols)).
func (d *SVD) V() *Dense { return d.v.clone() }

// S returns the diagonal matrix of singular values as a fresh cols×cols Dense.
// Complexity: O(cols²).
func (d *SVD) S() *Dense {
	res, _ := NewDense(d.cols, d.cols)
	n := d.cols
	if len(d.s) < n {
		n = len(d.s)
	}
	for i := 0; i < n; i++ {
		res.data[i*d.cols+i] = d.s[i]
	}

	return res
}

// MaxValue returns the largest singular value, σ_max = S[0].
// Complexity: O(1).
func (d *SVD) MaxValue() float64 { return d.s[0] }

// Norm2 returns the spectral norm of the decomposed matrix (= σ_max).
// Complexity: O(1).
func (d *SVD) Norm2() float64 { return d.s[0] }

// Cond returns the condition ratio σ_max/σ_min. A singular matrix yields
// +Inf, including the all-zero matrix (where the plain ratio would be 0/0).
// Complexity: O(1).
func (d *SVD) Cond() float64 {
	n := d.rows
	if d.cols < n {
		n = d.cols
	}
	if d.s[n-1] == 0.0 {
		return math.Inf(1)
	}

	return d.s[0] / d.s[n-1]
}

// Rank returns the effective numerical rank: the count of singular values
// strictly greater than max(rows, cols) · σ_max · eps.
// Complexity: O(len(s)).
func (d *SVD) Rank() int {
	dim := d.rows
	if d.cols > dim {
		dim = d.cols
	}
	tol := float64(dim) * d.s[0] * eps
	r := 0
	for _, sv := range d.s {
		if sv > tol {
			r++
		}
	}

	return r
}
