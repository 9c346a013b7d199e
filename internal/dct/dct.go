// Package dct implements the type-II discrete cosine transform on square
// blocks, with the orthonormal 2D basis precomputed once per transform size.
package dct

import "math"

type DCT struct {
	n     int
	basis []float64
}

// New precomputes the 2D basis functions for n x n blocks.
func New(n int) *DCT {
	nf := float64(n)

	// 1D basis: phi[i*n+j] is the i-th basis function sampled at j.
	phi := make([]float64, n*n)
	for j := range n {
		phi[j] = 1.0 / math.Sqrt(nf)
	}
	for i := 1; i < n; i++ {
		for j := range n {
			phi[i*n+j] = math.Sqrt(2.0/nf) *
				math.Cos(float64(i)*math.Pi*(2.0*float64(j)+1)/(2.0*nf))
		}
	}

	// 2D basis as the outer product of row and column functions.
	d := &DCT{n: n, basis: make([]float64, n*n*n*n)}
	for i := range n { // coefficient row
		for j := range n { // coefficient column
			for x := range n { // sample row
				for y := range n { // sample column
					d.basis[((i*n+j)*n+x)*n+y] = phi[i*n+x] * phi[j*n+y]
				}
			}
		}
	}
	return d
}

// Exec transforms one n x n block into its coefficient matrix and returns an
// inverse function. Calling the inverse writes the reconstruction of the
// (possibly perturbed) coefficients back into block.
func (d *DCT) Exec(block []float64) ([]float64, func()) {
	n := d.n
	coef := make([]float64, n*n)
	for i := range n {
		for j := range n {
			sum := 0.0
			base := (i*n + j) * n * n
			for x := range n {
				for y := range n {
					sum += d.basis[base+x*n+y] * block[x*n+y]
				}
			}
			coef[i*n+j] = sum
		}
	}

	inverse := func() {
		for x := range n {
			for y := range n {
				sum := 0.0
				for i := range n {
					for j := range n {
						sum += d.basis[((i*n+j)*n+x)*n+y] * coef[i*n+j]
					}
				}
				block[x*n+y] = sum
			}
		}
	}
	return coef, inverse
}
