// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// macheps is the double precision machine epsilon
const macheps = 2.220446049250313e-16

// brent finds a root of f within [xa,xb] using Brent's derivative-free
// method: bisection combined with secant and inverse quadratic interpolation.
//
//	References:
//	 [1] Brent RP (1973) Algorithms for Minimization Without Derivatives,
//	     Prentice-Hall, Englewood Cliffs, Chapter 4
func brent(f func(float64) (float64, error), xa, xb, tol float64, nmax int, verbose bool) (root float64, nit int, err error) {
	a, b := xa, xb
	fa, err := f(a)
	if err != nil {
		return 0, 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, 0, err
	}
	if fa*fb > 0 {
		return 0, 0, chk.Err("root is not bracketed: f(%g)=%g and f(%g)=%g have the same sign", xa, fa, xb, fb)
	}
	c, fc := b, fb
	var d, e float64
	for it := 1; it <= nmax; it++ {
		nit = it
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2.0*macheps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if verbose {
			io.Pfgrey("    it=%2d  x=%23.15e  f(x)=%23.15e\n", it, b, fb)
		}
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nit, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			var p, q, r float64
			s := fb / fa
			if a == c {
				p = 2.0 * xm * s
				q = 1.0 - s
			} else {
				q = fa / fc
				r = fb / fc
				p = s * (2.0*xm*q*(q-r) - (b-a)*(r-1.0))
				q = (q - 1.0) * (r - 1.0) * (s - 1.0)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3.0*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2.0*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		if fb, err = f(b); err != nil {
			return 0, nit, err
		}
	}
	return b, nit, chk.Err("convergence failed after %d iterations: x=%g f(x)=%g", nmax, b, fb)
}
