// SPDX-License-Identifier: MIT

package mandelbrot

// Complex is a point of the complex plane.
type Complex struct {
	Real, Imag float64
}

// escapeRadiusSq is |z|² at which the orbit is considered escaped.
const escapeRadiusSq = 4.0

// Escape returns the number of iterations of z ← z² + c, starting at z = 0,
// performed before |z|² reached 4 or maxIter iterations were done.
//
// The magnitude test uses the squares computed at the start of an iteration,
// i.e. it checks z before that iteration's update; the count therefore
// includes the iteration that observed the escape. maxIter < 1 is treated as 1.
//
// Result in [1, maxIter]. Pure and allocation-free.
//
// Complexity: O(maxIter).
func Escape(c Complex, maxIter int) int {
	if maxIter < 1 {
		maxIter = 1
	}
	var zr, zi, zr2, zi2 float64
	iter := 0
	for {
		zr2 = zr * zr
		zi2 = zi * zi
		zi = 2*zr*zi + c.Imag
		zr = zr2 - zi2 + c.Real
		iter++
		if iter >= maxIter || zr2+zi2 >= escapeRadiusSq {
			return iter
		}
	}
}

// PixelToPlane maps pixel (row, col) of a width×height grid to the complex
// plane: real = (col − width/2)·4/width, imag = (row − height/2)·4/height.
// The grid center maps to the origin; the plane spans [-2, 2) on both axes.
func PixelToPlane(row, col, width, height int) Complex {
	w, h := float64(width), float64(height)
	return Complex{
		Real: (float64(col) - w/2) * 4 / w,
		Imag: (float64(row) - h/2) * 4 / h,
	}
}
