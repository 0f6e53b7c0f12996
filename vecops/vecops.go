package vecops

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vector/vector"
)

// ErrLengthMismatch is returned when operand vectors differ in logical length.
var ErrLengthMismatch = errors.New("vecops: length mismatch")

// Vec is the element type all vecops functions operate on.
type Vec = vector.Vector[float64]

func sameLen(vs ...*Vec) bool {
	for _, v := range vs[1:] {
		if v.Len() != vs[0].Len() {
			return false
		}
	}
	return true
}

// Mul computes dst[i] = a[i] * b[i].
func Mul(dst, a, b *Vec) error {
	if !sameLen(dst, a, b) {
		return ErrLengthMismatch
	}
	if dst.IsEmpty() {
		return nil
	}

	vecmath.MulBlock(dst.Slice(), a.Slice(), b.Slice())

	return nil
}

// MulInPlace computes dst[i] *= src[i].
func MulInPlace(dst, src *Vec) error {
	if !sameLen(dst, src) {
		return ErrLengthMismatch
	}
	if dst.IsEmpty() {
		return nil
	}

	vecmath.MulBlockInPlace(dst.Slice(), src.Slice())

	return nil
}

// Magnitude computes out[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(out, re, im *Vec) error {
	if !sameLen(out, re, im) {
		return ErrLengthMismatch
	}
	if out.IsEmpty() {
		return nil
	}

	vecmath.Magnitude(out.Slice(), re.Slice(), im.Slice())

	return nil
}

// Power computes out[i] = re[i]^2 + im[i]^2.
func Power(out, re, im *Vec) error {
	if !sameLen(out, re, im) {
		return ErrLengthMismatch
	}
	if out.IsEmpty() {
		return nil
	}

	vecmath.Power(out.Slice(), re.Slice(), im.Slice())

	return nil
}

// Scale computes dst[i] = src[i] * k.
func Scale(dst, src *Vec, k float64) error {
	if !sameLen(dst, src) {
		return ErrLengthMismatch
	}

	d, s := dst.Slice(), src.Slice()
	for i := range d {
		d[i] = s[i] * k
	}

	return nil
}

// AddInPlace computes dst[i] += src[i].
func AddInPlace(dst, src *Vec) error {
	if !sameLen(dst, src) {
		return ErrLengthMismatch
	}

	d, s := dst.Slice(), src.Slice()
	for i := range d {
		d[i] += s[i]
	}

	return nil
}

// Sum returns the sum of all elements using Kahan compensation for
// numerical stability.
func Sum(v *Vec) float64 {
	var sum, c float64
	for _, x := range v.Slice() {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum
}

// Dot returns the dot product of a and b.
func Dot(a, b *Vec) (float64, error) {
	if !sameLen(a, b) {
		return 0, ErrLengthMismatch
	}

	var acc float64
	as, bs := a.Slice(), b.Slice()
	for i := range as {
		acc += as[i] * bs[i]
	}

	return acc, nil
}
