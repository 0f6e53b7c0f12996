// Package vecops provides element-wise float64 math over vector.Vector
// values. The block-multiply and complex-pair kernels delegate to the
// SIMD-dispatched algo-vecmath routines; the remaining operations are
// plain scalar loops.
//
// All binary operations require operands of equal logical length and
// return ErrLengthMismatch otherwise, leaving the destination untouched.
package vecops
