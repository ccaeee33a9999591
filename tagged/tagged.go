// Package tagged defines the 32-bit-wide value carried by every key and
// payload slot in this module: a signed 32-bit integer, an IEEE-754 single
// float, or an opaque pointer-sized handle, with no runtime discriminator.
// The caller is always the one who knows which field is live, matching the
// union the rest of the module is built on (minheap.Heap keys/values,
// graph.Graph vertex payloads).
package tagged

import "math"

// Value is a 32-bit-wide tagged union. Exactly one constructor should be
// used to produce a given Value, and the matching accessor to read it back;
// reading through the wrong accessor silently reinterprets the bits.
type Value struct {
	bits uint32
}

// FromInt32 builds a Value carrying a signed 32-bit integer.
func FromInt32(v int32) Value {
	return Value{bits: uint32(v)}
}

// Int32 reinterprets the Value's bits as a signed 32-bit integer.
func (v Value) Int32() int32 {
	return int32(v.bits)
}

// FromFloat32 builds a Value carrying an IEEE-754 single-precision float.
func FromFloat32(v float32) Value {
	return Value{bits: math.Float32bits(v)}
}

// Float32 reinterprets the Value's bits as an IEEE-754 single float.
func (v Value) Float32() float32 {
	return math.Float32frombits(v.bits)
}

// FromPointer builds a Value carrying an opaque 32-bit handle — typically
// a slot or vertex index rather than a real machine pointer, since Go
// offers no portable 32-bit pointer representation.
func FromPointer(v uint32) Value {
	return Value{bits: v}
}

// Pointer reinterprets the Value's bits as an opaque 32-bit handle.
func (v Value) Pointer() uint32 {
	return v.bits
}

// Bits exposes the raw 32 bits, e.g. for hashing or direct buffer encoding.
func (v Value) Bits() uint32 {
	return v.bits
}

// FromBits reconstructs a Value from raw bits, the inverse of Bits.
func FromBits(bits uint32) Value {
	return Value{bits: bits}
}

// Zero is the Value whose bits are all zero (Int32() == 0, Float32() == 0,
// Pointer() == 0).
var Zero = Value{}
