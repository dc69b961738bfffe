package ply

import (
	"math"
	"strconv"
)

// Value is a single property value. Implementations append their natural
// decimal text with no PLY specific precision applied.
type Value interface {
	AppendPLY(dst []byte) []byte
}

type (
	Int     int64
	Uint    uint64
	Float32 float32
	Float64 float64
)

func (v Int) AppendPLY(dst []byte) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
}

func (v Uint) AppendPLY(dst []byte) []byte {
	return strconv.AppendUint(dst, uint64(v), 10)
}

// AppendPLY uses the shortest decimal that round trips through a float32,
// so Float32(0.1) renders as 0.1.
func (v Float32) AppendPLY(dst []byte) []byte {
	return appendFloat(dst, float64(v), 32)
}

func (v Float64) AppendPLY(dst []byte) []byte {
	return appendFloat(dst, float64(v), 64)
}

// appendFloat never uses exponent notation. Non-finite values come out as
// nan, inf and -inf.
func appendFloat(dst []byte, f float64, bitSize int) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "nan"...)
	case math.IsInf(f, 1):
		return append(dst, "inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-inf"...)
	}
	return strconv.AppendFloat(dst, f, 'f', -1, bitSize)
}

// Format returns the text v contributes to a data line.
func Format(v Value) string {
	return string(v.AppendPLY(nil))
}

// Data is the payload of an attribute: either a Scalar or an Array.
type Data interface {
	// Rows returns the number of values held and whether the data is an
	// array. A scalar always reports one value.
	Rows() (n int, isArray bool)

	// At returns the value for row. A scalar only has row 0.
	At(row int) (Value, bool)
}

// Scalar is a single value, used by single-row elements.
type Scalar[V Value] struct {
	V V
}

func (s Scalar[V]) Rows() (int, bool) { return 1, false }

func (s Scalar[V]) At(row int) (Value, bool) {
	if row != 0 {
		return nil, false
	}
	return s.V, true
}

// Array holds one value per row.
type Array[V Value] []V

func (a Array[V]) Rows() (int, bool) { return len(a), true }

func (a Array[V]) At(row int) (Value, bool) {
	if row < 0 || row >= len(a) {
		return nil, false
	}
	return a[row], true
}

// ArrayOf builds an array attribute with the given PLY type tag.
func ArrayOf[V Value](typ string, values ...V) Attribute {
	return Attribute{Type: typ, Data: Array[V](values)}
}

// ScalarOf builds a scalar attribute with the given PLY type tag.
func ScalarOf[V Value](typ string, v V) Attribute {
	return Attribute{Type: typ, Data: Scalar[V]{V: v}}
}
