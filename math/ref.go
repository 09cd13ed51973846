package math

import "fmt"

// The ref types below are non-owning views over a caller-owned float
// buffer at an element offset, e.g. a matrix embedded in a uniform staging
// buffer. Writes through a view land in the backing buffer and are visible
// through every other view of the same range. Overlap is the caller's
// business; there is deliberately no guard.

/** @brief A mutable 4x4 matrix view aliasing 16 floats of a caller buffer. */
type Mat4Ref struct {
	buf    []float32
	offset int
}

/** @brief A read-only 4x4 matrix view aliasing 16 floats of a caller buffer. */
type Mat4ConstRef struct {
	buf    []float32
	offset int
}

// NewMat4Ref returns a mutable view over buf starting at element offset.
func NewMat4Ref(buf []float32, offset int) (Mat4Ref, error) {
	if offset < 0 || offset+16 > len(buf) {
		return Mat4Ref{}, fmt.Errorf("mat4 ref at offset %d needs 16 elements, buffer has %d", offset, len(buf))
	}
	return Mat4Ref{buf: buf, offset: offset}, nil
}

// NewMat4RefConst returns a read-only view over buf starting at element offset.
func NewMat4RefConst(buf []float32, offset int) (Mat4ConstRef, error) {
	if offset < 0 || offset+16 > len(buf) {
		return Mat4ConstRef{}, fmt.Errorf("mat4 const ref at offset %d needs 16 elements, buffer has %d", offset, len(buf))
	}
	return Mat4ConstRef{buf: buf, offset: offset}, nil
}

// At returns coefficient i (column-major, 0..15) from the backing buffer.
func (r Mat4Ref) At(i int) float32 {
	return r.buf[r.offset+i]
}

// Set writes coefficient i straight into the backing buffer.
func (r Mat4Ref) Set(i int, v float32) {
	r.buf[r.offset+i] = v
}

// Load copies the viewed range out into an owning matrix value.
func (r Mat4Ref) Load() Mat4 {
	return NewMat4FromArray(r.buf, r.offset)
}

// Store copies an owning matrix value into the viewed range.
func (r Mat4Ref) Store(m Mat4) {
	m.ToArray(r.buf, r.offset)
}

func (r Mat4ConstRef) At(i int) float32 {
	return r.buf[r.offset+i]
}

func (r Mat4ConstRef) Load() Mat4 {
	return NewMat4FromArray(r.buf, r.offset)
}

/** @brief A mutable 2D affine matrix view aliasing 6 floats of a caller buffer. */
type Mat2x3Ref struct {
	buf    []float32
	offset int
}

// NewMat2x3Ref returns a mutable view over buf starting at element offset.
func NewMat2x3Ref(buf []float32, offset int) (Mat2x3Ref, error) {
	if offset < 0 || offset+6 > len(buf) {
		return Mat2x3Ref{}, fmt.Errorf("mat2x3 ref at offset %d needs 6 elements, buffer has %d", offset, len(buf))
	}
	return Mat2x3Ref{buf: buf, offset: offset}, nil
}

func (r Mat2x3Ref) At(i int) float32 {
	return r.buf[r.offset+i]
}

func (r Mat2x3Ref) Set(i int, v float32) {
	r.buf[r.offset+i] = v
}

func (r Mat2x3Ref) Load() Mat2x3 {
	return NewMat2x3FromArray(r.buf, r.offset)
}

func (r Mat2x3Ref) Store(m Mat2x3) {
	m.ToArray(r.buf, r.offset)
}

/** @brief A mutable 3-component vector view aliasing 3 floats of a caller buffer. */
type Vec3Ref struct {
	buf    []float32
	offset int
}

// NewVec3Ref returns a mutable view over buf starting at element offset.
func NewVec3Ref(buf []float32, offset int) (Vec3Ref, error) {
	if offset < 0 || offset+3 > len(buf) {
		return Vec3Ref{}, fmt.Errorf("vec3 ref at offset %d needs 3 elements, buffer has %d", offset, len(buf))
	}
	return Vec3Ref{buf: buf, offset: offset}, nil
}

func (r Vec3Ref) X() float32     { return r.buf[r.offset] }
func (r Vec3Ref) Y() float32     { return r.buf[r.offset+1] }
func (r Vec3Ref) Z() float32     { return r.buf[r.offset+2] }
func (r Vec3Ref) SetX(v float32) { r.buf[r.offset] = v }
func (r Vec3Ref) SetY(v float32) { r.buf[r.offset+1] = v }
func (r Vec3Ref) SetZ(v float32) { r.buf[r.offset+2] = v }

func (r Vec3Ref) Load() Vec3 {
	return NewVec3FromArray(r.buf, r.offset)
}

func (r Vec3Ref) Store(v Vec3) {
	v.ToArray(r.buf, r.offset)
}
