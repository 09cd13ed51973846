package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat4RefWriteThrough(t *testing.T) {
	buf := make([]float32, 32)
	ref, err := NewMat4Ref(buf, 4)
	require.NoError(t, err)
	constRef, err := NewMat4RefConst(buf, 4)
	require.NoError(t, err)

	ref.Set(0, 42)
	// The write lands in the backing buffer...
	assert.Equal(t, float32(42), buf[4])
	// ...and an independent const view over the same range observes it.
	assert.Equal(t, float32(42), constRef.At(0))
}

func TestMat4RefLoadStore(t *testing.T) {
	buf := make([]float32, 20)
	ref, err := NewMat4Ref(buf, 2)
	require.NoError(t, err)

	m, err := Transform3{
		Translation: NewVec3(1, 2, 3),
		Rotation:    NewQuatFromAxisAngle(NewVec3Up(), DegToRad(15)),
		Scale:       NewVec3One(),
		Order:       OrderTRS,
	}.Compose(nil)
	require.NoError(t, err)

	ref.Store(*m)
	assert.Equal(t, *m, ref.Load())
	// Elements outside the viewed range stay untouched.
	assert.Equal(t, float32(0), buf[0])
	assert.Equal(t, float32(0), buf[1])
	assert.Equal(t, float32(0), buf[18])
}

func TestMat4RefShortBuffer(t *testing.T) {
	buf := make([]float32, 16)
	_, err := NewMat4Ref(buf, 4)
	assert.Error(t, err)
	_, err = NewMat4RefConst(buf, 1)
	assert.Error(t, err)
	_, err = NewMat4Ref(buf, -1)
	assert.Error(t, err)
	_, err = NewMat4Ref(buf, 0)
	assert.NoError(t, err)
}

func TestMat4RefsAlias(t *testing.T) {
	// Two overlapping views share storage; that is the point of refs.
	buf := make([]float32, 24)
	a, err := NewMat4Ref(buf, 0)
	require.NoError(t, err)
	b, err := NewMat4Ref(buf, 8)
	require.NoError(t, err)

	a.Set(8, 7)
	assert.Equal(t, float32(7), b.At(0))
}

func TestMat2x3Ref(t *testing.T) {
	buf := make([]float32, 8)
	ref, err := NewMat2x3Ref(buf, 1)
	require.NoError(t, err)

	m := NewMat2x3FromTranslation(NewVec2(5, 6))
	ref.Store(m)
	assert.Equal(t, m, ref.Load())
	assert.Equal(t, float32(5), ref.At(4))
	assert.Equal(t, float32(5), buf[5])

	_, err = NewMat2x3Ref(buf, 3)
	assert.Error(t, err)
}

func TestVec3Ref(t *testing.T) {
	buf := make([]float32, 6)
	ref, err := NewVec3Ref(buf, 2)
	require.NoError(t, err)

	ref.Store(NewVec3(1, 2, 3))
	assert.Equal(t, float32(2), buf[3])
	ref.SetY(9)
	assert.Equal(t, NewVec3(1, 9, 3), ref.Load())
	assert.Equal(t, float32(9), ref.Y())

	_, err = NewVec3Ref(buf, 4)
	assert.Error(t, err)
}
