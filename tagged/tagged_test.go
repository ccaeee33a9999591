package tagged_test

import (
	"testing"

	"github.com/katalvlaran/arenalath/tagged"
	"github.com/stretchr/testify/assert"
)

func TestInt32_RoundTrips(t *testing.T) {
	cases := []int32{0, 1, -1, 42, -42, 1 << 30, -(1 << 30)}
	for _, c := range cases {
		v := tagged.FromInt32(c)
		assert.Equal(t, c, v.Int32())
	}
}

func TestFloat32_RoundTrips(t *testing.T) {
	cases := []float32{0, 1.5, -1.5, 3.14159, -2.71828}
	for _, c := range cases {
		v := tagged.FromFloat32(c)
		assert.Equal(t, c, v.Float32())
	}
}

func TestPointer_RoundTrips(t *testing.T) {
	v := tagged.FromPointer(0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), v.Pointer())
}

func TestBits_RoundTripsThroughFromBits(t *testing.T) {
	v := tagged.FromInt32(-7)
	reconstructed := tagged.FromBits(v.Bits())
	assert.Equal(t, v, reconstructed)
}

func TestZero_IsAllZeroUnderEveryAccessor(t *testing.T) {
	assert.Equal(t, int32(0), tagged.Zero.Int32())
	assert.Equal(t, float32(0), tagged.Zero.Float32())
	assert.Equal(t, uint32(0), tagged.Zero.Pointer())
	assert.Equal(t, uint32(0), tagged.Zero.Bits())
}
