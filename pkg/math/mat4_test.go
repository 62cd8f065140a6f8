package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestIdentity(t *testing.T) {
	m := Identity()
	assert.Equal(t, float32(1), m[0])
	assert.Equal(t, float32(1), m[5])
	assert.Equal(t, float32(1), m[10])
	assert.Equal(t, float32(1), m[15])
	assert.Equal(t, float32(0), m[1])
	assert.Equal(t, float32(0), m[4])
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	assert.Equal(t, m, m.Mul(Identity()))
	assert.Equal(t, m, Identity().Mul(m))
}

func TestTranslateScale(t *testing.T) {
	p := Vec3{1, 2, 3}
	assert.Equal(t, Vec3{11, 22, 33}, Translate(10, 20, 30).TransformVec3(p))
	assert.Equal(t, Vec3{2, 4, 6}, Scale(2, 2, 2).TransformVec3(p))

	// Translation is ignored for directions.
	assert.Equal(t, p, Translate(10, 20, 30).TransformDirection(p))
}

func TestRotateY90(t *testing.T) {
	got := RotateY(math32.Pi / 2).TransformVec3(Vec3{1, 0, 0})
	assertVec3InDelta(t, Vec3{0, 0, -1}, got, 1e-5)
}

func TestRotateX90(t *testing.T) {
	got := RotateX(math32.Pi / 2).TransformVec3(Vec3{0, 1, 0})
	assertVec3InDelta(t, Vec3{0, 0, 1}, got, 1e-5)
}

func TestPerspective(t *testing.T) {
	m := Perspective(math32.Pi/4, 1, 0.1, 100)

	assert.NotZero(t, m[0])
	assert.NotZero(t, m[5])
	assert.Equal(t, float32(0), m[15])
	assert.Equal(t, float32(-1), m[11])
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})

	assert.Equal(t, float32(1), m[15])
	// The target ends up straight ahead on -Z at the eye distance.
	assertVec3InDelta(t, Vec3{0, 0, -5}, m.TransformVec3(Vec3{}), 1e-5)
}
