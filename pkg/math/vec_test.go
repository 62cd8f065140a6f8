package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestVec2Add(t *testing.T) {
	assert.Equal(t, Vec2{4, 6}, Vec2{1, 2}.Add(Vec2{3, 4}))
}

func TestVec2Length(t *testing.T) {
	assert.Equal(t, float32(5), Vec2{3, 4}.Length())
}

func TestVec2Normalize(t *testing.T) {
	assert.InDelta(t, 1, Vec2{3, 4}.Normalize().Length(), 1e-6)
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
}

func TestVec2Cross(t *testing.T) {
	assert.Equal(t, float32(1), Vec2{1, 0}.Cross(Vec2{0, 1}))
	assert.Equal(t, float32(-1), Vec2{0, 1}.Cross(Vec2{1, 0}))
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
	assert.Equal(t, Vec3{0, 0, -1}, y.Cross(x))
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Z, 1e-6)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{3, 3, 3}, b.Sub(a))
	assert.Equal(t, Vec3{4, 10, 18}, a.Mul(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, Vec3{-1, -2, -3}, a.Neg())
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3{2.5, 3.5, 4.5}, a.Lerp(b, 0.5))
	assert.Equal(t, Vec3{1, 2, 3}, a.Min(b))
	assert.Equal(t, Vec3{4, 5, 6}, a.Max(b))
	assert.InDelta(t, math32.Sqrt(27), a.Distance(b), 1e-6)
}

func TestVec3IsFinite(t *testing.T) {
	assert.True(t, Vec3{1, 2, 3}.IsFinite())
	assert.False(t, Vec3{math32.NaN(), 0, 0}.IsFinite())
	assert.False(t, Vec3{0, math32.Inf(1), 0}.IsFinite())
}
