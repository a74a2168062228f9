package vmath

import (
	"math"
	"strconv"
)

// Vec3F is a float64 3D vector in world units
// Y is up; the arena floor is the X/Z plane
type Vec3F struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Zero3F is the origin
var Zero3F = Vec3F{}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDist returns the Euclidean distance between a and b
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDiv divides each component by d, returning zero for a non-positive divisor
// Results equal per-component division exactly; never scale by a reciprocal
func V3FDiv(v Vec3F, d float64) Vec3F {
	if d <= 0 {
		return Vec3F{}
	}
	return Vec3F{v.X / d, v.Y / d, v.Z / d}
}

// FormatFixed2 renders the vector as "(x.xx, y.yy, z.zz)"
// Appends into a stack buffer; called every tick by the presenter
func (v Vec3F) FormatFixed2() string {
	var buf [64]byte
	b := append(buf[:0], '(')
	b = strconv.AppendFloat(b, cleanZero(v.X), 'f', 2, 64)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, cleanZero(v.Y), 'f', 2, 64)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, cleanZero(v.Z), 'f', 2, 64)
	b = append(b, ')')
	return string(b)
}

// FormatScalar2 renders a scalar with two decimals
func FormatScalar2(f float64) string {
	return strconv.FormatFloat(cleanZero(f), 'f', 2, 64)
}

// cleanZero maps values that round to zero onto +0 so "-0.00" never shows
func cleanZero(f float64) float64 {
	if math.Abs(f) < 0.005 {
		return 0
	}
	return f
}
