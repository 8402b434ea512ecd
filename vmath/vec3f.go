package vmath

import (
	"math"
	"math/rand"
)

// Vec3F is a float64 3D vector in sketch space
type Vec3F struct {
	X, Y, Z float64
}

// Vec2F is a float64 point on the projection plane
type Vec2F struct {
	X, Y float64
}

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

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FLerp interpolates a→b, t=0 yields a and t=1 yields b
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FRandomUnit returns a direction uniformly distributed on the unit sphere
func V3FRandomUnit(rng *rand.Rand) Vec3F {
	// Archimedes: uniform z and azimuth give uniform area
	z := rng.Float64()*2 - 1
	phi := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(1 - z*z)
	return Vec3F{r * math.Cos(phi), r * math.Sin(phi), z}
}

// V3FRotateX rotates v around the X axis by angle radians
func V3FRotateX(v Vec3F, angle float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// V3FRotateY rotates v around the Y axis by angle radians
func V3FRotateY(v Vec3F, angle float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

func V2FDist(a, b Vec2F) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// MapRange linearly maps v from [inLo, inHi] to [outLo, outHi] without clamping
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}
