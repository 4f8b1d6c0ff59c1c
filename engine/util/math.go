package util

import (
	"fmt"
	"github.com/go-gl/mathgl/mgl64"
	"math"
)

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func EucledianDistance3D(one, two mgl64.Vec3) float64 {
	return math.Sqrt((one.X()-two.X())*(one.X()-two.X()) + (one.Y()-two.Y())*(one.Y()-two.Y()) + (one.Z()-two.Z())*(one.Z()-two.Z()))
}

// ScaleVec multiplies every component by factor. A non-positive factor yields the zero vector.
func ScaleVec(v mgl64.Vec3, factor float64) mgl64.Vec3 {
	if factor <= 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(factor)
}

func IsZeroVec(v mgl64.Vec3) bool {
	return v.X() == 0 && v.Y() == 0 && v.Z() == 0
}

// NormalizeOrZero returns the unit vector of v or the zero vector if v has no length.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	length := v.Len()
	if length == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / length)
}

func VecToString(v mgl64.Vec3) string {
	return fmt.Sprintf("(%0.2f, %0.2f, %0.2f)", v.X(), v.Y(), v.Z())
}
