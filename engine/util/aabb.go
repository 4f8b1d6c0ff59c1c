package util

import "github.com/go-gl/mathgl/mgl64"

type AABB struct {
	center  mgl64.Vec3
	extents mgl64.Vec3 // size in respective axis, they extend from the center to the max and min
}

func NewAABB(center, extents mgl64.Vec3) AABB {
	return AABB{
		center:  center,
		extents: extents,
	}
}

func NewAABBFromMin(min, extents mgl64.Vec3) AABB {
	return AABB{
		center:  min.Add(extents.Mul(0.5)),
		extents: extents,
	}
}

// NewAABBFromFeet builds the box of an entity standing at feet with the given width and height.
func NewAABBFromFeet(feet mgl64.Vec3, width, height float64) AABB {
	return NewAABBFromMin(mgl64.Vec3{feet.X() - width/2, feet.Y(), feet.Z() - width/2}, mgl64.Vec3{width, height, width})
}

func (a AABB) Min() mgl64.Vec3 {
	return a.center.Sub(a.extents.Mul(0.5))
}

func (a AABB) Max() mgl64.Vec3 {
	return a.center.Add(a.extents.Mul(0.5))
}

func (a AABB) Center() mgl64.Vec3 {
	return a.center
}

func (a AABB) Extents() mgl64.Vec3 {
	return a.extents
}

// Grow expands the box by amount on every side.
func (a AABB) Grow(amount float64) AABB {
	return NewAABB(a.center, a.extents.Add(mgl64.Vec3{amount * 2, amount * 2, amount * 2}))
}

func (a AABB) Intersects(other AABB) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := other.Min(), other.Max()
	return aMin.X() <= bMax.X() && aMax.X() >= bMin.X() &&
		aMin.Y() <= bMax.Y() && aMax.Y() >= bMin.Y() &&
		aMin.Z() <= bMax.Z() && aMax.Z() >= bMin.Z()
}
