package main

import (
	"errors"
	"math"
)

// errDegenerateGeometry reports a zero-length wall or direction vector.
// Walls that trip it are skipped for the current frame, never fatal.
var errDegenerateGeometry = errors.New("degenerate geometry")

// vec2 is a 2D point or direction in screen coordinates.
type vec2 struct {
	X, Y float64
}

func v2(x, y float64) vec2 {
	return vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v vec2) Add(o vec2) vec2 {
	return vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v vec2) Sub(o vec2) vec2 {
	return vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector scaled by s.
func (v vec2) Scale(s float64) vec2 {
	return vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v vec2) Dot(o vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product (perp-dot) of two vectors.
func (v vec2) Cross(o vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Perp returns the vector rotated 90 degrees counterclockwise.
func (v vec2) Perp() vec2 {
	return vec2{-v.Y, v.X}
}

// Length returns the magnitude of the vector.
func (v vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared magnitude of the vector.
func (v vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction, or the zero
// vector when the input has no length.
func (v vec2) Normalize() vec2 {
	l := v.Length()
	if l == 0 {
		return vec2{}
	}
	return vec2{v.X / l, v.Y / l}
}

// Angle returns the heading of the vector in radians.
func (v vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// fromAngle returns the unit vector with the given heading in radians.
func fromAngle(rad float64) vec2 {
	return vec2{math.Cos(rad), math.Sin(rad)}
}

// intersectRaySegment returns the smallest ray parameter t at which the
// infinite ray origin+t*dir crosses the finite segment [a,b], and the
// crossing point. Hits with t below hitEpsilon are rejected so a ray
// leaving a surface cannot immediately re-hit it. dir must be a unit
// vector so t is in world units.
func intersectRaySegment(origin, dir, a, b vec2) (float64, vec2, bool) {
	seg := b.Sub(a)
	perp := dir.Perp()
	denom := seg.Dot(perp)
	if math.Abs(denom) < parallelEpsilon {
		return 0, vec2{}, false
	}
	toOrigin := origin.Sub(a)
	t := seg.Cross(toOrigin) / denom
	u := toOrigin.Dot(perp) / denom
	if t < hitEpsilon || u < 0 || u > 1 {
		return 0, vec2{}, false
	}
	return t, origin.Add(dir.Scale(t)), true
}

// segmentNormal returns the unit normal of segment [a,b] oriented against
// the incoming direction, so dot(incoming, normal) < 0 before reflection.
func segmentNormal(a, b, incoming vec2) (vec2, error) {
	seg := b.Sub(a)
	if seg.LengthSquared() < degenerateEpsilon {
		return vec2{}, errDegenerateGeometry
	}
	n := seg.Perp().Normalize()
	if n.Dot(incoming) > 0 {
		n = n.Scale(-1)
	}
	return n, nil
}

// reflectDir mirrors dir about the unit normal n: d' = d - 2(d.n)n.
func reflectDir(dir, n vec2) vec2 {
	return dir.Sub(n.Scale(2 * dir.Dot(n)))
}

// pointSegmentDistance returns the distance from p to the closest point on
// segment [a,b].
func pointSegmentDistance(p, a, b vec2) float64 {
	seg := b.Sub(a)
	l2 := seg.LengthSquared()
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(seg) / l2
	if t < 0 {
		return p.Sub(a).Length()
	}
	if t > 1 {
		return p.Sub(b).Length()
	}
	return p.Sub(a.Add(seg.Scale(t))).Length()
}

// lerp linearly interpolates between from and to.
func lerp(from, to, t float64) float64 {
	if t > 1 {
		t = 1
	} else if t < 0 {
		t = 0
	}
	return from + t*(to-from)
}
