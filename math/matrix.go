// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	gmath "math"

	"qmap/math/vec"
)

// Mat3 is a row major 3x3 matrix.
type Mat3 struct {
	m [9]float64
}

func Identity3() Mat3 {
	return Mat3{
		m: [9]float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
	}
}

// RotationX returns the rotation around the x axis by degree
func RotationX(degree float64) Mat3 {
	sin, cos := gmath.Sincos(Radians(degree))
	// 1, 0, 0
	// 0, cos, -sin
	// 0, sin, cos
	return Mat3{
		m: [9]float64{
			1, 0, 0,
			0, cos, -sin,
			0, sin, cos,
		},
	}
}

// RotationY returns the rotation around the y axis by degree
func RotationY(degree float64) Mat3 {
	sin, cos := gmath.Sincos(Radians(degree))
	// cos, 0, sin
	// 0, 1, 0
	// -sin, 0, cos
	return Mat3{
		m: [9]float64{
			cos, 0, sin,
			0, 1, 0,
			-sin, 0, cos,
		},
	}
}

// RotationZ returns the rotation around the z axis by degree
func RotationZ(degree float64) Mat3 {
	sin, cos := gmath.Sincos(Radians(degree))
	// cos, -sin, 0
	// sin, cos, 0
	// 0, 0, 1
	return Mat3{
		m: [9]float64{
			cos, -sin, 0,
			sin, cos, 0,
			0, 0, 1,
		},
	}
}

// RotationXYZ returns the combined rotation around the x axis by phi,
// the y axis by theta and the z axis by psi, applied in that order.
func RotationXYZ(phi, theta, psi float64) Mat3 {
	return RotationZ(psi).Mul(RotationY(theta)).Mul(RotationX(phi))
}

// RotationAxis returns the rotation around an arbitrary axis by degree.
// The axis does not need to be normalized.
func RotationAxis(degree float64, axis vec.Vec3) Mat3 {
	sin, cos := gmath.Sincos(Radians(degree))
	c := 1 - cos
	a := axis.Normalize()
	return Mat3{
		m: [9]float64{
			cos + a.X*a.X*c, a.X*a.Y*c - a.Z*sin, a.X*a.Z*c + a.Y*sin,
			a.Y*a.X*c + a.Z*sin, cos + a.Y*a.Y*c, a.Y*a.Z*c - a.X*sin,
			a.Z*a.X*c - a.Y*sin, a.Z*a.Y*c + a.X*sin, cos + a.Z*a.Z*c,
		},
	}
}

// Mul returns m*o
func (m Mat3) Mul(o Mat3) Mat3 {
	var n Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			n.m[r*3+c] = m.m[r*3]*o.m[c] + m.m[r*3+1]*o.m[3+c] + m.m[r*3+2]*o.m[6+c]
		}
	}
	return n
}

// Apply returns m*v
func (m Mat3) Apply(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: m.m[0]*v.X + m.m[1]*v.Y + m.m[2]*v.Z,
		Y: m.m[3]*v.X + m.m[4]*v.Y + m.m[5]*v.Z,
		Z: m.m[6]*v.X + m.m[7]*v.Y + m.m[8]*v.Z,
	}
}

func (m Mat3) Det() float64 {
	return m.m[0]*(m.m[4]*m.m[8]-m.m[5]*m.m[7]) -
		m.m[1]*(m.m[3]*m.m[8]-m.m[5]*m.m[6]) +
		m.m[2]*(m.m[3]*m.m[7]-m.m[4]*m.m[6])
}
