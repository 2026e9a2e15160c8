package scene3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}

	up = AxisY
)

// EulerXYZ returns the rotation for Euler angles in XYZ order (matrix Rx·Ry·Rz).
func EulerXYZ(x, y, z float64) mgl64.Quat {
	return mgl64.QuatRotate(x, AxisX).
		Mul(mgl64.QuatRotate(y, AxisY)).
		Mul(mgl64.QuatRotate(z, AxisZ))
}

// LookRotation returns the world rotation that points an object's +Z axis from eye toward target.
func LookRotation(eye, target mgl64.Vec3) mgl64.Quat {
	z := target.Sub(eye)
	if z.Len() == 0 {
		z = AxisZ
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() == 0 {
		// z is parallel to up; nudge it off the axis
		if math.Abs(up.Z()) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4())
}

// LocalLookAt returns the local rotation that makes a child at localPos of a
// parent rotated by parentRot face the world point target. The parent sits at the origin.
func LocalLookAt(parentRot mgl64.Quat, localPos, target mgl64.Vec3) mgl64.Quat {
	worldPos := parentRot.Rotate(localPos)
	return parentRot.Inverse().Mul(LookRotation(worldPos, target))
}

// Compose builds the local matrix T(position)·R(rotation).
func Compose(position mgl64.Vec3, rotation mgl64.Quat) mgl64.Mat4 {
	return mgl64.Translate3D(position.X(), position.Y(), position.Z()).Mul4(rotation.Mat4())
}

// Grid returns the (cols+1)·(rows+1) world points of a width×height plane
// centered on the model origin in its XY plane, row-major from the top-left.
func Grid(model mgl64.Mat4, width, height float64, cols, rows int, dst []mgl64.Vec3) []mgl64.Vec3 {
	dst = dst[:0]
	for j := 0; j <= rows; j++ {
		y := height/2 - height*float64(j)/float64(rows)
		for i := 0; i <= cols; i++ {
			x := -width/2 + width*float64(i)/float64(cols)
			dst = append(dst, model.Mul4x1(mgl64.Vec4{x, y, 0, 1}).Vec3())
		}
	}
	return dst
}
