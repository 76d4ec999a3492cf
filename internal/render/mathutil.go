package render

import "github.com/go-gl/mathgl/mgl32"

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OrthographicMatrix builds a column-major orthographic projection from the
// half-height of the view volume, its aspect ratio and the near/far planes.
// Elements are addressed [column][row], so m[2][3] is m[2*4+3].
// near == far divides by zero.
func OrthographicMatrix(halfHeight, aspect, near, far float32) mgl32.Mat4 {
	halfWidth := halfHeight * aspect
	var m mgl32.Mat4

	// column 0
	m[0] = 1 / halfWidth

	// column 1
	m[5] = 1 / halfHeight

	// column 2
	m[10] = -2 / (far - near)
	m[11] = -(far + near) / (far - near)

	// column 3
	m[15] = 1
	return m
}

func IdentityMatrix() mgl32.Mat4 {
	return mgl32.Ident4()
}
