package window

import "github.com/go-gl/gl/v3.3-core/gl"

// SetPolygonMode sets the rasterization mode (gl.FILL, gl.LINE, gl.POINT)
// for both faces.
func SetPolygonMode(mode uint32) {
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
}

// TogglePolygonMode switches between wireframe and filled polygons,
// starting from whatever mode is currently set.
func TogglePolygonMode() {
	var mode [2]int32
	gl.GetIntegerv(gl.POLYGON_MODE, &mode[0])
	SetPolygonMode(nextPolygonMode(mode[0]))
}

func nextPolygonMode(current int32) uint32 {
	if current == gl.LINE {
		return gl.FILL
	}
	return gl.LINE
}
