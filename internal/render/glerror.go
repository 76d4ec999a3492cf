package render

import (
	"fmt"
	"log/slog"
)

var glErrorNames = map[Enum]string{
	INVALID_ENUM:                  "GL_INVALID_ENUM",
	INVALID_VALUE:                 "GL_INVALID_VALUE",
	INVALID_OPERATION:             "GL_INVALID_OPERATION",
	INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}

// GLErrorName returns the symbolic name of a GL error code.
func GLErrorName(code Enum) string {
	if code == NO_ERROR {
		return "GL_NO_ERROR"
	}
	if name, ok := glErrorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("unknown GL error 0x%04X", uint32(code))
}

// CheckGLError pops one pending error and logs it. It returns true when no
// error was pending. With alwaysLog set, the clean case is logged too.
func CheckGLError(gl GL, log *slog.Logger, alwaysLog bool) bool {
	code := gl.GetError()
	if code == NO_ERROR {
		if alwaysLog {
			log.Info("No GL error")
		}
		return true
	}
	log.Error("GL Error: " + GLErrorName(code))
	return false
}
