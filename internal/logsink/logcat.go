//go:build android

package logsink

/*
#cgo LDFLAGS: -llog
#include <android/log.h>
#include <stdlib.h>
*/
import "C"

import (
	"log/slog"
	"unsafe"
)

func systemHandler(level slog.Leveler) *Handler {
	return newSinkHandler(writeLogcat, level)
}

func writeLogcat(level slog.Level, tag, line string) error {
	ctag := C.CString(tag)
	defer C.free(unsafe.Pointer(ctag))
	cline := C.CString(line)
	defer C.free(unsafe.Pointer(cline))
	C.__android_log_write(C.int(priorityFor(level)), ctag, cline)
	return nil
}
