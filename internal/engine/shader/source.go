package shader

import (
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/logger"
)

// ReadSource returns the GLSL source at path, or builtin when path is empty.
//
// A read failure is logged and yields an empty source. Compiling the empty
// source then fails and is reported by the compile path, so a missing file
// ends in an invalid program rather than an aborted start.
func ReadSource(path, builtin string) string {
	if path == "" {
		return builtin
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("shader file not read", zap.String("path", path), zap.Error(err))
		return ""
	}
	return string(data)
}
