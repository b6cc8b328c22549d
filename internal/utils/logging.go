// internal/utils/logging.go
package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// SetupLogging points the standard logger at dir/name when debug is set and
// discards output otherwise. The returned file is nil when logging is off;
// the caller closes it on exit.
func SetupLogging(debug bool, dir, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
