// Package encoding provides small helpers for writing data out and checking
// files on disk.
package encoding

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON writes value to w as indented JSON followed by a newline.
func WriteJSON[T any](w io.Writer, value T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}

// FileExists checks if a regular file exists at the given path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
