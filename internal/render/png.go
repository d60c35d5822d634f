package render

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Encode writes the image as PNG. Opaque images are stored as 24-bit RGB.
func (im *Image) Encode(w io.Writer) error {
	return png.Encode(w, im.RGBA)
}

// Save writes the image as a PNG file at path. The data goes to a temporary
// file in the same directory first and is renamed into place, so a failed
// write never leaves a truncated image behind.
func (im *Image) Save(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".maze-*.png")
	if err != nil {
		return fmt.Errorf("render: cannot create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if err := im.Encode(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("render: cannot encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("render: cannot write %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("render: cannot set permissions on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("render: cannot move image to %s: %w", path, err)
	}
	return nil
}
