package texture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// SaveImage writes img to path, choosing the encoder from the extension:
// .webp (lossless), .png or .tga. Parent directories are created.
func SaveImage(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("texture: create dir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".png":
		err = png.Encode(f, img)
	case ".tga":
		err = tga.Encode(f, img)
	default:
		err = fmt.Errorf("unsupported format %q", ext)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("texture: encode %s: %w", path, err)
	}
	return nil
}
