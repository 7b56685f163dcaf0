package texture

import (
	"os"
	"path/filepath"
	"strings"
)

// supported lists the artwork extensions the loader can decode.
var supported = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".bmp": true, ".tga": true,
}

// Index maps image references to filesystem paths under an assets directory.
// References are matched by lowercase slash path relative to the root first,
// then by lowercase file stem.
type Index struct {
	root  string
	paths map[string]string // rel path lower → full path
	stems map[string]string // stem lower → full path
}

// BuildIndex scans assetsDir recursively for supported image files.
// A missing directory yields an empty index.
func BuildIndex(assetsDir string) *Index {
	idx := &Index{
		root:  assetsDir,
		paths: make(map[string]string),
		stems: make(map[string]string),
	}
	if assetsDir == "" {
		return idx
	}

	filepath.WalkDir(assetsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !supported[ext] {
			return nil
		}
		rel, err := filepath.Rel(assetsDir, path)
		if err != nil {
			return nil
		}
		idx.paths[strings.ToLower(filepath.ToSlash(rel))] = path

		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if _, exists := idx.stems[stem]; !exists {
			idx.stems[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for an image reference, or ("", false).
func (idx *Index) ResolvePath(ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	if filepath.IsAbs(ref) {
		if _, err := os.Stat(ref); err == nil {
			return ref, true
		}
	}

	key := strings.ReplaceAll(ref, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimPrefix(key, "/")
	if path, ok := idx.paths[strings.ToLower(key)]; ok {
		return path, true
	}

	base := filepath.Base(key)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	path, ok := idx.stems[stem]
	return path, ok
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	return len(idx.paths)
}
