package batch

import (
	"encoding/json"
	"os"

	"hallway-gallery/internal/scene"
)

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Index    int     `json:"index"`
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Client   string  `json:"client"`
	Category string  `json:"category"`
	Side     string  `json:"side"`
	Z        float64 `json:"z"`
	Image    string  `json:"image,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// Manifest is the tour output index.
type Manifest struct {
	Length float64         `json:"corridor_length"`
	Frames []ManifestEntry `json:"frames"`
}

// BuildManifest pairs each frame with its render result.
func BuildManifest(s *scene.Scene, results []Result) Manifest {
	m := Manifest{Length: s.Length, Frames: make([]ManifestEntry, len(s.Frames))}
	for i := range s.Frames {
		f := &s.Frames[i]
		e := ManifestEntry{
			Index:    i,
			ID:       f.Item.ID,
			Title:    f.Item.Title,
			Client:   f.Item.Client,
			Category: string(f.Item.Category),
			Side:     f.Side.String(),
			Z:        f.Position[2],
		}
		if i < len(results) {
			if results[i].Success {
				e.Image = results[i].Image
			} else {
				e.Error = results[i].Error
			}
		}
		m.Frames[i] = e
	}
	return m
}

// WriteManifest writes manifest.json to path.
func WriteManifest(path string, s *scene.Scene, results []Result) error {
	data, err := json.MarshalIndent(BuildManifest(s, results), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
