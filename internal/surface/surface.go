package surface

import (
	"image"
	"math/rand"
	"sync"
)

// Texture is a tileable raster with the repeat factors it should be
// mapped with across its surface.
type Texture struct {
	Image   *image.NRGBA
	RepeatU float64
	RepeatV float64
}

// Set holds the three corridor textures generated for one length.
type Set struct {
	Length  float64
	Floor   Texture
	Wall    Texture
	Ceiling Texture
}

// Generate synthesizes floor, wall and ceiling textures for a corridor of the
// given length. Speckle noise is drawn from seed; the same seed and length
// always produce identical pixels.
func Generate(length float64, seed int64) Set {
	rng := rand.New(rand.NewSource(seed))
	return Set{
		Length:  length,
		Floor:   Floor(length, rng),
		Wall:    Wall(length, rng),
		Ceiling: Ceiling(length),
	}
}

// Floor draws polished concrete with a large and a fine tile grid.
func Floor(length float64, rng *rand.Rand) Texture {
	c := newCanvas(512, 512)
	c.fill(FloorColor)

	for i := 0; i < 3000; i++ {
		x := int(rng.Float64() * 512)
		y := int(rng.Float64() * 512)
		b := int(rng.Float64()*15 + 20)
		c.fillRect(x, y, 2, 2, rgba(b+80, b+80, b+120, 0.15))
	}

	large := rgba(100, 100, 140, 0.25)
	for i := 0; i <= 512; i += 128 {
		c.vline(float64(i), 2, large)
		c.hline(float64(i), 2, large)
	}

	fine := rgba(80, 80, 120, 0.1)
	for i := 0; i <= 512; i += 64 {
		c.vline(float64(i), 1, fine)
		c.hline(float64(i), 1, fine)
	}

	return Texture{Image: c.img, RepeatU: 2, RepeatV: length / 4}
}

// Wall draws a darkening panelled wall with a wainscot line.
func Wall(length float64, rng *rand.Rand) Texture {
	c := newCanvas(512, 256)
	c.fill(WallColor)
	c.verticalGradient(rgba(100, 100, 160, 0.08), rgba(0, 0, 20, 0.15))

	for i := 0; i < 2000; i++ {
		x := int(rng.Float64() * 512)
		y := int(rng.Float64() * 256)
		b := int(rng.Float64()*20 + 30)
		c.fillRect(x, y, 1, 1, rgba(b+60, b+60, b+100, 0.08))
	}

	c.hline(200, 1, rgba(60, 60, 100, 0.2))

	panel := rgba(80, 80, 130, 0.12)
	for i := 0; i <= 512; i += 128 {
		c.vline(float64(i), 1, panel)
	}

	return Texture{Image: c.img, RepeatU: length / 8, RepeatV: 1}
}

// Ceiling draws acoustic tiles with a sparse perforation pattern.
// It has no random component.
func Ceiling(length float64) Texture {
	c := newCanvas(256, 256)
	c.fill(CeilingColor)

	grid := rgba(50, 50, 80, 0.3)
	for i := 0; i <= 256; i += 64 {
		c.vline(float64(i), 2, grid)
		c.hline(float64(i), 2, grid)
	}

	// Perforations sit on every other point of a 16px lattice.
	hole := rgba(20, 20, 40, 0.2)
	for x := 8; x < 256; x += 16 {
		for y := 8; y < 256; y += 16 {
			if (x+y)%32 == 16 {
				c.dot(float64(x), float64(y), 1.5, hole)
			}
		}
	}

	return Texture{Image: c.img, RepeatU: 2, RepeatV: length / 8}
}

// Generator memoizes texture sets per corridor length.
type Generator struct {
	mu   sync.RWMutex
	seed int64
	sets map[float64]Set
}

// NewGenerator returns a generator that seeds every set with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed, sets: make(map[float64]Set)}
}

// For returns the texture set for length, generating it on first use.
func (g *Generator) For(length float64) Set {
	g.mu.RLock()
	if s, ok := g.sets[length]; ok {
		g.mu.RUnlock()
		return s
	}
	g.mu.RUnlock()

	s := Generate(length, g.seed)

	g.mu.Lock()
	defer g.mu.Unlock()
	if existing, ok := g.sets[length]; ok {
		return existing
	}
	g.sets[length] = s
	return s
}
