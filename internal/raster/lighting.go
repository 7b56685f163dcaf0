package raster

import (
	"math"

	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/scene"
	"hallway-gallery/internal/surface"
)

// Environment holds the global lighting and fog parameters.
type Environment struct {
	Ambient    [3]float64 // linear, intensity applied
	HemiSky    [3]float64
	HemiGround [3]float64
	FogColor   [3]float64 // sRGB in [0,1]; fog mixes after tone mapping
	FogNear    float64
	FogFar     float64
	Far        float64
	Exposure   float64
}

// DefaultEnvironment returns the corridor lighting: soft white ambient, a
// cool hemisphere fill and dark blue linear fog.
func DefaultEnvironment() Environment {
	fog := surface.BackgroundColor
	return Environment{
		Ambient:    scale3(Linear(surface.Hex("#ffffff")), 0.4),
		HemiSky:    scale3(Linear(surface.Hex("#b1c8ff")), 0.3),
		HemiGround: scale3(Linear(surface.Hex("#1a1a2e")), 0.3),
		FogColor:   [3]float64{float64(fog.R) / 255, float64(fog.G) / 255, float64(fog.B) / 255},
		FogNear:    15,
		FogFar:     80,
		Far:        200,
		Exposure:   1.0,
	}
}

// irradiance returns the ambient plus hemisphere light reaching normal n.
func (e *Environment) irradiance(n mathutil.Vec3) [3]float64 {
	w := 0.5*n[1] + 0.5
	var out [3]float64
	for k := 0; k < 3; k++ {
		out[k] = e.Ambient[k] + e.HemiGround[k]*(1-w) + e.HemiSky[k]*w
	}
	return out
}

// fog returns the fog blend factor for a view depth.
func (e *Environment) fog(depth float64) float64 {
	return smoothstep(e.FogNear, e.FogFar, depth)
}

type pointLight struct {
	pos      mathutil.Vec3
	color    [3]float64 // linear, intensity applied
	distance float64
}

// attenuation falls off linearly to zero at cutoff. A zero cutoff means
// unbounded range.
func attenuation(d, cutoff float64) float64 {
	if cutoff <= 0 {
		return 1
	}
	return math.Max(0, 1-d/cutoff)
}

// lightIndex buckets lights along Z so a shading point only visits lights
// whose range covers it.
type lightIndex struct {
	bucket  float64
	buckets [][]int
	lights  []pointLight
}

const lightBucketSize = 4.0

func newLightIndex(lights []scene.Light, length float64) *lightIndex {
	idx := &lightIndex{bucket: lightBucketSize}
	n := int(math.Ceil((length+4)/idx.bucket)) + 1
	idx.buckets = make([][]int, n)
	for _, l := range lights {
		i := len(idx.lights)
		idx.lights = append(idx.lights, pointLight{
			pos:      l.Position,
			color:    scale3(Linear(l.Color), l.Intensity),
			distance: l.Distance,
		})
		lo := idx.slot(l.Position[2] + l.Distance)
		hi := idx.slot(l.Position[2] - l.Distance)
		for b := lo; b <= hi; b++ {
			idx.buckets[b] = append(idx.buckets[b], i)
		}
	}
	return idx
}

// slot maps a world Z (0 at the entrance, negative down the corridor) to a
// bucket, clamping at both ends.
func (idx *lightIndex) slot(z float64) int {
	b := int(math.Floor((4 - z) / idx.bucket))
	if b < 0 {
		return 0
	}
	if b >= len(idx.buckets) {
		return len(idx.buckets) - 1
	}
	return b
}

// direct sums point-light irradiance at p with normal n.
func (idx *lightIndex) direct(p, n mathutil.Vec3) [3]float64 {
	var out [3]float64
	for _, i := range idx.buckets[idx.slot(p[2])] {
		l := &idx.lights[i]
		toL := l.pos.Sub(p)
		d := toL.Len()
		if (l.distance > 0 && d >= l.distance) || d == 0 {
			continue
		}
		ndl := n.Dot(toL) / d
		if ndl <= 0 {
			continue
		}
		f := ndl * attenuation(d, l.distance)
		for k := 0; k < 3; k++ {
			out[k] += l.color[k] * f
		}
	}
	return out
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		c := float64(i) / 255.0
		if c <= 0.04045 {
			srgbToLinear[i] = c / 12.92
		} else {
			srgbToLinear[i] = math.Pow((c+0.055)/1.055, 2.4)
		}
	}
}

// LinearToSRGB encodes a linear value in [0,1].
func LinearToSRGB(x float64) float64 {
	if x <= 0.0031308 {
		return x * 12.92
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return mathutil.Clamp((x*(2.51*x+0.03))/(x*(2.43*x+0.59)+0.14), 0, 1)
}

func smoothstep(e0, e1, x float64) float64 {
	t := mathutil.Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

func scale3(c [3]float64, s float64) [3]float64 {
	return [3]float64{c[0] * s, c[1] * s, c[2] * s}
}
