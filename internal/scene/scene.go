package scene

import (
	"image"
	"image/color"
	"math"

	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/portfolio"
	"hallway-gallery/internal/surface"
	"hallway-gallery/internal/texture"
)

// Surface is a flat piece of corridor geometry. Texture is nil for
// untextured surfaces, which use Color. Unlit surfaces ignore lights.
type Surface struct {
	Name     string
	Quad     Quad
	Texture  *surface.Texture
	Color    color.NRGBA
	Emissive float64
	Unlit    bool
}

// Light is a point light with linear falloff to zero at Distance.
type Light struct {
	Position  mathutil.Vec3
	Intensity float64
	Distance  float64
	Color     color.NRGBA
}

// Frame is the built geometry for one framed item. Artwork is the pickable
// quad; Item is the back-reference the picker reports.
type Frame struct {
	FramedItem
	Rotation float64
	Width    float64
	Height   float64
	Border   Quad
	Artwork  Quad
	Placard  Quad
	Image    *image.NRGBA // nil when the artwork failed to load
	Label    *image.NRGBA
	Title    string
	Client   string
}

// Scene is the immutable corridor built for one portfolio list.
type Scene struct {
	Length   float64
	Items    []portfolio.Item
	Framed   []FramedItem
	Frames   []Frame
	Textures surface.Set
	Surfaces []Surface
	Strips   []Surface
	Lights   []Light
}

// Build lays out the corridor for items. res may be nil, in which case no
// artwork is loaded; gen may be nil, in which case a seed-1 generator is used.
// The item list is copied, so the caller may reuse its slice.
func Build(items []portfolio.Item, res texture.Resolver, gen *surface.Generator) *Scene {
	if gen == nil {
		gen = surface.NewGenerator(1)
	}
	owned := append([]portfolio.Item(nil), items...)
	length := CorridorLength(len(owned))

	s := &Scene{
		Length:   length,
		Items:    owned,
		Framed:   Layout(owned),
		Textures: gen.For(length),
	}
	s.buildCorridor()
	s.buildLights()
	for _, fi := range s.Framed {
		s.Frames = append(s.Frames, buildFrame(fi, res))
	}
	return s
}

func (s *Scene) buildCorridor() {
	l := s.Length
	halfW := HallwayWidth / 2
	wallH := HallwayHeight + 0.5
	wallY := HallwayHeight/2 - 0.25

	s.Surfaces = []Surface{
		{
			Name:    "floor",
			Quad:    NewQuad(mathutil.Vec3{0, FloorY, -l / 2}, mathutil.RotX(-math.Pi/2), HallwayWidth, l),
			Texture: &s.Textures.Floor,
		},
		{
			Name:    "ceiling",
			Quad:    NewQuad(mathutil.Vec3{0, HallwayHeight, -l / 2}, mathutil.RotX(math.Pi/2), HallwayWidth, l),
			Texture: &s.Textures.Ceiling,
		},
		{
			Name:    "left wall",
			Quad:    NewQuad(mathutil.Vec3{-halfW, wallY, -l / 2}, mathutil.RotY(math.Pi/2), l, wallH),
			Texture: &s.Textures.Wall,
		},
		{
			Name:    "right wall",
			Quad:    NewQuad(mathutil.Vec3{halfW, wallY, -l / 2}, mathutil.RotY(-math.Pi/2), l, wallH),
			Texture: &s.Textures.Wall,
		},
		{
			Name:  "back wall",
			Quad:  NewQuad(mathutil.Vec3{0, wallY, -l}, mathutil.Mat3Identity(), HallwayWidth, wallH),
			Color: surface.FarWallColor,
			Unlit: true,
		},
	}
}

func (s *Scene) buildLights() {
	white := color.NRGBA{255, 255, 255, 255}
	down := mathutil.RotX(math.Pi / 2)

	for i := 0; i < lightSlots(s.Length, LightStripSpacing); i++ {
		z := -(float64(i)*LightStripSpacing + LightStripSpacing/2)
		for _, x := range []float64{-1.5, 1.5} {
			s.Strips = append(s.Strips, Surface{
				Name:     "light strip",
				Quad:     NewQuad(mathutil.Vec3{x, HallwayHeight - 0.075, z}, down, 0.15, 6),
				Color:    white,
				Emissive: 1.2,
			})
		}
		s.Lights = append(s.Lights, Light{
			Position:  mathutil.Vec3{0, HallwayHeight - 0.3, z},
			Intensity: 2.0,
			Distance:  14,
			Color:     surface.Hex("#e8e8ff"),
		})
	}

	accent := surface.Hex("#6366f1")
	for i := 0; i < lightSlots(s.Length, FloorLightSpacing); i++ {
		z := -(float64(i)*FloorLightSpacing + FloorLightSpacing/2)
		for _, x := range []float64{-HallwayWidth/2 + 0.3, HallwayWidth/2 - 0.3} {
			s.Lights = append(s.Lights, Light{
				Position:  mathutil.Vec3{x, 0, z},
				Intensity: 0.3,
				Distance:  4,
				Color:     accent,
			})
		}
	}
}

func buildFrame(fi FramedItem, res texture.Resolver) Frame {
	var img *image.NRGBA
	if res != nil {
		if ref := fi.Item.Cover(); ref != "" {
			img = res.Resolve(ref)
		}
	}

	aspect := FrameWidth / FrameHeight
	if img != nil && img.Bounds().Dy() > 0 && img.Bounds().Dx() > 0 {
		aspect = float64(img.Bounds().Dx()) / float64(img.Bounds().Dy())
	}
	w := math.Min(FrameWidth, FrameHeight*aspect)
	h := w / aspect

	rotY := math.Pi / 2
	if fi.Side == Right {
		rotY = -math.Pi / 2
	}
	rot := mathutil.RotY(rotY)
	at := func(local mathutil.Vec3) mathutil.Vec3 {
		return fi.Position.Add(rot.MulVec3(local))
	}

	title := TruncateTitle(fi.Item.Title)
	f := Frame{
		FramedItem: fi,
		Rotation:   rotY,
		Width:      w,
		Height:     h,
		Border:     NewQuad(at(mathutil.Vec3{0, 0, -0.01}), rot, w+0.3, h+0.3),
		Artwork:    NewQuad(at(mathutil.Vec3{}), rot, w, h),
		Placard:    NewQuad(at(mathutil.Vec3{0, -(h / 2) - 0.4, 0.005}), rot, math.Min(w+0.2, 3.0), 0.32),
		Image:      img,
		Label:      surface.Label(title, fi.Item.Client),
		Title:      title,
		Client:     fi.Item.Client,
	}
	return f
}

// FrameLights returns the two spotlights hung in front of a frame.
func FrameLights(f *Frame) []Light {
	rot := mathutil.RotY(f.Rotation)
	return []Light{
		{
			Position:  f.Position.Add(rot.MulVec3(mathutil.Vec3{0, 0.8, 1.5})),
			Intensity: 2.0,
			Distance:  5,
			Color:     surface.Hex("#f0f0ff"),
		},
		{
			Position:  f.Position.Add(rot.MulVec3(mathutil.Vec3{0, -1.5, 0.5})),
			Intensity: 0.5,
			Distance:  3,
			Color:     color.NRGBA{255, 255, 255, 255},
		},
	}
}

// AllLights returns corridor lights followed by every frame's spotlights.
func (s *Scene) AllLights() []Light {
	out := append([]Light(nil), s.Lights...)
	for i := range s.Frames {
		out = append(out, FrameLights(&s.Frames[i])...)
	}
	return out
}

// FrameByID returns the frame showing the item with id, or nil.
func (s *Scene) FrameByID(id string) *Frame {
	for i := range s.Frames {
		if s.Frames[i].Item.ID == id {
			return &s.Frames[i]
		}
	}
	return nil
}

// Describe lists the scene layout.
func (s *Scene) Describe() string {
	return Describe(s.Length, s.Framed)
}
