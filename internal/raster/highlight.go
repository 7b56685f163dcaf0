package raster

import (
	"hallway-gallery/internal/picking"
	"hallway-gallery/internal/scene"
)

// Emissive levels for artwork.
const (
	IdleGlow   = 0.12
	AimedGlow  = 0.30
	GlowEasing = 0.1
)

// Highlighter eases each artwork's emissive level toward AimedGlow when its
// item is aimed at and IdleGlow otherwise. It reads the aim cell directly
// once per frame.
type Highlighter struct {
	aim    *picking.AimState
	frames []scene.Frame
	levels []float64
}

// NewHighlighter starts every frame at IdleGlow. aim may be nil.
func NewHighlighter(frames []scene.Frame, aim *picking.AimState) *Highlighter {
	levels := make([]float64, len(frames))
	for i := range levels {
		levels[i] = IdleGlow
	}
	return &Highlighter{aim: aim, frames: frames, levels: levels}
}

// Step advances the easing by one frame.
func (h *Highlighter) Step() {
	aimed := h.aimedID()
	for i := range h.frames {
		target := IdleGlow
		if aimed != "" && h.frames[i].Item.ID == aimed {
			target = AimedGlow
		}
		h.levels[i] += (target - h.levels[i]) * GlowEasing
	}
}

func (h *Highlighter) aimedID() string {
	if h.aim == nil {
		return ""
	}
	if it := h.aim.Load(); it != nil {
		return it.ID
	}
	return ""
}

// Level returns the emissive level of frame i.
func (h *Highlighter) Level(i int) float64 {
	if h == nil || i < 0 || i >= len(h.levels) {
		return IdleGlow
	}
	return h.levels[i]
}

// Settle jumps every level to its target, skipping the easing.
func (h *Highlighter) Settle() {
	aimed := h.aimedID()
	for i := range h.frames {
		h.levels[i] = IdleGlow
		if aimed != "" && h.frames[i].Item.ID == aimed {
			h.levels[i] = AimedGlow
		}
	}
}
