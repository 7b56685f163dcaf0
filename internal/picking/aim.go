// Package picking finds the artwork under the crosshair and tracks which
// portfolio item is aimed at.
package picking

import (
	"sync/atomic"

	"hallway-gallery/internal/portfolio"
)

// AimState is the shared aimed-item cell. The picker writes it; the
// highlight pass and the click handler read it. A nil item means no aim.
type AimState struct {
	item atomic.Pointer[portfolio.Item]
}

// Load returns the aimed item or nil.
func (a *AimState) Load() *portfolio.Item {
	return a.item.Load()
}

// Store sets the aimed item and reports whether it changed.
func (a *AimState) Store(it *portfolio.Item) bool {
	return a.item.Swap(it) != it
}
