//go:build !ebiten

package ui

// HUD is a placeholder for headless builds.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD() *HUD { return &HUD{} }

// Toggle is a no-op placeholder.
func (h *HUD) Toggle() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, string, int, bool) {}
