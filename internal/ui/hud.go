//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a single status line along the bottom edge of the view.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD { return &HUD{visible: true} }

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Draw renders the status line: palette name, live ripple count, and
// pause state.
func (h *HUD) Draw(dst *ebiten.Image, paletteName string, ripples int, paused bool) {
	if h == nil || !h.visible {
		return
	}
	status := fmt.Sprintf("palette=%s ripples=%d", paletteName, ripples)
	if paused {
		status += " [paused]"
	}
	b := dst.Bounds()
	text.Draw(dst, status, basicfont.Face7x13, 4, b.Dy()-4, color.White)
}
