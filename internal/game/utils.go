package game

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/gauge/internal/gauge"
)

// formatClock formats a time of day as HH:MM:SS
func formatClock(t gauge.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// vertexColor splits c into the float channels ebiten vertices take.
func vertexColor(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
