package utils

import (
	"image/color"
)

type ColorName uint8

const (
	Blue ColorName = iota
	Red
	Green
	Black
	Gray
)

// GetColor returns opaque colors for the line plots
func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 255}
	case Red:
		c = color.RGBA{R: 255, G: 0, B: 50, A: 255}
	case Green:
		c = color.RGBA{R: 25, G: 160, B: 25, A: 255}
	case Gray:
		c = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	default:
		c = color.RGBA{A: 255}
	}
	return
}
