package api

// VideoMode identifies a display timing and pixel format.
type VideoMode uint8

// RGBColour is one palette entry.
type RGBColour struct {
	R, G, B uint8
}
