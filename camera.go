package main

import "math"

// Camera centers the view on a world position. World +Y is screen down.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
}

func NewCamera(screenW, screenH int, zoom float64) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
}

func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Follow eases the camera towards (x, y).
func (c *Camera) Follow(x, y float64) {
	c.PosX += (x - c.PosX) * c.smooth
	c.PosY += (y - c.PosY) * c.smooth
	if math.Abs(x-c.PosX) < 0.01 {
		c.PosX = x
	}
	if math.Abs(y-c.PosY) < 0.01 {
		c.PosY = y
	}
}

// WorldToScreen maps a world position to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return (x-c.PosX)*c.zoom + float64(c.screenW)/2, (y-c.PosY)*c.zoom + float64(c.screenH)/2
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	return (x-float64(c.screenW)/2)/c.zoom + c.PosX, (y-float64(c.screenH)/2)/c.zoom + c.PosY
}
