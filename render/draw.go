package render

import (
	"image/color"
	"math"
)

// DrawLine draws a line with Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm.
func (fb *Framebuffer) DrawCircle(cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		fb.SetPixel(cx+x, cy+y, c)
		fb.SetPixel(cx+y, cy+x, c)
		fb.SetPixel(cx-y, cy+x, c)
		fb.SetPixel(cx-x, cy+y, c)
		fb.SetPixel(cx-x, cy-y, c)
		fb.SetPixel(cx-y, cy-x, c)
		fb.SetPixel(cx+y, cy-x, c)
		fb.SetPixel(cx+x, cy-y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// FillCircle draws a filled disc (device markers).
func (fb *Framebuffer) FillCircle(cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				fb.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

// DrawRay draws a line from (cx,cy) of the given length at angle
// (radians, screen convention: y grows downward).
func (fb *Framebuffer) DrawRay(cx, cy int, length, angle float64, c color.RGBA) {
	x1 := cx + int(math.Round(length*math.Cos(angle)))
	y1 := cy + int(math.Round(length*math.Sin(angle)))
	fb.DrawLine(cx, cy, x1, y1, c)
}

// Fade scales a color toward the background by t in [0,1] (0 = full
// color, 1 = fully faded). Used for the sweep trail.
func Fade(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	k := 1 - t
	return color.RGBA{
		uint8(float64(c.R) * k),
		uint8(float64(c.G) * k),
		uint8(float64(c.B) * k),
		c.A,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
