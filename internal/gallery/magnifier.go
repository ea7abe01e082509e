package gallery

// Point is a cursor position in page coordinates.
type Point struct{ X, Y float64 }

// Rect is the displayed image's bounding box.
type Rect struct{ Left, Top, Width, Height float64 }

// Size is the natural size of the high-resolution image.
type Size struct{ Width, Height float64 }

// Lens is the magnifying glass over the static collage.
type Lens struct {
	Size float64
}

// LensFrame places the lens and the HD background inside it. Left and Top
// are relative to the displayed image.
type LensFrame struct {
	Visible          bool
	Left, Top        float64
	BackgroundX      float64
	BackgroundY      float64
	BackgroundWidth  float64
	BackgroundHeight float64
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Frame maps the cursor, clamped to the image bounds, onto the proportional
// crop of the HD image centred in the lens.
func (l Lens) Frame(cursor Point, img Rect, hd Size) LensFrame {
	if img.Width <= 0 || img.Height <= 0 {
		return LensFrame{}
	}
	rx, ry := cursor.X-img.Left, cursor.Y-img.Top
	inside := rx >= 0 && ry >= 0 && rx <= img.Width && ry <= img.Height
	x := clamp(rx, 0, img.Width)
	y := clamp(ry, 0, img.Height)

	scaleX := hd.Width / img.Width
	scaleY := hd.Height / img.Height
	half := l.Size / 2
	return LensFrame{
		Visible:          inside,
		Left:             x - half,
		Top:              y - half,
		BackgroundX:      -(x*scaleX - half),
		BackgroundY:      -(y*scaleY - half),
		BackgroundWidth:  hd.Width,
		BackgroundHeight: hd.Height,
	}
}
