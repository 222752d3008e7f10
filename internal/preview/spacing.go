package preview

import (
	"math"
	"strconv"
	"strings"
)

// Terminal cells are roughly twice as tall as they are wide; one cell
// stands in for 8px horizontally and 16px vertically.
const (
	pxPerColumn = 8.0
	pxPerRow    = 16.0
	pxPerRem    = 16.0
)

// Spacing is padding or margin in terminal cells, in CSS box order.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// ParseSpacing converts a CSS padding or margin shorthand with one to four
// values into cells. Unknown units and keywords count as zero.
func ParseSpacing(value string) Spacing {
	parts := strings.Fields(value)
	px := make([]float64, len(parts))
	for i, p := range parts {
		px[i] = parsePixels(p)
	}

	var top, right, bottom, left float64
	switch len(px) {
	case 1:
		top, right, bottom, left = px[0], px[0], px[0], px[0]
	case 2:
		top, right, bottom, left = px[0], px[1], px[0], px[1]
	case 3:
		top, right, bottom, left = px[0], px[1], px[2], px[1]
	case 4:
		top, right, bottom, left = px[0], px[1], px[2], px[3]
	default:
		return Spacing{}
	}

	return Spacing{
		Top:    rows(top),
		Right:  columns(right),
		Bottom: rows(bottom),
		Left:   columns(left),
	}
}

// parsePixels understands px, rem, em and unitless numbers.
func parsePixels(v string) float64 {
	v = strings.TrimSpace(strings.ToLower(v))
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "rem"):
		v = strings.TrimSuffix(v, "rem")
		scale = pxPerRem
	case strings.HasSuffix(v, "em"):
		v = strings.TrimSuffix(v, "em")
		scale = pxPerRem
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n * scale
}

func columns(px float64) int {
	return int(math.Ceil(px / pxPerColumn))
}

func rows(px float64) int {
	return int(math.Ceil(px / pxPerRow))
}
