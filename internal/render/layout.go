package render

import (
	"math"
)

// Layout places the play area on a terminal of the given size. Rows and
// columns are 1 based like the cursor addressing.
type Layout struct {
	Width, Height int
	Left, Right   int
	Top, Bottom   int
	Lane          int
	HitRow        int
	Side          int // first column of the stats panel
	SpecterCol    int
	SpecterRow    int
}

func NewLayout(width, height int) Layout {
	if width < 40 {
		width = 40
	}
	if height < 16 {
		height = 16
	}
	left := width / 12
	if left < 2 {
		left = 2
	}
	right := width / 2
	top := 3
	bottom := height - 1
	return Layout{
		Width:      width,
		Height:     height,
		Left:       left,
		Right:      right,
		Top:        top,
		Bottom:     bottom,
		Lane:       left + (right-left)/4,
		HitRow:     bottom - 3,
		Side:       right + 4,
		SpecterCol: width * 4 / 5,
		SpecterRow: height / 2,
	}
}

// NoteRow maps a normalised note position onto the lane.
func (l Layout) NoteRow(y float64) int {
	return l.Top + int(math.Round(y*float64(l.HitRow-l.Top)))
}

// TiltShift is the sideways lean of row under a tilt factor.
func (l Layout) TiltShift(row int, tilt float64) int {
	return int(math.Round(tilt * float64(l.HitRow-row)))
}
