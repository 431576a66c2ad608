package calendar

// Column geometry for side-by-side placement inside a day column on
// time-axis (week/day) views. All values are percentages of the column.
const (
	marginPct = 2.0
	gapPct    = 2.0
)

// Placement is the computed geometry the view layer applies verbatim.
type Placement struct {
	WidthPct float64 `json:"width_pct"`
	LeftPct  float64 `json:"left_pct"`
}

// Position converts a slot position into a Placement. The second return is
// false when no special layout is needed (single-column slots keep the
// default full-width placement).
func Position(pos SlotPosition) (Placement, bool) {
	if pos.ColumnCount <= 1 {
		return Placement{}, false
	}

	available := 100.0 - 2*marginPct
	width := (available - gapPct*float64(pos.ColumnCount-1)) / float64(pos.ColumnCount)
	left := marginPct + float64(pos.ColumnIndex)*(width+gapPct)

	return Placement{WidthPct: width, LeftPct: left}, true
}
