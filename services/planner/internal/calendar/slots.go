package calendar

import (
	"schedule-planner/services/planner/internal/entity"
)

// allDayMarker is the slot-key time component for posts with no time set.
const allDayMarker = "allday"

// SlotPosition places a post inside its slot group: ColumnIndex is the
// 0-based position in insertion order, ColumnCount the group's total size.
type SlotPosition struct {
	ColumnIndex int
	ColumnCount int
}

// SlotKey identifies the set of posts sharing a date and an exact
// to-the-minute time (or the absence of one). Posts one minute apart land
// in different slots.
func SlotKey(post *entity.Post) string {
	date := entity.NormalizeDate(post.ScheduledDate)
	t := entity.TimeToMinute(post.ScheduledTime)
	if t == "" {
		t = allDayMarker
	}
	return date + "_" + t
}

// GroupSlots assigns every post a (column index, column count) pair within
// its slot. Order within a slot is the order posts were encountered in the
// input, not any secondary sort.
func GroupSlots(posts []*entity.Post) map[string]SlotPosition {
	groups := make(map[string][]string)
	for _, post := range posts {
		key := SlotKey(post)
		groups[key] = append(groups[key], post.ID)
	}

	positions := make(map[string]SlotPosition, len(posts))
	for _, ids := range groups {
		for i, id := range ids {
			positions[id] = SlotPosition{ColumnIndex: i, ColumnCount: len(ids)}
		}
	}
	return positions
}
