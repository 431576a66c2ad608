package calendar

import (
	"fmt"
	"testing"

	"schedule-planner/services/planner/internal/entity"

	"github.com/stretchr/testify/assert"
)

func makePost(id, date, timeOfDay string) *entity.Post {
	return &entity.Post{
		ID:            id,
		UserID:        "user-1",
		Platform:      "instagram",
		Content:       "content " + id,
		ScheduledDate: date,
		ScheduledTime: timeOfDay,
	}
}

func TestSlotKey_TimedPost(t *testing.T) {
	post := makePost("p1", "2025-03-10", "14:00")
	assert.Equal(t, "2025-03-10_14:00", SlotKey(post))
}

func TestSlotKey_AllDayPost(t *testing.T) {
	post := makePost("p1", "2025-03-10", "")
	assert.Equal(t, "2025-03-10_allday", SlotKey(post))
}

func TestSlotKey_NormalizesEmbeddedTime(t *testing.T) {
	post := makePost("p1", "2025-03-10T08:30:00", "14:00:45")
	assert.Equal(t, "2025-03-10_14:00", SlotKey(post))
}

func TestGroupSlots_Singleton(t *testing.T) {
	positions := GroupSlots([]*entity.Post{makePost("p1", "2025-03-10", "14:00")})

	assert.Equal(t, SlotPosition{ColumnIndex: 0, ColumnCount: 1}, positions["p1"])
}

func TestGroupSlots_SameSlotInsertionOrder(t *testing.T) {
	posts := []*entity.Post{
		makePost("first", "2025-03-10", "14:00"),
		makePost("second", "2025-03-10", "14:00"),
	}

	positions := GroupSlots(posts)

	assert.Equal(t, SlotPosition{ColumnIndex: 0, ColumnCount: 2}, positions["first"])
	assert.Equal(t, SlotPosition{ColumnIndex: 1, ColumnCount: 2}, positions["second"])
}

func TestGroupSlots_OneMinuteApartNotGrouped(t *testing.T) {
	posts := []*entity.Post{
		makePost("p1", "2025-03-10", "14:00"),
		makePost("p2", "2025-03-10", "14:01"),
	}

	positions := GroupSlots(posts)

	assert.Equal(t, 1, positions["p1"].ColumnCount)
	assert.Equal(t, 1, positions["p2"].ColumnCount)
}

func TestGroupSlots_DifferentDatesNotGrouped(t *testing.T) {
	posts := []*entity.Post{
		makePost("p1", "2025-03-10", "14:00"),
		makePost("p2", "2025-03-11", "14:00"),
	}

	positions := GroupSlots(posts)

	assert.Equal(t, 1, positions["p1"].ColumnCount)
	assert.Equal(t, 1, positions["p2"].ColumnCount)
}

func TestGroupSlots_AllDayGroupSeparateFromTimed(t *testing.T) {
	posts := []*entity.Post{
		makePost("a1", "2025-03-10", ""),
		makePost("t1", "2025-03-10", "09:00"),
		makePost("a2", "2025-03-10", ""),
	}

	positions := GroupSlots(posts)

	assert.Equal(t, SlotPosition{ColumnIndex: 0, ColumnCount: 2}, positions["a1"])
	assert.Equal(t, SlotPosition{ColumnIndex: 1, ColumnCount: 2}, positions["a2"])
	assert.Equal(t, SlotPosition{ColumnIndex: 0, ColumnCount: 1}, positions["t1"])
}

func TestGroupSlots_UniqueIndexesWithinGroup(t *testing.T) {
	var posts []*entity.Post
	for i := 0; i < 5; i++ {
		posts = append(posts, makePost(fmt.Sprintf("p%d", i), "2025-03-10", "14:00"))
	}

	positions := GroupSlots(posts)

	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		pos := positions[fmt.Sprintf("p%d", i)]
		assert.Equal(t, 5, pos.ColumnCount)
		assert.GreaterOrEqual(t, pos.ColumnIndex, 0)
		assert.Less(t, pos.ColumnIndex, 5)
		assert.False(t, seen[pos.ColumnIndex], "duplicate column index %d", pos.ColumnIndex)
		seen[pos.ColumnIndex] = true
	}
}
