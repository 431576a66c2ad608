package calendar

import (
	"schedule-planner/services/planner/internal/entity"
)

type ViewType string

const (
	ViewMonth ViewType = "month"
	ViewWeek  ViewType = "week"
	ViewDay   ViewType = "day"
)

// HasTimeAxis reports whether the view renders a vertical time dimension.
// Month views stack natively and need no column geometry.
func (v ViewType) HasTimeAxis() bool {
	return v == ViewWeek || v == ViewDay
}

// EventProps is the typed replacement for the loose extended-properties bag
// the renderer used to carry per event.
type EventProps struct {
	Platform    string `json:"platform"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Time        string `json:"time,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	ColumnIndex int    `json:"column_index"`
	ColumnCount int    `json:"column_count"`
}

// Event is one renderable calendar entry.
type Event struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Start           string     `json:"start"`
	BackgroundColor string     `json:"background_color"`
	BorderColor     string     `json:"border_color"`
	Props           EventProps `json:"props"`
	Placement       *Placement `json:"placement,omitempty"`
}

// BuildEvents converts posts into renderable events: slot grouping assigns
// column positions, and on time-axis views the positioner attaches geometry
// so same-slot posts sit side by side instead of overlapping.
func BuildEvents(posts []*entity.Post, view ViewType) []Event {
	positions := GroupSlots(posts)

	events := make([]Event, 0, len(posts))
	for _, post := range posts {
		platform := entity.PlatformByKey(post.Platform)

		start := entity.NormalizeDate(post.ScheduledDate)
		if t := entity.TimeToMinute(post.ScheduledTime); t != "" {
			start = start + "T" + t
		}

		pos := positions[post.ID]
		event := Event{
			ID:              post.ID,
			Title:           post.DisplayTitle(),
			Start:           start,
			BackgroundColor: platform.Color,
			BorderColor:     platform.Color,
			Props: EventProps{
				Platform:    post.Platform,
				Title:       post.Title,
				Content:     post.Content,
				Time:        entity.TimeToMinute(post.ScheduledTime),
				Thumbnail:   post.ImageURL,
				ColumnIndex: pos.ColumnIndex,
				ColumnCount: pos.ColumnCount,
			},
		}

		if view.HasTimeAxis() {
			if placement, ok := Position(pos); ok {
				event.Placement = &placement
			}
		}

		events = append(events, event)
	}
	return events
}
