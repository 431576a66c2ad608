package entity

import (
	"errors"
	"strings"
	"time"
)

type PostStatus string

const (
	StatusScheduled PostStatus = "scheduled"
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

var (
	ErrNotFound         = errors.New("post not found")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Post is a scheduled piece of content plotted on the calendar.
// ScheduledDate is date-only (YYYY-MM-DD); an empty ScheduledTime means all-day.
type Post struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Platform      string     `json:"platform"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	ScheduledDate string     `json:"scheduled_date"`
	ScheduledTime string     `json:"scheduled_time,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Status        PostStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PostPatch carries a partial update; nil fields are left unchanged.
// A non-nil empty ScheduledTime clears the time (back to all-day).
type PostPatch struct {
	Platform      *string     `json:"platform,omitempty"`
	Title         *string     `json:"title,omitempty"`
	Content       *string     `json:"content,omitempty"`
	ScheduledDate *string     `json:"scheduled_date,omitempty"`
	ScheduledTime *string     `json:"scheduled_time,omitempty"`
	ImageURL      *string     `json:"image_url,omitempty"`
	Status        *PostStatus `json:"status,omitempty"`
}

func (p PostPatch) IsEmpty() bool {
	return p.Platform == nil && p.Title == nil && p.Content == nil &&
		p.ScheduledDate == nil && p.ScheduledTime == nil && p.ImageURL == nil && p.Status == nil
}

// NormalizeDate strips any time component from a date value so that
// comparisons use date-only semantics.
func NormalizeDate(date string) string {
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		return date[:i]
	}
	if i := strings.IndexByte(date, ' '); i >= 0 {
		return date[:i]
	}
	return date
}

// TimeToMinute truncates a time-of-day value to minute precision.
func TimeToMinute(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// DisplayTitle falls back to a truncated prefix of the content when the
// post has no title.
func (p *Post) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	runes := []rune(p.Content)
	if len(runes) > 30 {
		return string(runes[:30]) + "..."
	}
	if len(runes) == 0 {
		return "Untitled"
	}
	return string(runes)
}
