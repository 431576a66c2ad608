package assistant

import (
	"strings"

	"schedule-planner/services/planner/internal/entity"
)

// FormState mirrors the post form fields the assistant may pre-fill.
type FormState struct {
	Platform      string `json:"platform,omitempty"`
	Title         string `json:"title,omitempty"`
	Content       string `json:"content,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
}

// FormUpdates carries field pre-fills derived from the user's message;
// nil fields leave the form untouched.
type FormUpdates struct {
	Platform      *string `json:"platform,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
}

func (u FormUpdates) IsEmpty() bool {
	return u.Platform == nil && u.ScheduledTime == nil
}

// Suggested first posting slot per platform, used when the user asks about
// timing with a platform already chosen (or mentioned in the message).
var bestTimes = map[string]string{
	"instagram": "11:00",
	"facebook":  "13:00",
	"linkedin":  "07:00",
	"twitter":   "08:00",
	"youtube":   "14:00",
}

type rule struct {
	// all keyword alternatives in every group must match: each group is
	// any-of, the groups are all-of
	groups   [][]string
	response string
	apply    func(msg string, form FormState, updates *FormUpdates)
}

var rules = []rule{
	{
		groups: [][]string{{"content"}, {"idea", "brainstorm"}},
		response: "Let's brainstorm. A few directions that work well: educational posts " +
			"about your expertise, behind-the-scenes looks at your process, success " +
			"stories, and interactive content like polls or Q&A sessions. Which type " +
			"fits your current goals?",
	},
	{
		// checked before the timing rule: "review my scheduled content"
		// should not fall into the schedule branch
		groups: [][]string{{"review", "improve", "feedback"}},
		response: "Happy to review. I check for a clear message, an engaging hook in the " +
			"first seconds, a call-to-action, consistent brand voice, and visual appeal. " +
			"Share the post you want feedback on.",
	},
	{
		groups: [][]string{{"schedule", "time", "when"}},
		response: "General engagement windows: Instagram 11:00-13:00 and 19:00-21:00, " +
			"Facebook 13:00-15:00 on weekdays, LinkedIn 07:00-09:00 and 17:00-18:00, " +
			"Twitter 08:00-10:00 and 18:00-21:00, YouTube 14:00-16:00 on weekends. " +
			"Test and track what works for your audience.",
		apply: func(msg string, form FormState, updates *FormUpdates) {
			platform := form.Platform
			if p := mentionedPlatform(msg); p != "" {
				platform = p
			}
			if t, ok := bestTimes[platform]; ok && form.ScheduledTime == "" {
				suggestion := t
				updates.ScheduledTime = &suggestion
			}
		},
	},
	{
		groups: [][]string{{"tip", "advice", "help"}},
		response: "Top tips: know your audience, keep your voice authentic, lead with a " +
			"strong visual, reply to comments, post consistently, and aim for 80% value " +
			"to 20% promotion.",
	},
}

const defaultResponse = "I can help with content ideas, scheduling strategy, reviewing " +
	"drafts, and best practices. What would you like to work on?"

// Respond maps a user message against the rule table and returns the reply
// plus any form pre-fills. It is a pure function of its inputs.
func Respond(message string, form FormState) (string, FormUpdates) {
	lower := strings.ToLower(message)
	updates := FormUpdates{}

	// A platform mention pre-fills the platform field regardless of which
	// rule answers.
	if p := mentionedPlatform(lower); p != "" && form.Platform == "" {
		platform := p
		updates.Platform = &platform
	}

	for _, r := range rules {
		if r.matches(lower) {
			if r.apply != nil {
				r.apply(lower, form, &updates)
			}
			return r.response, updates
		}
	}
	return defaultResponse, updates
}

func (r rule) matches(lower string) bool {
	for _, group := range r.groups {
		found := false
		for _, kw := range group {
			if strings.Contains(lower, kw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func mentionedPlatform(lower string) string {
	for _, p := range entity.Platforms() {
		if strings.Contains(lower, strings.ToLower(p.Name)) || strings.Contains(lower, p.Key) {
			return p.Key
		}
	}
	return ""
}
