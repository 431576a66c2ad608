package persistent

import (
	"schedule-planner/services/planner/internal/entity"
	"schedule-planner/services/planner/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:            m.ID,
		UserID:        m.UserID,
		Platform:      m.Platform,
		Title:         m.Title,
		Content:       m.Content,
		ScheduledDate: m.ScheduledDate,
		ScheduledTime: m.ScheduledTime,
		ImageURL:      m.ImageURL,
		Status:        entity.PostStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:            e.ID,
		UserID:        e.UserID,
		Platform:      e.Platform,
		Title:         e.Title,
		Content:       e.Content,
		ScheduledDate: e.ScheduledDate,
		ScheduledTime: e.ScheduledTime,
		ImageURL:      e.ImageURL,
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
