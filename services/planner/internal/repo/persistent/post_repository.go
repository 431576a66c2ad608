package persistent

import (
	"errors"

	"schedule-planner/services/planner/internal/entity"
	"schedule-planner/services/planner/internal/model"
	"schedule-planner/services/planner/internal/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repo.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) ListByRange(userID, startDate, endDate string) ([]*entity.Post, error) {
	if userID == "" {
		return []*entity.Post{}, nil
	}

	var postModels []model.PostModel
	err := r.db.
		Where("user_id = ?", userID).
		Where("scheduled_date >= ? AND scheduled_date <= ?", entity.NormalizeDate(startDate), entity.NormalizeDate(endDate)).
		Order("scheduled_date ASC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) GetByID(userID, id string) (*entity.Post, error) {
	if userID == "" {
		return nil, entity.ErrNotAuthenticated
	}

	var postModel model.PostModel
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Create(post *entity.Post) error {
	if post.UserID == "" {
		return entity.ErrNotAuthenticated
	}

	post.ScheduledDate = entity.NormalizeDate(post.ScheduledDate)
	post.ScheduledTime = entity.TimeToMinute(post.ScheduledTime)
	if post.Status == "" {
		post.Status = entity.StatusScheduled
	}

	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) Update(userID, id string, patch entity.PostPatch) (*entity.Post, error) {
	if userID == "" {
		return nil, entity.ErrNotAuthenticated
	}

	if patch.IsEmpty() {
		return r.GetByID(userID, id)
	}

	updates := map[string]interface{}{}
	if patch.Platform != nil {
		updates["platform"] = *patch.Platform
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.ScheduledDate != nil {
		updates["scheduled_date"] = entity.NormalizeDate(*patch.ScheduledDate)
	}
	if patch.ScheduledTime != nil {
		updates["scheduled_time"] = entity.TimeToMinute(*patch.ScheduledTime)
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}

	result := r.db.Model(&model.PostModel{}).Where("id = ? AND user_id = ?", id, userID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	return r.GetByID(userID, id)
}

func (r *postRepository) Delete(userID, id string) error {
	if userID == "" {
		return entity.ErrNotAuthenticated
	}

	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.PostModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
