package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"schedule-planner/pkg/logger"
	"schedule-planner/pkg/queue"
	"schedule-planner/services/planner/internal/calendar"
	"schedule-planner/services/planner/internal/entity"
	"schedule-planner/services/planner/internal/repo"

	"github.com/redis/go-redis/v9"
)

type PostUseCase interface {
	ListPosts(userID, startDate, endDate string) ([]*entity.Post, error)
	ListEvents(userID, startDate, endDate string, view calendar.ViewType) ([]calendar.Event, error)
	GetPost(userID, postID string) (*entity.Post, error)
	CreatePost(userID, platform, title, content, scheduledDate, scheduledTime, imageURL string) (*entity.Post, error)
	UpdatePost(userID, postID string, patch entity.PostPatch) (*entity.Post, error)
	DeletePost(userID, postID string) error
	MovePost(userID, postID, newDate string, newTime *string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo    repo.PostRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
	settle      time.Duration

	mu       sync.Mutex
	sessions map[string]*viewSession
}

// viewSession tracks one user's visible calendar window and the reloader
// that re-warms its cache after edits.
type viewSession struct {
	reloader  *calendar.Reloader
	lastRange calendar.DateRange
	hasRange  bool
}

func NewPostUseCase(
	postRepo repo.PostRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	log *logger.Logger,
	settle time.Duration,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      log,
		settle:      settle,
		sessions:    make(map[string]*viewSession),
	}
}

func (uc *postUseCase) ListPosts(userID, startDate, endDate string) ([]*entity.Post, error) {
	return uc.postRepo.ListByRange(userID, startDate, endDate)
}

func (uc *postUseCase) ListEvents(userID, startDate, endDate string, view calendar.ViewType) ([]calendar.Event, error) {
	posts, err := uc.postRepo.ListByRange(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	uc.rememberRange(userID, startDate, endDate)
	return calendar.BuildEvents(posts, view), nil
}

func (uc *postUseCase) GetPost(userID, postID string) (*entity.Post, error) {
	return uc.postRepo.GetByID(userID, postID)
}

func (uc *postUseCase) CreatePost(userID, platform, title, content, scheduledDate, scheduledTime, imageURL string) (*entity.Post, error) {
	post := &entity.Post{
		UserID:        userID,
		Platform:      platform,
		Title:         title,
		Content:       content,
		ScheduledDate: scheduledDate,
		ScheduledTime: scheduledTime,
		ImageURL:      imageURL,
		Status:        entity.StatusScheduled,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.cachePost(post)
	if uc.queueClient != nil {
		go uc.publishReminder(post)
	}
	uc.reloadVisible(userID)

	return post, nil
}

func (uc *postUseCase) UpdatePost(userID, postID string, patch entity.PostPatch) (*entity.Post, error) {
	post, err := uc.postRepo.Update(userID, postID, patch)
	if err != nil {
		return nil, err
	}

	uc.cachePost(post)
	uc.reloadVisible(userID)
	return post, nil
}

func (uc *postUseCase) DeletePost(userID, postID string) error {
	if err := uc.postRepo.Delete(userID, postID); err != nil {
		return err
	}

	uc.dropCachedPost(postID)
	uc.reloadVisible(userID)
	return nil
}

// MovePost applies a drag-to-move: only the fields that actually changed are
// sent. A drop target without a time axis carries no time, and the post's
// existing time is preserved rather than cleared or fabricated.
func (uc *postUseCase) MovePost(userID, postID, newDate string, newTime *string) (*entity.Post, error) {
	patch := entity.PostPatch{ScheduledDate: &newDate}
	if newTime != nil {
		patch.ScheduledTime = newTime
	}

	post, err := uc.postRepo.Update(userID, postID, patch)
	if err != nil {
		return nil, err
	}

	uc.cachePost(post)
	if uc.queueClient != nil {
		go uc.publishReminder(post)
	}
	uc.reloadVisible(userID)
	return post, nil
}

func (uc *postUseCase) rememberRange(userID, startDate, endDate string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session := uc.session(userID)
	session.lastRange = calendar.DateRange{
		Start: entity.NormalizeDate(startDate),
		End:   entity.NormalizeDate(endDate),
	}
	session.hasRange = true
}

// reloadVisible kicks the user's reloader for their last visible window, so
// a burst of edits coalesces into one store fetch that re-warms the range
// cache.
func (uc *postUseCase) reloadVisible(userID string) {
	uc.mu.Lock()
	session := uc.session(userID)
	if !session.hasRange {
		uc.mu.Unlock()
		return
	}
	rng := session.lastRange
	reloader := session.reloader
	uc.mu.Unlock()

	reloader.RangeChanged(rng.Start, rng.End)
}

// session returns the user's view session, creating it (and its reloader)
// lazily. Caller holds uc.mu.
func (uc *postUseCase) session(userID string) *viewSession {
	if s, ok := uc.sessions[userID]; ok {
		return s
	}

	s := &viewSession{}
	s.reloader = calendar.NewReloader(
		uc.settle,
		func(r calendar.DateRange) ([]*entity.Post, error) {
			return uc.postRepo.ListByRange(userID, r.Start, r.End)
		},
		func(r calendar.DateRange, posts []*entity.Post) {
			uc.cacheRange(userID, r, posts)
		},
		uc.logger,
	)
	uc.sessions[userID] = s
	return s
}

func rangeKey(userID string, r calendar.DateRange) string {
	return fmt.Sprintf("posts:range:%s:%s:%s", userID, r.Start, r.End)
}

func (uc *postUseCase) cacheRange(userID string, r calendar.DateRange, posts []*entity.Post) {
	if uc.redisClient == nil {
		return
	}

	data, err := json.Marshal(posts)
	if err != nil {
		uc.logger.Error("Failed to marshal range cache for %s: %v", userID, err)
		return
	}

	ctx := context.Background()
	uc.redisClient.Set(ctx, rangeKey(userID, r), data, time.Hour)
	uc.logger.Info("Refreshed range cache %s..%s for user %s (%d posts)", r.Start, r.End, userID, len(posts))
}

func (uc *postUseCase) cachePost(post *entity.Post) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	postKey := fmt.Sprintf("post:%s", post.ID)
	postData := map[string]interface{}{
		"id":             post.ID,
		"user_id":        post.UserID,
		"platform":       post.Platform,
		"title":          post.Title,
		"content":        post.Content,
		"scheduled_date": post.ScheduledDate,
		"scheduled_time": post.ScheduledTime,
		"image_url":      post.ImageURL,
		"status":         string(post.Status),
	}

	for k, v := range postData {
		uc.redisClient.HSet(ctx, postKey, k, v)
	}
	uc.redisClient.Expire(ctx, postKey, 24*time.Hour)
}

func (uc *postUseCase) dropCachedPost(postID string) {
	if uc.redisClient == nil {
		return
	}
	uc.redisClient.Del(context.Background(), fmt.Sprintf("post:%s", postID))
}

func (uc *postUseCase) publishReminder(post *entity.Post) {
	task := map[string]interface{}{
		"type":           "post_scheduled",
		"post_id":        post.ID,
		"user_id":        post.UserID,
		"platform":       post.Platform,
		"scheduled_date": post.ScheduledDate,
		"scheduled_time": post.ScheduledTime,
	}

	if err := uc.queueClient.PublishReminderTask(task); err != nil {
		uc.logger.Error("[REMINDER QUEUE] Failed to publish reminder task: %v (post_id=%s)", err, post.ID)
	}
}
