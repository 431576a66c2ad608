package local

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"schedule-planner/services/planner/internal/entity"
	"schedule-planner/services/planner/internal/repo"
)

// Store is a JSON-file fallback for the post store, used when Postgres is
// unreachable. The whole collection lives in one file; ids are generated
// client-side as post_<unix-ms>.
type Store struct {
	filePath string
	mu       sync.RWMutex
	posts    []*entity.Post
}

var _ repo.PostRepository = (*Store)(nil)

func NewStore(filePath string) (*Store, error) {
	s := &Store{filePath: filePath}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	if err := s.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadFromFile() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.posts)
}

func (s *Store) saveToFile() error {
	data, err := json.MarshalIndent(s.posts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0644)
}

func (s *Store) ListByRange(userID, startDate, endDate string) ([]*entity.Post, error) {
	if userID == "" {
		return []*entity.Post{}, nil
	}

	start := entity.NormalizeDate(startDate)
	end := entity.NormalizeDate(endDate)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Post
	for _, p := range s.posts {
		if p.UserID != userID {
			continue
		}
		date := entity.NormalizeDate(p.ScheduledDate)
		if date >= start && date <= end {
			copied := *p
			out = append(out, &copied)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledDate < out[j].ScheduledDate
	})
	if out == nil {
		out = []*entity.Post{}
	}
	return out, nil
}

func (s *Store) GetByID(userID, id string) (*entity.Post, error) {
	if userID == "" {
		return nil, entity.ErrNotAuthenticated
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id && p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (s *Store) Create(post *entity.Post) error {
	if post.UserID == "" {
		return entity.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == "" {
		post.ID = fmt.Sprintf("post_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:8])
	}
	post.ScheduledDate = entity.NormalizeDate(post.ScheduledDate)
	post.ScheduledTime = entity.TimeToMinute(post.ScheduledTime)
	if post.Status == "" {
		post.Status = entity.StatusScheduled
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	copied := *post
	s.posts = append(s.posts, &copied)
	return s.saveToFile()
}

func (s *Store) Update(userID, id string, patch entity.PostPatch) (*entity.Post, error) {
	if userID == "" {
		return nil, entity.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID != id || p.UserID != userID {
			continue
		}

		if patch.IsEmpty() {
			copied := *p
			return &copied, nil
		}

		if patch.Platform != nil {
			p.Platform = *patch.Platform
		}
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.ScheduledDate != nil {
			p.ScheduledDate = entity.NormalizeDate(*patch.ScheduledDate)
		}
		if patch.ScheduledTime != nil {
			p.ScheduledTime = entity.TimeToMinute(*patch.ScheduledTime)
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		p.UpdatedAt = time.Now().UTC()

		if err := s.saveToFile(); err != nil {
			return nil, err
		}
		copied := *p
		return &copied, nil
	}
	return nil, entity.ErrNotFound
}

func (s *Store) Delete(userID, id string) error {
	if userID == "" {
		return entity.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == id && p.UserID == userID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return s.saveToFile()
		}
	}
	return entity.ErrNotFound
}
