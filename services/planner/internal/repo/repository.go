package repo

import "schedule-planner/services/planner/internal/entity"

// PostRepository is the post store contract shared by the Postgres
// implementation and the local JSON fallback. All reads and writes are
// scoped to the owning user; an empty userID fails closed: reads return
// no rows and writes return entity.ErrNotAuthenticated.
type PostRepository interface {
	// ListByRange returns the user's posts with scheduled_date inside the
	// inclusive [startDate, endDate] window, ascending by date.
	ListByRange(userID, startDate, endDate string) ([]*entity.Post, error)
	GetByID(userID, id string) (*entity.Post, error)
	Create(post *entity.Post) error
	// Update applies a partial merge; nil patch fields are unchanged.
	Update(userID, id string, patch entity.PostPatch) (*entity.Post, error)
	Delete(userID, id string) error
}
