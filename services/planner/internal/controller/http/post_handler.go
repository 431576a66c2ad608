package http

import (
	"errors"
	"net/http"

	"schedule-planner/pkg/logger"
	"schedule-planner/services/planner/internal/calendar"
	"schedule-planner/services/planner/internal/entity"
	"schedule-planner/services/planner/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

func (h *PostHandler) respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, entity.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	default:
		h.logger.Error("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

type CreatePostRequest struct {
	Platform      string `json:"platform" binding:"required"`
	Title         string `json:"title"`
	Content       string `json:"content" binding:"required"`
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	ScheduledTime string `json:"scheduled_time"`
	ImageURL      string `json:"image_url"`
}

// CreatePost godoc
// @Summary      Create a scheduled post
// @Description  Create a post on the calendar. An empty scheduled_time makes it an all-day entry.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CreatePost(userID, req.Platform, req.Title, req.Content, req.ScheduledDate, req.ScheduledTime, req.ImageURL)
	if err != nil {
		h.respondError(c, err, "create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Get a single scheduled post owned by the authenticated user
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	post, err := h.postUseCase.GetPost(userID, postID)
	if err != nil {
		h.respondError(c, err, "fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      List posts in a date range
// @Description  Get the authenticated user's posts scheduled between start and end (inclusive), ordered by date
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        start query string true "Range start date (YYYY-MM-DD)"
// @Param        end query string true "Range end date (YYYY-MM-DD)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	userID := c.GetString("user_id")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}

	posts, err := h.postUseCase.ListPosts(userID, start, end)
	if err != nil {
		h.respondError(c, err, "fetch posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// UpdatePost godoc
// @Summary      Update post
// @Description  Partially update a post. Omitted fields are left unchanged; an empty scheduled_time clears the time.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body entity.PostPatch true "Fields to update"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var patch entity.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.UpdatePost(userID, postID, patch)
	if err != nil {
		h.respondError(c, err, "update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Permanently delete a post from the calendar
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.postUseCase.DeletePost(userID, postID); err != nil {
		h.respondError(c, err, "delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

type MovePostRequest struct {
	ScheduledDate string  `json:"scheduled_date" binding:"required"`
	ScheduledTime *string `json:"scheduled_time"`
}

// MovePost godoc
// @Summary      Move post to another slot
// @Description  Reschedule a post to a new date. When scheduled_time is omitted, the existing time of day is kept.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body MovePostRequest true "Target slot"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/move [post]
func (h *PostHandler) MovePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var req MovePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.MovePost(userID, postID, req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		h.respondError(c, err, "move post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListEvents godoc
// @Summary      List calendar events
// @Description  Get the user's posts in a range rendered as calendar events, with overlap placement for week and day views
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        start query string true "Range start date (YYYY-MM-DD)"
// @Param        end query string true "Range end date (YYYY-MM-DD)"
// @Param        view query string false "Calendar view (month, week or day)" Enums(month, week, day)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /calendar/events [get]
func (h *PostHandler) ListEvents(c *gin.Context) {
	userID := c.GetString("user_id")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}

	view := calendar.ViewType(c.DefaultQuery("view", string(calendar.ViewMonth)))
	switch view {
	case calendar.ViewMonth, calendar.ViewWeek, calendar.ViewDay:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be one of month, week, day"})
		return
	}

	events, err := h.postUseCase.ListEvents(userID, start, end, view)
	if err != nil {
		h.respondError(c, err, "fetch events")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// ListPlatforms godoc
// @Summary      List supported platforms
// @Description  Get the supported social platforms with their display names, badge abbreviations and colors
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /platforms [get]
func (h *PostHandler) ListPlatforms(c *gin.Context) {
	platforms := entity.Platforms()
	c.JSON(http.StatusOK, gin.H{"platforms": platforms, "count": len(platforms)})
}
