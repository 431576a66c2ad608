package http

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"schedule-planner/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Uploader is the object storage surface the upload endpoints need.
type Uploader interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

type UploadHandler struct {
	uploader      Uploader
	defaultFolder string
	logger        *logger.Logger
}

func NewUploadHandler(uploader Uploader, defaultFolder string, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploader:      uploader,
		defaultFolder: defaultFolder,
		logger:        logger,
	}
}

// randomSuffix is a short lowercase base36 string for key uniqueness.
func randomSuffix() string {
	return strconv.FormatInt(rand.Int63n(1<<41), 36)
}

// objectKey builds a collision-safe key that keeps the original extension.
func (h *UploadHandler) objectKey(folder, originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), randomSuffix(), ext)
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Upload an image attachment for a post and get back its public URL
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file"
// @Param        folder formData string false "Storage folder"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /upload [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = h.defaultFolder
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := h.objectKey(folder, fileHeader.Filename)
	url, err := h.uploader.UploadFile(key, file, contentType)
	if err != nil {
		h.logger.Error("Failed to upload %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"url":      url,
		"filename": key,
	})
}

type DeleteImageRequest struct {
	Filename string `json:"filename"`
}

// DeleteImage godoc
// @Summary      Delete an uploaded image
// @Description  Remove a previously uploaded image from storage by its filename
// @Tags         upload
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DeleteImageRequest true "Filename to delete"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /upload [delete]
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	var req DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No filename provided"})
		return
	}

	if err := h.uploader.DeleteFile(req.Filename); err != nil {
		h.logger.Error("Failed to delete %s: %v", req.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
