package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"schedule-planner/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockUploader) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

var _ Uploader = (*MockUploader)(nil)

func multipartBody(t *testing.T, fieldName, fileName, content string, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fileName != "" {
		part, err := writer.CreateFormFile(fieldName, fileName)
		assert.NoError(t, err)
		_, err = part.Write([]byte(content))
		assert.NoError(t, err)
	}
	for k, v := range extra {
		writer.WriteField(k, v)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadImage_Success(t *testing.T) {
	mockUploader := new(MockUploader)
	logger := logger.New()
	handler := NewUploadHandler(mockUploader, "schedule-planner", logger)

	router := setupTestRouter()
	router.POST("/upload", handler.UploadImage)

	mockUploader.On("UploadFile", mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("string")).
		Return("https://cdn.example.com/schedule-planner/123-abc.png", nil)

	body, contentType := multipartBody(t, "file", "banner.png", "pngdata", nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "https://cdn.example.com/schedule-planner/123-abc.png", response["url"])

	filename := response["filename"].(string)
	assert.True(t, strings.HasPrefix(filename, "schedule-planner/"))
	assert.True(t, strings.HasSuffix(filename, ".png"))

	mockUploader.AssertExpectations(t)
}

func TestUploadImage_CustomFolder(t *testing.T) {
	mockUploader := new(MockUploader)
	logger := logger.New()
	handler := NewUploadHandler(mockUploader, "schedule-planner", logger)

	router := setupTestRouter()
	router.POST("/upload", handler.UploadImage)

	mockUploader.On("UploadFile", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "drafts/")
	}), mock.Anything, mock.AnythingOfType("string")).
		Return("https://cdn.example.com/drafts/123-abc.jpg", nil)

	body, contentType := multipartBody(t, "file", "photo.jpg", "jpgdata", map[string]string{"folder": "drafts"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUploader.AssertExpectations(t)
}

func TestUploadImage_NoFile(t *testing.T) {
	mockUploader := new(MockUploader)
	logger := logger.New()
	handler := NewUploadHandler(mockUploader, "schedule-planner", logger)

	router := setupTestRouter()
	router.POST("/upload", handler.UploadImage)

	body, contentType := multipartBody(t, "file", "", "", map[string]string{"folder": "drafts"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "No file provided", response["error"])
	mockUploader.AssertNotCalled(t, "UploadFile")
}

func TestUploadImage_StorageError(t *testing.T) {
	mockUploader := new(MockUploader)
	logger := logger.New()
	handler := NewUploadHandler(mockUploader, "schedule-planner", logger)

	router := setupTestRouter()
	router.POST("/upload", handler.UploadImage)

	mockUploader.On("UploadFile", mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("string")).
		Return("", errors.New("bucket unavailable"))

	body, contentType := multipartBody(t, "file", "banner.png", "pngdata", nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUploader.AssertExpectations(t)
}

func TestObjectKey_TimestampBase36Shape(t *testing.T) {
	logger := logger.New()
	handler := NewUploadHandler(nil, "schedule-planner", logger)

	key := handler.objectKey("drafts", "banner.png")
	assert.Regexp(t, `^drafts/\d+-[0-9a-z]+\.png$`, key)

	other := handler.objectKey("drafts", "banner.png")
	assert.NotEqual(t, key, other)
}

func TestDeleteImage_Success(t *testing.T) {
	mockUploader := new(MockUploader)
	logger := logger.New()
	handler := NewUploadHandler(mockUploader, "schedule-planner", logger)

	router := setupTestRouter()
	router.DELETE("/upload", handler.DeleteImage)

	mockUploader.On("DeleteFile", "schedule-planner/123-abc.png").Return(nil)

	body := `{"filename":"schedule-planner/123-abc.png"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/upload", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])

	mockUploader.AssertExpectations(t)
}

func TestDeleteImage_NoFilename(t *testing.T) {
	mockUploader := new(MockUploader)
	logger := logger.New()
	handler := NewUploadHandler(mockUploader, "schedule-planner", logger)

	router := setupTestRouter()
	router.DELETE("/upload", handler.DeleteImage)

	body := `{}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/upload", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "No filename provided", response["error"])
	mockUploader.AssertNotCalled(t, "DeleteFile")
}
