package http

import (
	"net/http"

	"schedule-planner/services/planner/internal/assistant"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct{}

func NewAssistantHandler() *AssistantHandler {
	return &AssistantHandler{}
}

type AssistantMessageRequest struct {
	Message string              `json:"message" binding:"required"`
	Form    assistant.FormState `json:"form"`
}

// SendMessage godoc
// @Summary      Ask the scheduling assistant
// @Description  Send a message to the assistant. The reply may include form field suggestions, like a best posting time for the chosen platform.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AssistantMessageRequest true "Message and current form state"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /assistant/message [post]
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	var req AssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, updates := assistant.Respond(req.Message, req.Form)

	body := gin.H{"response": response}
	if !updates.IsEmpty() {
		body["form_updates"] = updates
	}

	c.JSON(http.StatusOK, body)
}
