package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shiprate/shiprate-server/internal/api/middleware"
	"github.com/shiprate/shiprate-server/pkg/response"
)

type feedbackRequest struct {
	Subject string `json:"subject" binding:"required,min=3,max=255"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// SubmitFeedback stores a feedback message, attributed when authenticated.
// @Summary Send feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body feedbackRequest true "Feedback"
// @Success 201 {object} response.Response{data=model.Feedback}
// @Failure 400 {object} response.Response
// @Router /api/v1/feedback [post]
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	fb, err := h.feedback.Submit(c.Request.Context(), middleware.UserID(c), req.Subject, req.Message, req.Email)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, fb)
}
