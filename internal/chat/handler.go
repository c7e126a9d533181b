package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careercompass-backend/internal/shared/server/respond"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Handler exposes the chat endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/chat", h.chat)
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		respond.Error(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := h.svc.Reply(c.Request.Context(), req.Message)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond.OK(c, chatResponse{Reply: reply})
}
