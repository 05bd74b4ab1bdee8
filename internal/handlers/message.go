package handlers

import (
	"net/http"
	"strconv"
	"time"

	dom "chirper/internal/domain"
	"chirper/internal/dto"
	"chirper/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc *service.MessageService
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// Create godoc
// @Summary      Create a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateMessageRequest  true  "Message body"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postedAt := time.Now().UTC()
	if req.PostedAt.Ptr() != nil {
		postedAt = *req.PostedAt.Ptr()
	}
	res, err := h.svc.CreateMessage(c.Request.Context(), &dom.Message{
		Text:     req.Text,
		PostedBy: req.PostedBy,
		PostedAt: postedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !res.IsSuccess() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": res.Messages()})
		return
	}
	c.JSON(http.StatusOK, messageToResponse(*res.Payload()))
}

// List godoc
// @Summary      List all messages
// @Tags         messages
// @Produce      json
// @Success      200  {object}  dto.ListMessagesResponse
// @Failure      500  {object}  map[string]string
// @Router       /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	list, err := h.svc.GetAllMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListMessagesResponse{Items: messagesToResponses(list)})
}

// GetByID godoc
// @Summary      Get a message by ID
// @Tags         messages
// @Produce      json
// @Param        id   path      int  true  "Message ID"
// @Success      200  {object}  dto.MessageResponse "empty body when the message does not exist"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /messages/{id} [get]
func (h *MessageHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := h.svc.GetMessageByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if m == nil {
		// Absence is a normal outcome: 200 with an empty body.
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, messageToResponse(*m))
}

// Delete godoc
// @Summary      Delete a message by ID
// @Tags         messages
// @Produce      json
// @Param        id   path      int  true  "Message ID"
// @Success      200  {integer}  int "1 when deleted, empty body otherwise"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.DeleteByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deleted {
		c.JSON(http.StatusOK, 1)
		return
	}
	c.Status(http.StatusOK)
}

// Update godoc
// @Summary      Update a message's text
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Message ID"
// @Param        body  body      dto.UpdateMessageRequest  true  "New text"
// @Success      200   {integer}  int "rows affected"
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /messages/{id} [patch]
func (h *MessageHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.UpdateMessage(c.Request.Context(), id, &dom.Message{Text: req.Text})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !res.IsSuccess() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": res.Messages()})
		return
	}
	c.JSON(http.StatusOK, 1)
}

// ListByAccount godoc
// @Summary      List messages posted by an account
// @Tags         messages
// @Produce      json
// @Param        id   path      int  true  "Account ID"
// @Success      200  {object}  dto.ListMessagesResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /accounts/{id}/messages [get]
func (h *MessageHandler) ListByAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.GetAllMessagesFromAccount(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListMessagesResponse{Items: messagesToResponses(list)})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func messageToResponse(m dom.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:       m.ID,
		Text:     m.Text,
		PostedBy: m.PostedBy,
		PostedAt: m.PostedAt,
	}
}

func messagesToResponses(list []dom.Message) []dto.MessageResponse {
	out := make([]dto.MessageResponse, len(list))
	for i := range list {
		out[i] = messageToResponse(list[i])
	}
	return out
}
