package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenitypath/hospital-api/internal/handler"
	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/service/session"
)

type Handler struct {
	service *session.Service
}

func NewHandler(service *session.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListStaffSessions(c *gin.Context) {
	sessions, err := h.service.ListStaffSessions(c.Request.Context(), c.Query("member_id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(sessions))
}

func (h *Handler) CreateStaffSession(c *gin.Context) {
	var req model.CreateStaffSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateStaffSession(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) DeleteStaffSession(c *gin.Context) {
	if err := h.service.DeleteStaffSession(c.Request.Context(), c.Param("id")); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListOnlineSessions(c *gin.Context) {
	sessions, err := h.service.ListOnlineSessions(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(sessions))
}

func (h *Handler) CreateOnlineSession(c *gin.Context) {
	h.upsertOnlineSession(c, "")
}

func (h *Handler) UpdateOnlineSession(c *gin.Context) {
	h.upsertOnlineSession(c, c.Param("id"))
}

func (h *Handler) upsertOnlineSession(c *gin.Context, id string) {
	var req model.UpsertOnlineSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	upserted, err := h.service.UpsertOnlineSession(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	c.JSON(status, handler.NewSuccessResponse(upserted))
}

func (h *Handler) DeleteOnlineSession(c *gin.Context) {
	if err := h.service.DeleteOnlineSession(c.Request.Context(), c.Param("id")); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
