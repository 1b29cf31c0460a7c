package team

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenitypath/hospital-api/internal/handler"
	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/service/availability"
	"github.com/serenitypath/hospital-api/internal/service/team"
)

type Handler struct {
	teamSvc         *team.Service
	availabilitySvc *availability.Service
}

func NewHandler(teamSvc *team.Service, availabilitySvc *availability.Service) *Handler {
	return &Handler{teamSvc: teamSvc, availabilitySvc: availabilitySvc}
}

func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.teamSvc.ListMembers(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(members))
}

func (h *Handler) GetMember(c *gin.Context) {
	member, err := h.teamSvc.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(member))
}

func (h *Handler) CreateMember(c *gin.Context) {
	var req model.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	member, err := h.teamSvc.CreateMember(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(member))
}

func (h *Handler) UpdateMember(c *gin.Context) {
	var req model.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	member, err := h.teamSvc.UpdateMember(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(member))
}

func (h *Handler) DeleteMember(c *gin.Context) {
	if err := h.teamSvc.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) AddSlot(c *gin.Context) {
	var req model.AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	slot, err := h.availabilitySvc.AddSlot(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(slot))
}

func (h *Handler) RemoveSlot(c *gin.Context) {
	if err := h.availabilitySvc.RemoveSlot(c.Request.Context(), c.Param("id"), c.Param("slotId")); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
