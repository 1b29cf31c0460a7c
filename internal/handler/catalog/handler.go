package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenitypath/hospital-api/internal/handler"
	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/service/catalog"
)

type Handler struct {
	service *catalog.Service
}

func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}

func (h *Handler) GetService(c *gin.Context) {
	service, err := h.service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(service))
}

func (h *Handler) CreateService(c *gin.Context)  { h.upsertService(c, "") }
func (h *Handler) UpdateService(c *gin.Context)  { h.upsertService(c, c.Param("id")) }
func (h *Handler) CreateProgram(c *gin.Context)  { h.upsertProgram(c, "") }
func (h *Handler) UpdateProgram(c *gin.Context)  { h.upsertProgram(c, c.Param("id")) }
func (h *Handler) CreateFacility(c *gin.Context) { h.upsertFacility(c, "") }
func (h *Handler) UpdateFacility(c *gin.Context) { h.upsertFacility(c, c.Param("id")) }

func (h *Handler) upsertService(c *gin.Context, id string) {
	var req model.UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	service, err := h.service.UpsertService(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(upsertStatus(id), handler.NewSuccessResponse(service))
}

func (h *Handler) DeleteService(c *gin.Context) {
	if err := h.service.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListPrograms(c *gin.Context) {
	programs, err := h.service.ListPrograms(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(programs))
}

func (h *Handler) upsertProgram(c *gin.Context, id string) {
	var req model.UpsertProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	program, err := h.service.UpsertProgram(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(upsertStatus(id), handler.NewSuccessResponse(program))
}

func (h *Handler) DeleteProgram(c *gin.Context) {
	if err := h.service.DeleteProgram(c.Request.Context(), c.Param("id")); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListFacilities(c *gin.Context) {
	facilities, err := h.service.ListFacilities(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(facilities))
}

func (h *Handler) upsertFacility(c *gin.Context, id string) {
	var req model.UpsertFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	facility, err := h.service.UpsertFacility(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(upsertStatus(id), handler.NewSuccessResponse(facility))
}

func (h *Handler) DeleteFacility(c *gin.Context) {
	if err := h.service.DeleteFacility(c.Request.Context(), c.Param("id")); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func upsertStatus(id string) int {
	if id == "" {
		return http.StatusCreated
	}
	return http.StatusOK
}
