package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenitypath/hospital-api/internal/handler"
	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/service/content"
)

type Handler struct {
	service *content.Service
}

func NewHandler(service *content.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetContent(c *gin.Context) {
	data, err := h.service.GetContent(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(data))
}

func (h *Handler) UpdateContent(c *gin.Context) {
	var data model.ContentData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.UpdateContent(c.Request.Context(), &data); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(data))
}

func (h *Handler) GetMusic(c *gin.Context) {
	music, err := h.service.GetMusic(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(music))
}

func (h *Handler) UpdateMusic(c *gin.Context) {
	var music model.MusicConfig
	if err := c.ShouldBindJSON(&music); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.UpdateMusic(c.Request.Context(), &music); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(music))
}

func (h *Handler) GetChatConfig(c *gin.Context) {
	cfg, err := h.service.GetChatConfig(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(cfg))
}

func (h *Handler) UpdateChatConfig(c *gin.Context) {
	var cfg model.ChatConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.UpdateChatConfig(c.Request.Context(), &cfg); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(cfg))
}
