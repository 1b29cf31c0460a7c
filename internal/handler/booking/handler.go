package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenitypath/hospital-api/internal/handler"
	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/service/booking"
	"github.com/serenitypath/hospital-api/pkg/confirm"
)

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Submit(c *gin.Context) {
	var req model.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(bookings))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

// Delete requires the caller to acknowledge the destructive action with the
// X-Confirm header. Without it the booking is kept and 428 is returned.
func (h *Handler) Delete(c *gin.Context) {
	confirmer := confirm.Static(c.GetHeader("X-Confirm") == "true")

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), confirmer); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
