package calendar

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenitypath/hospital-api/internal/handler"
	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/service/calendar"
)

type Handler struct {
	service *calendar.Service
}

func NewHandler(service *calendar.Service) *Handler {
	return &Handler{service: service}
}

// Timeline returns the grouped admin calendar. Query parameters:
// include_bookings=true adds patient bookings, filter=staff|appointment
// narrows the event types.
func (h *Handler) Timeline(c *gin.Context) {
	opts := calendar.Options{
		IncludeBookings: c.Query("include_bookings") == "true",
	}

	days, err := h.service.Timeline(c.Request.Context(), opts)
	if err != nil {
		handler.Error(c, err)
		return
	}

	if filter := c.Query("filter"); filter != "" {
		days = calendar.Filter(days, model.CalendarFilter(filter))
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(days))
}
