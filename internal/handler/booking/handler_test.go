package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenitypath/hospital-api/internal/email"
	"github.com/serenitypath/hospital-api/internal/repository/document"
	"github.com/serenitypath/hospital-api/internal/service/booking"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := document.Open(context.Background(), document.NewMemoryBackend())
	require.NoError(t, err)
	teamRepo := document.NewTeamRepository(store)
	svc := booking.NewService(document.NewBookingRepository(store), teamRepo, email.NoopSender{})
	h := NewHandler(svc)

	r := gin.New()
	r.POST("/bookings", h.Submit)
	r.GET("/bookings", h.List)
	r.PATCH("/bookings/:id/status", h.UpdateStatus)
	r.DELETE("/bookings/:id", h.Delete)
	return r
}

func submitBody() string {
	return `{
		"member_id": "1",
		"date": "2026-09-07",
		"slot_id": "a1",
		"name": "Alex Doe",
		"email": "alex@example.com",
		"phone": "555-0102",
		"reason": "initial consultation"
	}`
}

func doJSON(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitBooking(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/bookings", submitBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			ID       string `json:"id"`
			TimeSlot string `json:"timeSlot"`
			Status   string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "09:00 - 12:00", resp.Data.TimeSlot)
	assert.Equal(t, "pending", resp.Data.Status)
}

func TestSubmitBookingMissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/bookings", `{"member_id":"1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBookingConfirmation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/bookings", submitBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Without the confirmation header the delete is refused.
	w = doJSON(r, http.MethodDelete, "/bookings/"+created.Data.ID, "", nil)
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)

	w = doJSON(r, http.MethodDelete, "/bookings/"+created.Data.ID, "", map[string]string{"X-Confirm": "true"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/bookings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Data)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPatch, "/bookings/ghost/status", `{"status":"confirmed"}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
