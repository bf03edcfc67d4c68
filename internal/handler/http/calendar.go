package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/availability"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetMachineCalendar(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService availability.CalendarService
}

func NewCalendarHandler(calendarService availability.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// Generate implements CalendarHandler.
func (h *calendarHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req availability.GenerateCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.Regenerate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar generated successfully", result)
}

// GetMachineCalendar implements CalendarHandler.
func (h *calendarHandlerImpl) GetMachineCalendar(w http.ResponseWriter, r *http.Request) {
	machineID := chi.URLParam(r, "id")

	// Default to the current year when no explicit year is requested.
	year := time.Now().UTC().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
		year = y
	}

	result, err := h.calendarService.GetMachineCalendar(r.Context(), machineID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
