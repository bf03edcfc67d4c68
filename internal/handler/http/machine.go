package http

import (
	"encoding/json"
	"net/http"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/domain/machine"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MachineHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type machineHandlerImpl struct {
	machineService machine.MachineService
}

func NewMachineHandler(machineService machine.MachineService) MachineHandler {
	return &machineHandlerImpl{
		machineService: machineService,
	}
}

// Create implements MachineHandler.
func (h *machineHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req machine.CreateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.machineService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Machine created successfully", result)
}

// GetByID implements MachineHandler.
func (h *machineHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.machineService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements MachineHandler.
func (h *machineHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.machineService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements MachineHandler.
func (h *machineHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req machine.UpdateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.machineService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Machine updated successfully", result)
}

// Delete implements MachineHandler.
func (h *machineHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.machineService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Machine deleted successfully", nil)
}
