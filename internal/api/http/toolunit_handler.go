package http

import (
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type ToolUnitHandler struct {
	units service.ToolUnitService
}

type registerUnitRequest struct {
	SerialNumber string             `json:"serial_number"`
	TypeID       int32              `json:"tool_type_id"`
	DamageLevel  domain.DamageLevel `json:"damage_level,omitempty"`
}

func (h *ToolUnitHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerUnitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	unit := &domain.ToolUnit{
		SerialNumber: req.SerialNumber,
		TypeID:       req.TypeID,
		DamageLevel:  req.DamageLevel,
	}
	if err := h.units.RegisterUnit(r.Context(), unit); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, unit)
}

func (h *ToolUnitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	unit, err := h.units.GetUnit(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *ToolUnitHandler) GetBySerial(w http.ResponseWriter, r *http.Request) {
	unit, err := h.units.GetUnitBySerial(r.Context(), mux.Vars(r)["serial"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *ToolUnitHandler) FirstAvailable(w http.ResponseWriter, r *http.Request) {
	typeID, err := pathID(r, "typeId")
	if err != nil {
		respondError(w, err)
		return
	}
	unit, err := h.units.FirstAvailableUnit(r.Context(), typeID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *ToolUnitHandler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.units.ListUnits(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, units)
}

func (h *ToolUnitHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	history, err := h.units.UnitHistory(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

type damageRequest struct {
	DamageLevel domain.DamageLevel `json:"damage_level"`
}

func (h *ToolUnitHandler) Disable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req damageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	unit, err := h.units.DisableUnit(r.Context(), id, req.DamageLevel)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *ToolUnitHandler) Enable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	unit, err := h.units.EnableUnit(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *ToolUnitHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req damageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	unit, err := h.units.EvaluateDamage(r.Context(), id, req.DamageLevel)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}
