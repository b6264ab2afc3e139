package http

import (
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"
)

type ToolTypeHandler struct {
	types service.ToolTypeService
}

func (h *ToolTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var toolType domain.ToolType
	if err := decodeJSON(r, &toolType); err != nil {
		respondError(w, err)
		return
	}

	if err := h.types.CreateToolType(r.Context(), &toolType); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toolType)
}

func (h *ToolTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	toolType, err := h.types.GetToolType(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toolType)
}

func (h *ToolTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	toolTypes, err := h.types.ListToolTypes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toolTypes)
}

func (h *ToolTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var toolType domain.ToolType
	if err := decodeJSON(r, &toolType); err != nil {
		respondError(w, err)
		return
	}
	toolType.ID = id

	if err := h.types.UpdateToolType(r.Context(), &toolType); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toolType)
}

func (h *ToolTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.types.DeleteToolType(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
