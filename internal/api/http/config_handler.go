package http

import (
	"net/http"

	"toolrent-backend/internal/service"
)

type ConfigHandler struct {
	config service.ConfigService
}

type lateReturnFeeResponse struct {
	LateReturnFee int32 `json:"late_return_fee"`
}

func (h *ConfigHandler) GetLateReturnFee(w http.ResponseWriter, r *http.Request) {
	fee, err := h.config.GetLateReturnFee(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lateReturnFeeResponse{LateReturnFee: fee})
}

func (h *ConfigHandler) SetLateReturnFee(w http.ResponseWriter, r *http.Request) {
	var req lateReturnFeeResponse
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.config.SetLateReturnFee(r.Context(), req.LateReturnFee); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}
