package http

import (
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"
)

type KardexHandler struct {
	kardex service.KardexService
}

// List serves the whole ledger, or a slice of it when the tool or
// start/end query parameters are present.
func (h *KardexHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		entries []domain.LedgerEntry
		err     error
	)

	query := r.URL.Query()
	switch {
	case query.Get("tool") != "":
		entries, err = h.kardex.ListEntriesByToolName(r.Context(), query.Get("tool"))
	case query.Get("start") != "" || query.Get("end") != "":
		start, perr := parseDate(query.Get("start"), "start")
		if perr != nil {
			respondError(w, perr)
			return
		}
		end, perr := parseDate(query.Get("end"), "end")
		if perr != nil {
			respondError(w, perr)
			return
		}
		entries, err = h.kardex.ListEntriesByDateRange(r.Context(), start, end)
	default:
		entries, err = h.kardex.ListEntries(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *KardexHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.kardex.DeleteEntry(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
