package http

import (
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type ClientHandler struct {
	clients service.ClientService
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var client domain.Client
	if err := decodeJSON(r, &client); err != nil {
		respondError(w, err)
		return
	}

	if err := h.clients.CreateClient(r.Context(), &client); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.GetClient(r.Context(), mux.Vars(r)["run"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		clients []domain.Client
		err     error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		clients, err = h.clients.ListClientsByStatus(r.Context(), domain.ClientStatus(status))
	} else {
		clients, err = h.clients.ListClients(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	// Debt defaults to -1 so an absent field leaves the stored debt
	// untouched.
	client := domain.Client{Debt: -1}
	if err := decodeJSON(r, &client); err != nil {
		respondError(w, err)
		return
	}
	client.RUN = mux.Vars(r)["run"]

	if err := h.clients.UpdateClient(r.Context(), &client); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.DeleteClient(r.Context(), mux.Vars(r)["run"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
