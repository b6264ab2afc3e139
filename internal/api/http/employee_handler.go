package http

import (
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type EmployeeHandler struct {
	employees service.EmployeeService
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employee, err := h.employees.GetEmployee(r.Context(), mux.Vars(r)["run"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var employee domain.Employee
	if err := decodeJSON(r, &employee); err != nil {
		respondError(w, err)
		return
	}
	employee.RUN = mux.Vars(r)["run"]

	if err := h.employees.UpdateEmployee(r.Context(), &employee); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employees.DeleteEmployee(r.Context(), mux.Vars(r)["run"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
