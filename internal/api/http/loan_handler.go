package http

import (
	"net/http"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type LoanHandler struct {
	loans service.LoanService
}

type createLoanRequest struct {
	ClientRUN     string  `json:"client_run"`
	LoanDate      string  `json:"loan_date"`
	DueDate       string  `json:"due_date"`
	LateReturnFee *int32  `json:"late_return_fee,omitempty"`
	UnitIDs       []int32 `json:"tool_unit_ids"`
}

func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	loanDate, err := parseDate(req.LoanDate, "loan_date")
	if err != nil {
		respondError(w, err)
		return
	}
	dueDate, err := parseDate(req.DueDate, "due_date")
	if err != nil {
		respondError(w, err)
		return
	}

	// The acting employee comes from the token, not the body.
	claims := Claims(r.Context())
	if claims == nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing credentials"})
		return
	}

	loan, err := h.loans.CreateLoan(r.Context(), service.CreateLoanInput{
		ClientRUN:     req.ClientRUN,
		EmployeeRUN:   claims.RUN,
		LoanDate:      loanDate,
		DueDate:       dueDate,
		LateReturnFee: req.LateReturnFee,
		UnitIDs:       req.UnitIDs,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, loan)
}

type returnLoanRequest struct {
	Lines []returnLineRequest `json:"lines"`
}

type returnLineRequest struct {
	UnitID      int32              `json:"tool_unit_id"`
	DamageLevel domain.DamageLevel `json:"damage_level"`
}

func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req returnLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	lines := make([]service.ReturnLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, service.ReturnLine{UnitID: line.UnitID, Damage: line.DamageLevel})
	}

	loan, err := h.loans.ReturnLoan(r.Context(), id, lines)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	loan, err := h.loans.GetLoan(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		loans []domain.Loan
		err   error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		loans, err = h.loans.ListLoansByStatus(r.Context(), domain.LoanStatus(status))
	} else {
		loans, err = h.loans.ListLoans(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) ActiveByClient(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loans.ListActiveLoansByClient(r.Context(), mux.Vars(r)["run"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loans)
}

type updateLateFeeRequest struct {
	LateReturnFee int32 `json:"late_return_fee"`
}

func (h *LoanHandler) UpdateLateFee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req updateLateFeeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	loan, err := h.loans.UpdateLateReturnFee(r.Context(), id, req.LateReturnFee)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) MostLoaned(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("start"), "start")
	if err != nil {
		respondError(w, err)
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"), "end")
	if err != nil {
		respondError(w, err)
		return
	}

	report, err := h.loans.MostLoanedTools(r.Context(), start, end)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func parseDate(value, name string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, domain.InvalidInputf("invalid %s %q, expected YYYY-MM-DD", name, value)
	}
	return t, nil
}
