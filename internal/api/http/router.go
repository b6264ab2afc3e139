package http

import (
	"net/http"
	"strconv"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/security"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the HTTP layer exposes.
type Services struct {
	Auth     service.AuthService
	Clients  service.ClientService
	Employee service.EmployeeService
	Types    service.ToolTypeService
	Units    service.ToolUnitService
	Loans    service.LoanService
	Kardex   service.KardexService
	Config   service.ConfigService
}

// NewRouter wires every endpoint. Login is public; everything else
// requires a valid token, and administrative paths additionally require
// the admin flag.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware, LoggingMiddleware)

	authH := &AuthHandler{auth: svcs.Auth}
	clientH := &ClientHandler{clients: svcs.Clients}
	employeeH := &EmployeeHandler{employees: svcs.Employee}
	typeH := &ToolTypeHandler{types: svcs.Types}
	unitH := &ToolUnitHandler{units: svcs.Units}
	loanH := &LoanHandler{loans: svcs.Loans}
	kardexH := &KardexHandler{kardex: svcs.Kardex}
	configH := &ConfigHandler{config: svcs.Config}

	public := router.PathPrefix("/api/v1").Subrouter()
	public.HandleFunc("/auth/login", authH.Login).Methods(http.MethodPost)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	// Clients
	api.HandleFunc("/clients", clientH.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients", clientH.List).Methods(http.MethodGet)
	api.HandleFunc("/clients/{run}", clientH.Get).Methods(http.MethodGet)
	api.HandleFunc("/clients/{run}", clientH.Update).Methods(http.MethodPut)
	api.HandleFunc("/clients/{run}", AdminOnly(clientH.Delete)).Methods(http.MethodDelete)

	// Employees
	api.HandleFunc("/employees", AdminOnly(authH.Register)).Methods(http.MethodPost)
	api.HandleFunc("/employees", AdminOnly(employeeH.List)).Methods(http.MethodGet)
	api.HandleFunc("/employees/{run}", employeeH.Get).Methods(http.MethodGet)
	api.HandleFunc("/employees/{run}", AdminOnly(employeeH.Update)).Methods(http.MethodPut)
	api.HandleFunc("/employees/{run}", AdminOnly(employeeH.Delete)).Methods(http.MethodDelete)

	// Tool catalog
	api.HandleFunc("/tool-types", AdminOnly(typeH.Create)).Methods(http.MethodPost)
	api.HandleFunc("/tool-types", typeH.List).Methods(http.MethodGet)
	api.HandleFunc("/tool-types/{id}", typeH.Get).Methods(http.MethodGet)
	api.HandleFunc("/tool-types/{id}", AdminOnly(typeH.Update)).Methods(http.MethodPut)
	api.HandleFunc("/tool-types/{id}", AdminOnly(typeH.Delete)).Methods(http.MethodDelete)

	// Tool units
	api.HandleFunc("/tool-units", AdminOnly(unitH.Register)).Methods(http.MethodPost)
	api.HandleFunc("/tool-units", unitH.List).Methods(http.MethodGet)
	api.HandleFunc("/tool-units/serial/{serial}", unitH.GetBySerial).Methods(http.MethodGet)
	api.HandleFunc("/tool-units/first-available/{typeId}", unitH.FirstAvailable).Methods(http.MethodGet)
	api.HandleFunc("/tool-units/{id}", unitH.Get).Methods(http.MethodGet)
	api.HandleFunc("/tool-units/{id}/history", unitH.History).Methods(http.MethodGet)
	api.HandleFunc("/tool-units/{id}/disable", AdminOnly(unitH.Disable)).Methods(http.MethodPost)
	api.HandleFunc("/tool-units/{id}/enable", AdminOnly(unitH.Enable)).Methods(http.MethodPost)
	api.HandleFunc("/tool-units/{id}/evaluate", AdminOnly(unitH.Evaluate)).Methods(http.MethodPost)

	// Loans
	api.HandleFunc("/loans", loanH.Create).Methods(http.MethodPost)
	api.HandleFunc("/loans", loanH.List).Methods(http.MethodGet)
	api.HandleFunc("/loans/reports/most-loaned", loanH.MostLoaned).Methods(http.MethodGet)
	api.HandleFunc("/loans/client/{run}/active", loanH.ActiveByClient).Methods(http.MethodGet)
	api.HandleFunc("/loans/{id}", loanH.Get).Methods(http.MethodGet)
	api.HandleFunc("/loans/{id}/return", loanH.Return).Methods(http.MethodPost)
	api.HandleFunc("/loans/{id}/late-fee", AdminOnly(loanH.UpdateLateFee)).Methods(http.MethodPut)

	// Kardex
	api.HandleFunc("/kardex", kardexH.List).Methods(http.MethodGet)
	api.HandleFunc("/kardex/{id}", AdminOnly(kardexH.Delete)).Methods(http.MethodDelete)

	// System configuration
	api.HandleFunc("/config/late-return-fee", configH.GetLateReturnFee).Methods(http.MethodGet)
	api.HandleFunc("/config/late-return-fee", AdminOnly(configH.SetLateReturnFee)).Methods(http.MethodPut)

	return router
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.InvalidInputf("invalid %s %q", name, raw)
	}
	return int32(id), nil
}
