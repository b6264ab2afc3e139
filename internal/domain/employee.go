package domain

// Employee is a store worker acting on loans, keyed by RUN.
type Employee struct {
	RUN          string `json:"run"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Cellphone    string `json:"cellphone"`
	IsAdmin      bool   `json:"isAdmin"`
	PasswordHash string `json:"-"`
}
