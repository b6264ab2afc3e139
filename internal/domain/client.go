package domain

type ClientStatus string

const (
	ClientStatusActive     ClientStatus = "ACTIVE"
	ClientStatusRestricted ClientStatus = "RESTRICTED"
)

// MaxActiveLoans is the hard cap on concurrent loans per client.
const MaxActiveLoans = 5

// Client is a borrower, keyed by RUN (Chilean national id).
type Client struct {
	RUN         string       `json:"run"`
	Name        string       `json:"name"`
	Surname     string       `json:"surname"`
	Email       string       `json:"email"`
	Cellphone   string       `json:"cellphone"`
	Status      ClientStatus `json:"status"`
	Debt        int32        `json:"debt"`
	ActiveLoans int32        `json:"active_loans"`
}

// BorrowEligibility returns nil when the client may start a new loan.
// Overdue-loan checking needs a repository query and lives in the
// orchestrator; everything derivable from the client row is checked here.
func (c *Client) BorrowEligibility() error {
	if c.Status == ClientStatusRestricted || c.Debt > 0 {
		return BusinessRulef("client %s cannot borrow due to unpaid debt or restriction", c.RUN)
	}
	if c.ActiveLoans >= MaxActiveLoans {
		return BusinessRulef("client %s cannot have more than %d active loans", c.RUN, MaxActiveLoans)
	}
	return nil
}

// ChargeDamageFee adds the replacement value (irreparable damage) or the
// type's damage fee to the client's debt and restricts them. Monotonic.
func (c *Client) ChargeDamageFee(t *ToolType, level DamageLevel) {
	c.Debt += t.DamageCharge(level)
	c.Status = ClientStatusRestricted
}

// ChargeLateFee adds a late-return charge to the client's debt and
// restricts them. Monotonic.
func (c *Client) ChargeLateFee(amount int32) {
	c.Debt += amount
	c.Status = ClientStatusRestricted
}

// Restrict blocks the client from new loans.
func (c *Client) Restrict() {
	c.Status = ClientStatusRestricted
}

// LiftRestrictionIfClear re-activates the client, but only when no debt
// remains. Returns whether the status changed.
func (c *Client) LiftRestrictionIfClear() bool {
	if c.Debt == 0 && c.Status == ClientStatusRestricted {
		c.Status = ClientStatusActive
		return true
	}
	return false
}
