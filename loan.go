package securebank

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// ComputeEMI returns the equated monthly installment for a principal at
// an annual percentage rate over a term in months:
//
//	EMI = P*r*(1+r)^N / ((1+r)^N - 1), r = rate/12/100
//
// Nonpositive principal, rate, or term is rejected outright; the zero
// denominator can never reach the division.
func ComputeEMI(principal, annualRatePercent decimal.Decimal, months int) (decimal.Decimal, error) {
	fields := map[string]string{}
	if !principal.IsPositive() {
		fields["principal"] = "must be > 0"
	}
	if !annualRatePercent.IsPositive() {
		fields["rate"] = "must be > 0"
	}
	if months <= 0 {
		fields["months"] = "must be > 0"
	}
	if len(fields) > 0 {
		return decimal.Zero, ErrBadRequest{Fields: fields}
	}

	one := decimal.NewFromInt(1)
	r := annualRatePercent.Div(decimal.NewFromInt(1200))
	growth := one.Add(r).Pow(decimal.NewFromInt(int64(months)))
	emi := principal.Mul(r).Mul(growth).Div(growth.Sub(one))
	return emi, nil
}

// CreditScore returns a mock CIBIL-style score in [620, 850].
func CreditScore() int {
	return 620 + rand.Intn(231)
}

// EligibleAmount maps a credit score to the spending cap shown on the
// loan page.
func EligibleAmount(score int) decimal.Decimal {
	switch {
	case score >= 800:
		return decimal.NewFromInt(1000000)
	case score >= 750:
		return decimal.NewFromInt(700000)
	case score >= 700:
		return decimal.NewFromInt(400000)
	case score >= 650:
		return decimal.NewFromInt(200000)
	default:
		return decimal.NewFromInt(50000)
	}
}

// SubmitLoan records a loan request against one of the signed-in
// employee's customers. Requests are terminal; no approval flow exists.
func (s *serviceImpl) SubmitLoan(req LoanReq) (*Loan, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrBadRequest{Fields: map[string]string{"amount": "must be > 0"}}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, acct, err := s.loadAccount(req.Session)
	if err != nil {
		return nil, err
	}
	known := false
	for _, c := range acct.Customers {
		if c.SSN == req.SSN {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrNotFound{ID: req.SSN}
	}

	loan := Loan{
		ID:          "LN" + s.node.Generate().String(),
		CustomerSSN: req.SSN,
		Amount:      req.Amount,
		Status:      LoanRequested,
		CreatedAt:   time.Now(),
	}
	acct.Loans = append(acct.Loans, loan)
	acct.Version++
	if err = s.repo.SaveAccounts(doc); err != nil {
		return nil, err
	}
	s.log.Info().Str("emp_id", acct.EmpID).Str("loan_id", loan.ID).Msg("loan requested")
	return &loan, nil
}

func (s *serviceImpl) Loans(sess *Session) ([]Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, acct, err := s.loadAccount(sess)
	if err != nil {
		return nil, err
	}
	out := make([]Loan, len(acct.Loans))
	copy(out, acct.Loans)
	return out, nil
}
