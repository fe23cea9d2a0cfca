package securebank

import (
	"time"

	"github.com/shopspring/decimal"
)

// KYCStatus is the verification state of an account. Transitions are
// forward-only: NotSubmitted -> Pending -> Verified.
type KYCStatus string

const (
	KYCNotSubmitted KYCStatus = "Not Submitted"
	KYCPending      KYCStatus = "Pending"
	KYCVerified     KYCStatus = "Verified"
)

// LoanStatus has a single value in this system; requests are never
// approved or rejected, only recorded.
type LoanStatus string

const (
	LoanRequested LoanStatus = "Requested"
)

// Account is an employee account, the unit of persistence. EmpID is
// immutable after creation. Version is bumped on every mutation and
// checked by the store on save.
type Account struct {
	EmpID        string          `json:"emp_id"`
	Firstname    string          `json:"firstname"`
	Lastname     string          `json:"lastname"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"password_hash"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
	Customers    []Customer      `json:"customers"`
	Loans        []Loan          `json:"loans"`
	KYCStatus    KYCStatus       `json:"kyc_status"`
	CreatedAt    time.Time       `json:"created_at"`
	Version      int64           `json:"version"`
}

// Transaction is append-only and immutable once recorded.
// Kind is one of "Deposit", "Withdraw", "Transfer to <id>",
// "Received from <id>".
type Transaction struct {
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Time   time.Time       `json:"time"`
}

// Customer is a record managed by an employee, keyed by SSN within the
// owning account. Its Balance is an independent field, not reconciled
// with the owning Account's balance.
type Customer struct {
	SSN           string          `json:"ssn"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	Aadhaar       string          `json:"aadhaar,omitempty"`
	PAN           string          `json:"pan,omitempty"`
	Address       string          `json:"address,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Loan is a recorded loan request attached to a customer.
type Loan struct {
	ID          string          `json:"id"`
	CustomerSSN string          `json:"customer_ssn"`
	Amount      decimal.Decimal `json:"amount"`
	Status      LoanStatus      `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Session identifies a signed-in employee. It is constructed once at
// login and passed explicitly to every operation that needs identity.
type Session struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	SignedInAt time.Time `json:"signed_in_at"`
}

// Document is the whole persisted accounts mapping, loaded and saved as
// one unit.
type Document struct {
	Accounts map[string]*Account `json:"accounts"`
}

// NewDocument returns an empty accounts document.
func NewDocument() *Document {
	return &Document{Accounts: make(map[string]*Account)}
}
