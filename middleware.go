package securebank

import (
	"context"
	"io"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

type Middleware func(Service) Service

//
// Validation middleware
//

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validationMiddleware rejects malformed requests before they reach the
// core, so every operation sees the same uniform checks: required
// fields present, email well-formed, amounts strictly positive.
type validationMiddleware struct {
	next Service
}

var (
	_ Service = (*validationMiddleware)(nil)
)

func NewValidationMiddleware() Middleware {
	return func(svc Service) Service {
		return &validationMiddleware{next: svc}
	}
}

func badAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadRequest{Fields: map[string]string{"amount": "must be > 0"}}
	}
	return nil
}

func (v *validationMiddleware) Register(req RegisterReq) (*Account, error) {
	fields := map[string]string{}
	if req.Firstname == "" {
		fields["firstname"] = "missing"
	}
	if req.Lastname == "" {
		fields["lastname"] = "missing"
	}
	if req.Password == "" {
		fields["password"] = "missing"
	}
	if !emailRe.MatchString(req.Email) {
		fields["email"] = "missing or invalid"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.next.Register(req)
}

func (v *validationMiddleware) Login(req LoginReq) (*Session, error) {
	fields := map[string]string{}
	if req.EmpID == "" {
		fields["emp_id"] = "missing"
	}
	if req.Password == "" {
		fields["password"] = "missing"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.next.Login(req)
}

func (v *validationMiddleware) Logout(sess *Session) error {
	return v.next.Logout(sess)
}

func (v *validationMiddleware) Balance(sess *Session) (decimal.Decimal, error) {
	return v.next.Balance(sess)
}

func (v *validationMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	if err := badAmount(req.Amount); err != nil {
		return nil, err
	}
	return v.next.Deposit(req)
}

func (v *validationMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	if err := badAmount(req.Amount); err != nil {
		return nil, err
	}
	return v.next.Withdraw(req)
}

func (v *validationMiddleware) Transfer(req TransferReq) (*decimal.Decimal, error) {
	if err := badAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.ReceiverID == "" {
		return nil, ErrBadRequest{Fields: map[string]string{"receiver_id": "missing"}}
	}
	return v.next.Transfer(req)
}

func (v *validationMiddleware) Transactions(sess *Session) ([]Transaction, error) {
	return v.next.Transactions(sess)
}

func (v *validationMiddleware) Statement(w io.Writer, sess *Session) error {
	return v.next.Statement(w, sess)
}

func (v *validationMiddleware) CreateCustomer(req CustomerReq) (*Customer, error) {
	fields := map[string]string{}
	if req.SSN == "" {
		fields["ssn"] = "missing"
	}
	if req.Name == "" {
		fields["name"] = "missing"
	}
	if req.AccountNumber == "" {
		fields["account_number"] = "missing"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.next.CreateCustomer(req)
}

func (v *validationMiddleware) Customer(sess *Session, ssn string) (*Customer, error) {
	if ssn == "" {
		return nil, ErrBadRequest{Fields: map[string]string{"ssn": "missing"}}
	}
	return v.next.Customer(sess, ssn)
}

func (v *validationMiddleware) UpdateCustomer(req UpdateCustomerReq) (*Customer, error) {
	if req.SSN == "" {
		return nil, ErrBadRequest{Fields: map[string]string{"ssn": "missing"}}
	}
	return v.next.UpdateCustomer(req)
}

func (v *validationMiddleware) DeleteCustomer(sess *Session, ssn string) error {
	if ssn == "" {
		return ErrBadRequest{Fields: map[string]string{"ssn": "missing"}}
	}
	return v.next.DeleteCustomer(sess, ssn)
}

func (v *validationMiddleware) Customers(sess *Session) ([]Customer, error) {
	return v.next.Customers(sess)
}

func (v *validationMiddleware) SubmitLoan(req LoanReq) (*Loan, error) {
	if req.SSN == "" {
		return nil, ErrBadRequest{Fields: map[string]string{"ssn": "missing"}}
	}
	if err := badAmount(req.Amount); err != nil {
		return nil, err
	}
	return v.next.SubmitLoan(req)
}

func (v *validationMiddleware) Loans(sess *Session) ([]Loan, error) {
	return v.next.Loans(sess)
}

func (v *validationMiddleware) SubmitKYC(req KYCReq) (KYCStatus, error) {
	return v.next.SubmitKYC(req)
}

func (v *validationMiddleware) KYC(sess *Session) (KYCStatus, error) {
	return v.next.KYC(sess)
}

//
// Rate limiting middleware
//

// limitMiddleware sheds load with weighted semaphores, one per
// operation family, acquired with a short timeout. Callers that cannot
// acquire within the timeout get ErrOverloaded instead of queueing.
type limitMiddleware struct {
	next   Service
	limits *ServiceLimits
}

var (
	_ Service = (*limitMiddleware)(nil)
)

type ServiceLimits struct {
	Auth     *semaphore.Weighted
	Ledger   *semaphore.Weighted
	Registry *semaphore.Weighted
	Loan     *semaphore.Weighted
	KYC      *semaphore.Weighted
}

func NewServiceLimits(cfg Config) *ServiceLimits {
	n := func(v int64) *semaphore.Weighted {
		if v <= 0 {
			v = 16
		}
		return semaphore.NewWeighted(v)
	}
	return &ServiceLimits{
		Auth:     n(cfg.Limits.Auth),
		Ledger:   n(cfg.Limits.Ledger),
		Registry: n(cfg.Limits.Registry),
		Loan:     n(cfg.Limits.Loan),
		KYC:      n(cfg.Limits.KYC),
	}
}

func NewLimitMiddleware(limits *ServiceLimits) Middleware {
	return func(next Service) Service {
		return &limitMiddleware{
			next:   next,
			limits: limits,
		}
	}
}

func (l *limitMiddleware) acquire(sem *semaphore.Weighted) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, ErrOverloaded
	}
	return func() { sem.Release(1) }, nil
}

func (l *limitMiddleware) Register(req RegisterReq) (*Account, error) {
	release, err := l.acquire(l.limits.Auth)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Register(req)
}

func (l *limitMiddleware) Login(req LoginReq) (*Session, error) {
	release, err := l.acquire(l.limits.Auth)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Login(req)
}

func (l *limitMiddleware) Logout(sess *Session) error {
	release, err := l.acquire(l.limits.Auth)
	if err != nil {
		return err
	}
	defer release()
	return l.next.Logout(sess)
}

func (l *limitMiddleware) Balance(sess *Session) (decimal.Decimal, error) {
	release, err := l.acquire(l.limits.Ledger)
	if err != nil {
		return decimal.Zero, err
	}
	defer release()
	return l.next.Balance(sess)
}

func (l *limitMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	release, err := l.acquire(l.limits.Ledger)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Deposit(req)
}

func (l *limitMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	release, err := l.acquire(l.limits.Ledger)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Withdraw(req)
}

func (l *limitMiddleware) Transfer(req TransferReq) (*decimal.Decimal, error) {
	release, err := l.acquire(l.limits.Ledger)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Transfer(req)
}

func (l *limitMiddleware) Transactions(sess *Session) ([]Transaction, error) {
	release, err := l.acquire(l.limits.Ledger)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Transactions(sess)
}

func (l *limitMiddleware) Statement(w io.Writer, sess *Session) error {
	release, err := l.acquire(l.limits.Ledger)
	if err != nil {
		return err
	}
	defer release()
	return l.next.Statement(w, sess)
}

func (l *limitMiddleware) CreateCustomer(req CustomerReq) (*Customer, error) {
	release, err := l.acquire(l.limits.Registry)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.CreateCustomer(req)
}

func (l *limitMiddleware) Customer(sess *Session, ssn string) (*Customer, error) {
	release, err := l.acquire(l.limits.Registry)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Customer(sess, ssn)
}

func (l *limitMiddleware) UpdateCustomer(req UpdateCustomerReq) (*Customer, error) {
	release, err := l.acquire(l.limits.Registry)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.UpdateCustomer(req)
}

func (l *limitMiddleware) DeleteCustomer(sess *Session, ssn string) error {
	release, err := l.acquire(l.limits.Registry)
	if err != nil {
		return err
	}
	defer release()
	return l.next.DeleteCustomer(sess, ssn)
}

func (l *limitMiddleware) Customers(sess *Session) ([]Customer, error) {
	release, err := l.acquire(l.limits.Registry)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Customers(sess)
}

func (l *limitMiddleware) SubmitLoan(req LoanReq) (*Loan, error) {
	release, err := l.acquire(l.limits.Loan)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.SubmitLoan(req)
}

func (l *limitMiddleware) Loans(sess *Session) ([]Loan, error) {
	release, err := l.acquire(l.limits.Loan)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Loans(sess)
}

func (l *limitMiddleware) SubmitKYC(req KYCReq) (KYCStatus, error) {
	release, err := l.acquire(l.limits.KYC)
	if err != nil {
		return "", err
	}
	defer release()
	return l.next.SubmitKYC(req)
}

func (l *limitMiddleware) KYC(sess *Session) (KYCStatus, error) {
	release, err := l.acquire(l.limits.KYC)
	if err != nil {
		return "", err
	}
	defer release()
	return l.next.KYC(sess)
}

//
// Instrumentation middleware
//

type instrumentMiddleware struct {
	next Service
	mtrc *Metrics
}

var (
	_ Service = (*instrumentMiddleware)(nil)
)

func NewInstrumentMiddleware(mtrc *Metrics) Middleware {
	return func(next Service) Service {
		return &instrumentMiddleware{
			next: next,
			mtrc: mtrc,
		}
	}
}

func (i *instrumentMiddleware) Register(req RegisterReq) (acct *Account, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("register", start, err) }()
	return i.next.Register(req)
}

func (i *instrumentMiddleware) Login(req LoginReq) (sess *Session, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("login", start, err) }()
	return i.next.Login(req)
}

func (i *instrumentMiddleware) Logout(sess *Session) (err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("logout", start, err) }()
	return i.next.Logout(sess)
}

func (i *instrumentMiddleware) Balance(sess *Session) (bal decimal.Decimal, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("balance", start, err) }()
	return i.next.Balance(sess)
}

func (i *instrumentMiddleware) Deposit(req ChargeReq) (bal *decimal.Decimal, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("deposit", start, err) }()
	return i.next.Deposit(req)
}

func (i *instrumentMiddleware) Withdraw(req ChargeReq) (bal *decimal.Decimal, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("withdraw", start, err) }()
	return i.next.Withdraw(req)
}

func (i *instrumentMiddleware) Transfer(req TransferReq) (bal *decimal.Decimal, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("transfer", start, err) }()
	return i.next.Transfer(req)
}

func (i *instrumentMiddleware) Transactions(sess *Session) (txns []Transaction, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("transactions", start, err) }()
	return i.next.Transactions(sess)
}

func (i *instrumentMiddleware) Statement(w io.Writer, sess *Session) (err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("statement", start, err) }()
	return i.next.Statement(w, sess)
}

func (i *instrumentMiddleware) CreateCustomer(req CustomerReq) (cust *Customer, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("create_customer", start, err) }()
	return i.next.CreateCustomer(req)
}

func (i *instrumentMiddleware) Customer(sess *Session, ssn string) (cust *Customer, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("get_customer", start, err) }()
	return i.next.Customer(sess, ssn)
}

func (i *instrumentMiddleware) UpdateCustomer(req UpdateCustomerReq) (cust *Customer, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("update_customer", start, err) }()
	return i.next.UpdateCustomer(req)
}

func (i *instrumentMiddleware) DeleteCustomer(sess *Session, ssn string) (err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("delete_customer", start, err) }()
	return i.next.DeleteCustomer(sess, ssn)
}

func (i *instrumentMiddleware) Customers(sess *Session) (custs []Customer, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("list_customers", start, err) }()
	return i.next.Customers(sess)
}

func (i *instrumentMiddleware) SubmitLoan(req LoanReq) (loan *Loan, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("submit_loan", start, err) }()
	return i.next.SubmitLoan(req)
}

func (i *instrumentMiddleware) Loans(sess *Session) (loans []Loan, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("list_loans", start, err) }()
	return i.next.Loans(sess)
}

func (i *instrumentMiddleware) SubmitKYC(req KYCReq) (status KYCStatus, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("submit_kyc", start, err) }()
	return i.next.SubmitKYC(req)
}

func (i *instrumentMiddleware) KYC(sess *Session) (status KYCStatus, err error) {
	start := time.Now()
	defer func() { i.mtrc.Observe("kyc_status", start, err) }()
	return i.next.KYC(sess)
}
