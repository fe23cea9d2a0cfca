package securebank

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type RegisterReq struct {
	EmpID     string `json:"emp_id,omitempty"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginReq struct {
	EmpID    string `json:"emp_id"`
	Password string `json:"password"`
}

type ChargeReq struct {
	Amount  decimal.Decimal `json:"amount"`
	Session *Session        `json:"-"`
}

type TransferReq struct {
	ReceiverID string          `json:"receiver_id"`
	Amount     decimal.Decimal `json:"amount"`
	Session    *Session        `json:"-"`
}

type CustomerReq struct {
	SSN           string          `json:"ssn"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	Aadhaar       string          `json:"aadhaar"`
	PAN           string          `json:"pan"`
	Address       string          `json:"address"`
	Session       *Session        `json:"-"`
}

type UpdateCustomerReq struct {
	SSN     string          `json:"-"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
	Session *Session        `json:"-"`
}

type LoanReq struct {
	SSN    string          `json:"ssn"`
	Amount decimal.Decimal `json:"amount"`

	Session *Session `json:"-"`
}

// KYCReq carries the artifact-present flags supplied by whatever
// collaborator manages file selection; the core never parses contents.
type KYCReq struct {
	FrontID bool `json:"front_id"`
	BackID  bool `json:"back_id"`
	Selfie  bool `json:"selfie"`

	Session *Session `json:"-"`
}

type Service interface {
	Register(RegisterReq) (*Account, error)
	Login(LoginReq) (*Session, error)
	Logout(sess *Session) error

	Balance(sess *Session) (decimal.Decimal, error)
	Deposit(ChargeReq) (*decimal.Decimal, error)
	Withdraw(ChargeReq) (*decimal.Decimal, error)
	Transfer(TransferReq) (*decimal.Decimal, error)
	Transactions(sess *Session) ([]Transaction, error)
	Statement(w io.Writer, sess *Session) error

	CreateCustomer(CustomerReq) (*Customer, error)
	Customer(sess *Session, ssn string) (*Customer, error)
	UpdateCustomer(UpdateCustomerReq) (*Customer, error)
	DeleteCustomer(sess *Session, ssn string) error
	Customers(sess *Session) ([]Customer, error)

	SubmitLoan(LoanReq) (*Loan, error)
	Loans(sess *Session) ([]Loan, error)

	SubmitKYC(KYCReq) (KYCStatus, error)
	KYC(sess *Session) (KYCStatus, error)
}

// serviceImpl is the single logical actor of the system: one mutex
// serializes every load-mutate-save cycle, so no operation ever
// observes a partially applied mutation.
type serviceImpl struct {
	mu        sync.Mutex
	repo      Repository
	cfg       Config
	log       *zerolog.Logger
	node      *snowflake.Node
	kycTimers map[string]*time.Timer
}

var (
	_ Service = (*serviceImpl)(nil)
)

func NewService(repo Repository, cfg Config, log *zerolog.Logger) (*serviceImpl, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		log:       log,
		node:      node,
		kycTimers: make(map[string]*time.Timer),
	}, nil
}

func (s *serviceImpl) openingBalance() decimal.Decimal {
	if s.cfg.Ledger.OpeningBalance <= 0 {
		return decimal.NewFromInt(1000)
	}
	return decimal.NewFromFloat(s.cfg.Ledger.OpeningBalance)
}

func (s *serviceImpl) Register(req RegisterReq) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.repo.LoadAccounts()
	if err != nil {
		return nil, err
	}

	empID := req.EmpID
	if empID == "" {
		empID = generateEmployeeID(doc)
	} else if _, exists := doc.Accounts[empID]; exists {
		return nil, ErrDuplicateKey{ID: empID}
	}
	for _, acct := range doc.Accounts {
		if acct.Email == req.Email {
			return nil, ErrDuplicateKey{ID: req.Email}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acct := &Account{
		EmpID:        empID,
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: string(hash),
		Balance:      s.openingBalance(),
		KYCStatus:    KYCNotSubmitted,
		CreatedAt:    time.Now(),
		Version:      1,
	}
	doc.Accounts[empID] = acct
	if err = s.repo.SaveAccounts(doc); err != nil {
		return nil, err
	}
	s.log.Info().Str("emp_id", empID).Msg("account registered")
	return acct, nil
}

func (s *serviceImpl) Login(req LoginReq) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.repo.LoadAccounts()
	if err != nil {
		return nil, err
	}
	acct, ok := doc.Accounts[req.EmpID]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sess := &Session{
		ID:         uuid.NewString(),
		EmployeeID: acct.EmpID,
		SignedInAt: time.Now(),
	}
	if err = s.repo.SaveSession(sess); err != nil {
		return nil, err
	}
	if err = s.repo.SetCurrentUser(acct.EmpID); err != nil {
		return nil, err
	}
	s.log.Info().Str("emp_id", acct.EmpID).Msg("signed in")
	return sess, nil
}

func (s *serviceImpl) Logout(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	empID, err := s.authorize(sess)
	if err != nil {
		return err
	}
	s.cancelKYCTimer(empID)
	if err := s.repo.SaveSession(nil); err != nil {
		return err
	}
	if err := s.repo.SetCurrentUser(""); err != nil {
		return err
	}
	s.log.Info().Str("emp_id", empID).Msg("signed out")
	return nil
}

func (s *serviceImpl) Balance(sess *Session) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, acct, err := s.loadAccount(sess)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Balance, nil
}

func (s *serviceImpl) Transactions(sess *Session) ([]Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, acct, err := s.loadAccount(sess)
	if err != nil {
		return nil, err
	}
	// Newest first, as the history view presents them.
	out := make([]Transaction, len(acct.Transactions))
	for i, txn := range acct.Transactions {
		out[len(out)-1-i] = txn
	}
	return out, nil
}

// authorize resolves the explicit session against the persisted session
// slot. The caller must hold s.mu.
func (s *serviceImpl) authorize(sess *Session) (string, error) {
	if sess == nil || sess.ID == "" {
		return "", ErrNoSession
	}
	cur, err := s.repo.LoadSession()
	if err != nil {
		return "", err
	}
	if cur == nil || cur.ID != sess.ID {
		return "", ErrNoSession
	}
	return cur.EmployeeID, nil
}

// loadAccount authorizes the session and loads the signed-in account.
// The caller must hold s.mu.
func (s *serviceImpl) loadAccount(sess *Session) (*Document, *Account, error) {
	empID, err := s.authorize(sess)
	if err != nil {
		return nil, nil, err
	}
	doc, err := s.repo.LoadAccounts()
	if err != nil {
		return nil, nil, err
	}
	acct, ok := doc.Accounts[empID]
	if !ok {
		return nil, nil, ErrNotFound{ID: empID}
	}
	return doc, acct, nil
}

func generateEmployeeID(doc *Document) string {
	for {
		id := fmt.Sprintf("EMP%06d", 100000+rand.Intn(900000))
		if _, exists := doc.Accounts[id]; !exists {
			return id
		}
	}
}
