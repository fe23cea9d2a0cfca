package securebank

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit credits the signed-in account. An account missing from the
// store is created on the spot with a zero balance; a deposit can only
// fail on a bad amount or store error.
func (s *serviceImpl) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrBadRequest{Fields: map[string]string{"amount": "must be > 0"}}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	empID, err := s.authorize(req.Session)
	if err != nil {
		return nil, err
	}
	doc, err := s.repo.LoadAccounts()
	if err != nil {
		return nil, err
	}
	acct, ok := doc.Accounts[empID]
	if !ok {
		acct = &Account{
			EmpID:     empID,
			KYCStatus: KYCNotSubmitted,
			CreatedAt: time.Now(),
		}
		doc.Accounts[empID] = acct
	}

	acct.Balance = acct.Balance.Add(req.Amount)
	acct.Transactions = append(acct.Transactions, Transaction{
		Kind:   "Deposit",
		Amount: req.Amount,
		Time:   time.Now(),
	})
	acct.Version++
	if err = s.repo.SaveAccounts(doc); err != nil {
		return nil, err
	}
	s.log.Info().Str("emp_id", empID).Str("amount", req.Amount.String()).Msg("deposit")
	return &acct.Balance, nil
}

// Withdraw debits the signed-in account, refusing to let the balance go
// negative. On any rejection the store is left untouched.
func (s *serviceImpl) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrBadRequest{Fields: map[string]string{"amount": "must be > 0"}}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, acct, err := s.loadAccount(req.Session)
	if err != nil {
		return nil, err
	}
	if acct.Balance.LessThan(req.Amount) {
		return nil, ErrInsufficientFunds
	}

	acct.Balance = acct.Balance.Sub(req.Amount)
	acct.Transactions = append(acct.Transactions, Transaction{
		Kind:   "Withdraw",
		Amount: req.Amount,
		Time:   time.Now(),
	})
	acct.Version++
	if err = s.repo.SaveAccounts(doc); err != nil {
		return nil, err
	}
	s.log.Info().Str("emp_id", acct.EmpID).Str("amount", req.Amount.String()).Msg("withdraw")
	return &acct.Balance, nil
}

// Transfer moves funds from the signed-in account to the receiver and
// records one entry on each side with a shared timestamp. Both records
// are mutated in memory before the single save, so no partial apply is
// ever persisted. Receiver auto-creation is a configuration choice; an
// auto-created receiver starts at the opening balance.
func (s *serviceImpl) Transfer(req TransferReq) (*decimal.Decimal, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrBadRequest{Fields: map[string]string{"amount": "must be > 0"}}
	}
	if req.ReceiverID == "" {
		return nil, ErrBadRequest{Fields: map[string]string{"receiver_id": "missing"}}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, sender, err := s.loadAccount(req.Session)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID == sender.EmpID {
		return nil, ErrBadRequest{Fields: map[string]string{"receiver_id": "same as sender"}}
	}
	if sender.Balance.LessThan(req.Amount) {
		return nil, ErrInsufficientFunds
	}

	receiver, ok := doc.Accounts[req.ReceiverID]
	if !ok {
		if s.cfg.Ledger.RequireReceiver {
			return nil, ErrNotFound{ID: req.ReceiverID}
		}
		receiver = &Account{
			EmpID:     req.ReceiverID,
			Balance:   s.openingBalance(),
			KYCStatus: KYCNotSubmitted,
			CreatedAt: time.Now(),
		}
		doc.Accounts[req.ReceiverID] = receiver
	}

	sender.Balance = sender.Balance.Sub(req.Amount)
	receiver.Balance = receiver.Balance.Add(req.Amount)

	now := time.Now()
	sender.Transactions = append(sender.Transactions, Transaction{
		Kind:   "Transfer to " + receiver.EmpID,
		Amount: req.Amount,
		Time:   now,
	})
	receiver.Transactions = append(receiver.Transactions, Transaction{
		Kind:   "Received from " + sender.EmpID,
		Amount: req.Amount,
		Time:   now,
	})
	sender.Version++
	receiver.Version++

	if err = s.repo.SaveAccounts(doc); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("sender", sender.EmpID).
		Str("receiver", receiver.EmpID).
		Str("amount", req.Amount.String()).
		Msg("transfer")
	return &sender.Balance, nil
}
