package securebank

import "time"

func (s *serviceImpl) CreateCustomer(req CustomerReq) (*Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, acct, err := s.loadAccount(req.Session)
	if err != nil {
		return nil, err
	}
	for _, c := range acct.Customers {
		if c.SSN == req.SSN {
			return nil, ErrDuplicateKey{ID: req.SSN}
		}
	}

	cust := Customer{
		SSN:           req.SSN,
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		AccountType:   req.AccountType,
		Balance:       req.Balance,
		Aadhaar:       req.Aadhaar,
		PAN:           req.PAN,
		Address:       req.Address,
		CreatedAt:     time.Now(),
	}
	acct.Customers = append(acct.Customers, cust)
	acct.Version++
	if err = s.repo.SaveAccounts(doc); err != nil {
		return nil, err
	}
	s.log.Info().Str("emp_id", acct.EmpID).Str("ssn", cust.SSN).Msg("customer registered")
	return &cust, nil
}

func (s *serviceImpl) Customer(sess *Session, ssn string) (*Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, acct, err := s.loadAccount(sess)
	if err != nil {
		return nil, err
	}
	for i := range acct.Customers {
		if acct.Customers[i].SSN == ssn {
			cp := acct.Customers[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound{ID: ssn}
}

// UpdateCustomer replaces the mutable fields (name, address, balance)
// and leaves identity fields untouched.
func (s *serviceImpl) UpdateCustomer(req UpdateCustomerReq) (*Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, acct, err := s.loadAccount(req.Session)
	if err != nil {
		return nil, err
	}
	for i := range acct.Customers {
		if acct.Customers[i].SSN != req.SSN {
			continue
		}
		acct.Customers[i].Name = req.Name
		acct.Customers[i].Address = req.Address
		acct.Customers[i].Balance = req.Balance
		acct.Version++
		if err = s.repo.SaveAccounts(doc); err != nil {
			return nil, err
		}
		cp := acct.Customers[i]
		return &cp, nil
	}
	return nil, ErrNotFound{ID: req.SSN}
}

// DeleteCustomer removes the matching record. Deleting an unknown SSN
// is a no-op, not an error, matching the filter-based semantics the
// registry has always had.
func (s *serviceImpl) DeleteCustomer(sess *Session, ssn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, acct, err := s.loadAccount(sess)
	if err != nil {
		return err
	}
	kept := acct.Customers[:0]
	removed := false
	for _, c := range acct.Customers {
		if c.SSN == ssn {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return nil
	}
	acct.Customers = kept
	acct.Version++
	return s.repo.SaveAccounts(doc)
}

func (s *serviceImpl) Customers(sess *Session) ([]Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, acct, err := s.loadAccount(sess)
	if err != nil {
		return nil, err
	}
	out := make([]Customer, len(acct.Customers))
	copy(out, acct.Customers)
	return out, nil
}
