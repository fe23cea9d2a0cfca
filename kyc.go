package securebank

import "time"

// SubmitKYC moves the signed-in account from NotSubmitted to Pending
// and schedules the simulated verification. Submission is accepted only
// from NotSubmitted: a Pending account must wait for its verification
// rather than silently restarting the timer, and a Verified account
// never regresses.
func (s *serviceImpl) SubmitKYC(req KYCReq) (KYCStatus, error) {
	var missing []string
	if !req.FrontID {
		missing = append(missing, "front ID")
	}
	if !req.BackID {
		missing = append(missing, "back ID")
	}
	if !req.Selfie {
		missing = append(missing, "selfie")
	}
	if len(missing) > 0 {
		return "", ErrMissingDocuments{Missing: missing}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, acct, err := s.loadAccount(req.Session)
	if err != nil {
		return "", err
	}
	switch acct.KYCStatus {
	case KYCPending:
		return "", ErrKYCPending
	case KYCVerified:
		return "", ErrKYCVerified
	}

	acct.KYCStatus = KYCPending
	acct.Version++
	if err = s.repo.SaveAccounts(doc); err != nil {
		return "", err
	}

	empID := acct.EmpID
	s.cancelKYCTimer(empID)
	s.kycTimers[empID] = time.AfterFunc(s.cfg.VerifyDelay(), func() {
		s.completeKYC(empID)
	})
	s.log.Info().Str("emp_id", empID).Msg("kyc submitted")
	return KYCPending, nil
}

func (s *serviceImpl) KYC(sess *Session) (KYCStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, acct, err := s.loadAccount(sess)
	if err != nil {
		return "", err
	}
	return acct.KYCStatus, nil
}

// completeKYC is the deferred verification step. It re-reads the store
// and no-ops unless the account still exists and is still Pending, so a
// stale timer can never clobber later state.
func (s *serviceImpl) completeKYC(empID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.kycTimers, empID)

	doc, err := s.repo.LoadAccounts()
	if err != nil {
		s.log.Err(err).Str("emp_id", empID).Msg("kyc verification load failed")
		return
	}
	acct, ok := doc.Accounts[empID]
	if !ok || acct.KYCStatus != KYCPending {
		return
	}
	acct.KYCStatus = KYCVerified
	acct.Version++
	if err = s.repo.SaveAccounts(doc); err != nil {
		s.log.Err(err).Str("emp_id", empID).Msg("kyc verification save failed")
		return
	}
	s.log.Info().Str("emp_id", empID).Msg("kyc verified")
}

// cancelKYCTimer stops a pending verification timer, if any. The caller
// must hold s.mu.
func (s *serviceImpl) cancelKYCTimer(empID string) {
	if t, ok := s.kycTimers[empID]; ok {
		t.Stop()
		delete(s.kycTimers, empID)
	}
}
