package securebank_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/securebank/securebank"
	"github.com/securebank/securebank/mocks"
)

func decimalInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func newTestEndpoint(t *testing.T) *securebank.FileEndpoint {
	t.Helper()
	log := zerolog.Nop()
	endpt, err := securebank.NewFileEndpoint(t.TempDir(), &log)
	require.NoError(t, err)
	return endpt
}

func newTestService(t *testing.T, cfg securebank.Config) (securebank.Service, *securebank.FileEndpoint) {
	t.Helper()
	endpt := newTestEndpoint(t)
	log := zerolog.Nop()
	svc, err := securebank.NewService(endpt, cfg, &log)
	require.NoError(t, err)
	return svc, endpt
}

// signIn registers an employee and opens a session for it.
func signIn(t *testing.T, svc securebank.Service, empID string) *securebank.Session {
	t.Helper()
	_, err := svc.Register(securebank.RegisterReq{
		EmpID:     empID,
		Firstname: "Asha",
		Lastname:  "Rao",
		Email:     empID + "@securebank.test",
		Password:  "s3cret!",
	})
	require.NoError(t, err)
	sess, err := svc.Login(securebank.LoginReq{EmpID: empID, Password: "s3cret!"})
	require.NoError(t, err)
	return sess
}

func TestRegister(t *testing.T) {
	t.Run("creates an account with the opening balance", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})

		acct, err := svc.Register(securebank.RegisterReq{
			Firstname: "Asha",
			Lastname:  "Rao",
			Email:     "asha@securebank.test",
			Password:  "s3cret!",
		})
		reqrd.NoError(err)
		as.Regexp(`^EMP\d{6}$`, acct.EmpID)
		as.True(acct.Balance.Equal(decimalInt(1000)))
		as.Equal(securebank.KYCNotSubmitted, acct.KYCStatus)
		as.NotEqual("s3cret!", acct.PasswordHash)
		as.EqualValues(1, acct.Version)
		as.Empty(acct.Transactions)
	})

	t.Run("rejects a duplicate employee ID", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})

		_, err := svc.Register(securebank.RegisterReq{
			EmpID: "EMP100001", Firstname: "A", Lastname: "B",
			Email: "a@securebank.test", Password: "pw",
		})
		as.NoError(err)
		_, err = svc.Register(securebank.RegisterReq{
			EmpID: "EMP100001", Firstname: "C", Lastname: "D",
			Email: "c@securebank.test", Password: "pw",
		})
		var dup securebank.ErrDuplicateKey
		as.ErrorAs(err, &dup)
		as.Equal("EMP100001", dup.ID)
	})

	t.Run("rejects a duplicate email", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})

		_, err := svc.Register(securebank.RegisterReq{
			Firstname: "A", Lastname: "B",
			Email: "same@securebank.test", Password: "pw",
		})
		as.NoError(err)
		_, err = svc.Register(securebank.RegisterReq{
			Firstname: "C", Lastname: "D",
			Email: "same@securebank.test", Password: "pw",
		})
		var dup securebank.ErrDuplicateKey
		as.ErrorAs(err, &dup)
	})
}

func TestLogin(t *testing.T) {
	t.Run("issues a session on valid credentials", func(tt *testing.T) {
		as := assert.New(tt)
		svc, endpt := newTestService(tt, securebank.Config{})
		sess := signIn(tt, svc, "EMP200001")

		as.NotEmpty(sess.ID)
		as.Equal("EMP200001", sess.EmployeeID)
		as.WithinDuration(time.Now(), sess.SignedInAt, time.Minute)

		stored, err := endpt.LoadSession()
		as.NoError(err)
		as.Equal(sess.ID, stored.ID)
		cur, err := endpt.CurrentUser()
		as.NoError(err)
		as.Equal("EMP200001", cur)
	})

	t.Run("rejects a wrong password", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})
		signIn(tt, svc, "EMP200002")

		_, err := svc.Login(securebank.LoginReq{EmpID: "EMP200002", Password: "nope"})
		as.ErrorIs(err, securebank.ErrInvalidCredentials)
	})

	t.Run("rejects an unknown employee", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})

		_, err := svc.Login(securebank.LoginReq{EmpID: "EMP999999", Password: "pw"})
		as.ErrorIs(err, securebank.ErrInvalidCredentials)
	})

	t.Run("propagates a store failure", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		log := zerolog.Nop()
		svc, err := securebank.NewService(repo, securebank.Config{}, &log)
		require.NoError(tt, err)

		boom := errors.New("disk on fire")
		repo.EXPECT().LoadAccounts().Return(nil, boom)
		_, err = svc.Login(securebank.LoginReq{EmpID: "EMP1", Password: "pw"})
		as.ErrorIs(err, boom)
	})
}

func TestLogout(t *testing.T) {
	t.Run("clears the session and blocks further operations", func(tt *testing.T) {
		as := assert.New(tt)
		svc, endpt := newTestService(tt, securebank.Config{})
		sess := signIn(tt, svc, "EMP300001")

		as.NoError(svc.Logout(sess))

		stored, err := endpt.LoadSession()
		as.NoError(err)
		as.Nil(stored)
		_, err = svc.Balance(sess)
		as.ErrorIs(err, securebank.ErrNoSession)
	})

	t.Run("rejects a nil session", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})
		as.ErrorIs(svc.Logout(nil), securebank.ErrNoSession)
	})
}

func TestSessionGuard(t *testing.T) {
	t.Run("a newer login invalidates the older session", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})
		old := signIn(tt, svc, "EMP400001")

		_, err := svc.Login(securebank.LoginReq{EmpID: "EMP400001", Password: "s3cret!"})
		as.NoError(err)

		_, err = svc.Balance(old)
		as.ErrorIs(err, securebank.ErrNoSession)
	})
}
