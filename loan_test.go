package securebank_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securebank/securebank"
)

func TestComputeEMI(t *testing.T) {
	t.Run("matches the standard amortization formula", func(tt *testing.T) {
		as := assert.New(tt)
		emi, err := securebank.ComputeEMI(decimalInt(100000), decimalInt(10), 12)
		as.NoError(err)
		as.InDelta(8791.59, emi.InexactFloat64(), 0.01)
	})

	t.Run("rejects nonpositive inputs instead of propagating NaN", func(tt *testing.T) {
		as := assert.New(tt)
		cases := []struct {
			principal, rate decimal.Decimal
			months          int
		}{
			{decimalInt(0), decimalInt(10), 12},
			{decimalInt(-1), decimalInt(10), 12},
			{decimalInt(100000), decimal.Zero, 12},
			{decimalInt(100000), decimalInt(-3), 12},
			{decimalInt(100000), decimalInt(10), 0},
			{decimalInt(100000), decimalInt(10), -6},
		}
		for _, c := range cases {
			_, err := securebank.ComputeEMI(c.principal, c.rate, c.months)
			var br securebank.ErrBadRequest
			as.ErrorAs(err, &br)
		}
	})
}

func TestEligibleAmount(t *testing.T) {
	as := assert.New(t)
	as.True(securebank.EligibleAmount(820).Equal(decimalInt(1000000)))
	as.True(securebank.EligibleAmount(800).Equal(decimalInt(1000000)))
	as.True(securebank.EligibleAmount(760).Equal(decimalInt(700000)))
	as.True(securebank.EligibleAmount(710).Equal(decimalInt(400000)))
	as.True(securebank.EligibleAmount(660).Equal(decimalInt(200000)))
	as.True(securebank.EligibleAmount(620).Equal(decimalInt(50000)))
}

func TestCreditScore(t *testing.T) {
	as := assert.New(t)
	for i := 0; i < 100; i++ {
		score := securebank.CreditScore()
		as.GreaterOrEqual(score, 620)
		as.LessOrEqual(score, 850)
	}
}

func TestSubmitLoan(t *testing.T) {
	t.Run("records a Requested loan against a known customer", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})
		sess := signIn(tt, svc, "EMP700001")
		registerCustomer(tt, svc, sess, "SSN-100")

		loan, err := svc.SubmitLoan(securebank.LoanReq{
			SSN:     "SSN-100",
			Amount:  decimalInt(250000),
			Session: sess,
		})
		reqrd.NoError(err)
		as.True(strings.HasPrefix(loan.ID, "LN"))
		as.Equal("SSN-100", loan.CustomerSSN)
		as.Equal(securebank.LoanRequested, loan.Status)

		loans, err := svc.Loans(sess)
		reqrd.NoError(err)
		reqrd.Len(loans, 1)
		as.Equal(loan.ID, loans[0].ID)
	})

	t.Run("unknown customer is NotFound", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})
		sess := signIn(tt, svc, "EMP700002")

		_, err := svc.SubmitLoan(securebank.LoanReq{
			SSN:     "SSN-NOPE",
			Amount:  decimalInt(1000),
			Session: sess,
		})
		var nf securebank.ErrNotFound
		as.ErrorAs(err, &nf)
	})

	t.Run("loan identifiers are unique", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt, securebank.Config{})
		sess := signIn(tt, svc, "EMP700003")
		registerCustomer(tt, svc, sess, "SSN-101")

		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			loan, err := svc.SubmitLoan(securebank.LoanReq{
				SSN:     "SSN-101",
				Amount:  decimalInt(1000),
				Session: sess,
			})
			as.NoError(err)
			as.False(seen[loan.ID])
			seen[loan.ID] = true
		}
	})
}
