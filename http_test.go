package securebank_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/securebank/securebank"
	"github.com/securebank/securebank/mocks"
)

func TestHTTPDeposit(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("returns the new balance on success", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		bal := decimal.NewFromInt(1234)
		svc.EXPECT().
			Deposit(gomock.AssignableToTypeOf(securebank.ChargeReq{})).
			Return(&bal, nil).
			Times(1)

		hndlr := securebank.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"amount":1234.00}`)
		req := httptest.NewRequest(http.MethodPost, "/accounts/deposit", body)
		req.Header.Set("X-Session-Token", "tok-1")
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		resp := map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		as.NoError(err)
		as.Equal("1234", resp["balance"])
	})

	t.Run("returns 400 on a malformed body", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"amount":1234.00`)
		req := httptest.NewRequest(http.MethodPost, "/accounts/deposit", body)
		req.Header.Set("X-Session-Token", "tok-1")
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("returns 401 without a session", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			Deposit(gomock.AssignableToTypeOf(securebank.ChargeReq{})).
			Return(nil, securebank.ErrNoSession)
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"amount":10}`)
		req := httptest.NewRequest(http.MethodPost, "/accounts/deposit", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusUnauthorized, w.Code)
	})
}

func TestHTTPWithdraw(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("maps insufficient funds to 409", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			Withdraw(gomock.AssignableToTypeOf(securebank.ChargeReq{})).
			Return(nil, securebank.ErrInsufficientFunds)
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"amount":600}`)
		req := httptest.NewRequest(http.MethodPost, "/accounts/withdraw", body)
		req.Header.Set("X-Session-Token", "tok-1")
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusConflict, w.Code)
	})
}

func TestHTTPCustomers(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("maps an unknown SSN to 404", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			Customer(gomock.Any(), "SSN-404").
			Return(nil, securebank.ErrNotFound{ID: "SSN-404"})
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		req := httptest.NewRequest(http.MethodGet, "/customers/SSN-404/", nil)
		req.Header.Set("X-Session-Token", "tok-1")
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNotFound, w.Code)
	})

	t.Run("maps a duplicate SSN to 409", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			CreateCustomer(gomock.AssignableToTypeOf(securebank.CustomerReq{})).
			Return(nil, securebank.ErrDuplicateKey{ID: "SSN-1"})
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"ssn":"SSN-1","name":"P","account_number":"AC-1"}`)
		req := httptest.NewRequest(http.MethodPost, "/customers/", body)
		req.Header.Set("X-Session-Token", "tok-1")
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusConflict, w.Code)
	})
}

func TestHTTPEMI(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("computes the installment from query params", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		req := httptest.NewRequest(http.MethodGet, "/loans/emi?principal=100000&rate=10&months=12", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		reqrd.Equal(http.StatusOK, w.Code)
		resp := map[string]string{}
		reqrd.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		emi, err := strconv.ParseFloat(resp["emi"], 64)
		reqrd.NoError(err)
		as.InDelta(8791.59, emi, 0.01)
	})

	t.Run("rejects non-numeric query params", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		req := httptest.NewRequest(http.MethodGet, "/loans/emi?principal=lots&rate=10&months=12", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusBadRequest, w.Code)
	})
}

func TestHTTPKYC(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("maps missing documents to 400", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			SubmitKYC(gomock.AssignableToTypeOf(securebank.KYCReq{})).
			Return(securebank.KYCStatus(""), securebank.ErrMissingDocuments{Missing: []string{"selfie"}})
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"front_id":true,"back_id":true,"selfie":false}`)
		req := httptest.NewRequest(http.MethodPost, "/kyc/", body)
		req.Header.Set("X-Session-Token", "tok-1")
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("maps a pending re-submission to 409", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			SubmitKYC(gomock.AssignableToTypeOf(securebank.KYCReq{})).
			Return(securebank.KYCStatus(""), securebank.ErrKYCPending)
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"front_id":true,"back_id":true,"selfie":true}`)
		req := httptest.NewRequest(http.MethodPost, "/kyc/", body)
		req.Header.Set("X-Session-Token", "tok-1")
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusConflict, w.Code)
	})
}

func TestHTTPFAQ(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("answers a keyword question", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		hndlr := securebank.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"question":"how do I withdraw?"}`)
		req := httptest.NewRequest(http.MethodPost, "/faq", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		reqrd.Equal(http.StatusOK, w.Code)
		resp := map[string]string{}
		reqrd.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		as.Contains(resp["answer"], "Withdraw")
	})
}

func TestHTTPNotFoundRoute(t *testing.T) {
	nooplog := zerolog.Nop()
	as := assert.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	hndlr := securebank.NewHTTPHandler(svc, &nooplog)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	hndlr.ServeHTTP(w, req)

	as.Equal(http.StatusNotFound, w.Code)
	resp := map[string]string{}
	as.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	as.Equal("/nope", resp["path"])
}
