package securebank

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const sessionHeader = "X-Session-Token"

type balanceJSONResp struct {
	Balance decimal.Decimal `json:"balance"`
}

func NewHTTPHandler(svc Service, log *zerolog.Logger) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.NotFound(HTTPNotFound)
	mux.Post("/register", hndlr.Register)
	mux.Post("/login", hndlr.Login)
	mux.Post("/logout", hndlr.Logout)
	mux.Route("/accounts", func(r chi.Router) {
		r.Get("/balance", hndlr.Balance)
		r.Post("/deposit", hndlr.Deposit)
		r.Post("/withdraw", hndlr.Withdraw)
		r.Post("/transfer", hndlr.Transfer)
		r.Get("/transactions", hndlr.Transactions)
		r.Get("/statement", hndlr.Statement)
	})
	mux.Route("/customers", func(r chi.Router) {
		r.Post("/", hndlr.CreateCustomer)
		r.Get("/", hndlr.Customers)
		r.Route("/{ssn}", func(rr chi.Router) {
			rr.Get("/", hndlr.Customer)
			rr.Put("/", hndlr.UpdateCustomer)
			rr.Delete("/", hndlr.DeleteCustomer)
		})
	})
	mux.Route("/loans", func(r chi.Router) {
		r.Post("/", hndlr.SubmitLoan)
		r.Get("/", hndlr.Loans)
		r.Get("/emi", hndlr.EMI)
		r.Get("/eligibility", hndlr.Eligibility)
	})
	mux.Route("/kyc", func(r chi.Router) {
		r.Post("/", hndlr.SubmitKYC)
		r.Get("/", hndlr.KYC)
	})
	mux.Post("/faq", hndlr.FAQ)

	return mux
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func session(r *http.Request) *Session {
	token := r.Header.Get(sessionHeader)
	if token == "" {
		return nil
	}
	return &Session{ID: token}
}

func (h *httpHandler) decode(w http.ResponseWriter, r *http.Request, method string, v any) bool {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", method).Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return false
	}
	if err = json.Unmarshal(buf, v); err != nil {
		h.Log.Err(err).Str("method", method).Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return false
	}
	return true
}

func (h *httpHandler) respond(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterReq
	if !h.decode(w, r, "register", &req) {
		return
	}
	acct, err := h.Svc.Register(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, map[string]string{
		"message": "Registration successful",
		"emp_id":  acct.EmpID,
	})
}

func (h *httpHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if !h.decode(w, r, "login", &req) {
		return
	}
	sess, err := h.Svc.Login(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, map[string]string{
		"message":       "Login successful",
		"emp_id":        sess.EmployeeID,
		"session_token": sess.ID,
	})
}

func (h *httpHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Logout(session(r)); err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, map[string]string{"message": "Logged out"})
}

func (h *httpHandler) Balance(w http.ResponseWriter, r *http.Request) {
	bal, err := h.Svc.Balance(session(r))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, balanceJSONResp{Balance: bal})
}

func (h *httpHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req ChargeReq
	if !h.decode(w, r, "deposit", &req) {
		return
	}
	req.Session = session(r)
	bal, err := h.Svc.Deposit(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, balanceJSONResp{Balance: *bal})
}

func (h *httpHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req ChargeReq
	if !h.decode(w, r, "withdraw", &req) {
		return
	}
	req.Session = session(r)
	bal, err := h.Svc.Withdraw(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, balanceJSONResp{Balance: *bal})
}

func (h *httpHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferReq
	if !h.decode(w, r, "transfer", &req) {
		return
	}
	req.Session = session(r)
	bal, err := h.Svc.Transfer(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, balanceJSONResp{Balance: *bal})
}

func (h *httpHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.Svc.Transactions(session(r))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, txns)
}

func (h *httpHandler) Statement(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/pdf")
	if err := h.Svc.Statement(w, session(r)); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerReq
	if !h.decode(w, r, "create_customer", &req) {
		return
	}
	req.Session = session(r)
	cust, err := h.Svc.CreateCustomer(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, cust)
}

func (h *httpHandler) Customer(w http.ResponseWriter, r *http.Request) {
	cust, err := h.Svc.Customer(session(r), chi.URLParam(r, "ssn"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, cust)
}

func (h *httpHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req UpdateCustomerReq
	if !h.decode(w, r, "update_customer", &req) {
		return
	}
	req.SSN = chi.URLParam(r, "ssn")
	req.Session = session(r)
	cust, err := h.Svc.UpdateCustomer(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, cust)
}

func (h *httpHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteCustomer(session(r), chi.URLParam(r, "ssn")); err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, map[string]string{"message": "Customer deleted"})
}

func (h *httpHandler) Customers(w http.ResponseWriter, r *http.Request) {
	custs, err := h.Svc.Customers(session(r))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, custs)
}

func (h *httpHandler) SubmitLoan(w http.ResponseWriter, r *http.Request) {
	var req LoanReq
	if !h.decode(w, r, "submit_loan", &req) {
		return
	}
	req.Session = session(r)
	loan, err := h.Svc.SubmitLoan(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, loan)
}

func (h *httpHandler) Loans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.Svc.Loans(session(r))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, loans)
}

func (h *httpHandler) EMI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	principal, perr := decimal.NewFromString(q.Get("principal"))
	rate, rerr := decimal.NewFromString(q.Get("rate"))
	months, merr := strconv.Atoi(q.Get("months"))
	if perr != nil || rerr != nil || merr != nil {
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{
			"query": "principal, rate and months must be numeric",
		}})
		return
	}
	emi, err := ComputeEMI(principal, rate, months)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, map[string]string{"emi": emi.StringFixed(2)})
}

func (h *httpHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	score := CreditScore()
	h.respond(w, map[string]any{
		"score":           score,
		"eligible_amount": EligibleAmount(score),
	})
}

func (h *httpHandler) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	var req KYCReq
	if !h.decode(w, r, "submit_kyc", &req) {
		return
	}
	req.Session = session(r)
	status, err := h.Svc.SubmitKYC(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, map[string]KYCStatus{"status": status})
}

func (h *httpHandler) KYC(w http.ResponseWriter, r *http.Request) {
	status, err := h.Svc.KYC(session(r))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	h.respond(w, map[string]KYCStatus{"status": status})
}

func (h *httpHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if !h.decode(w, r, "faq", &req) {
		return
	}
	h.respond(w, map[string]string{"answer": AnswerFAQ(req.Question)})
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	errnf := &ErrNotFound{}
	errbr := &ErrBadRequest{}
	errdk := &ErrDuplicateKey{}
	errmd := &ErrMissingDocuments{}
	switch {
	case errors.As(err, errnf):
		w.WriteHeader(http.StatusNotFound)
		ne = enc.Encode(errnf)
	case errors.As(err, errbr):
		w.WriteHeader(http.StatusBadRequest)
		ne = enc.Encode(map[string]any{"fields": errbr.Fields})
	case errors.As(err, errmd):
		w.WriteHeader(http.StatusBadRequest)
		ne = enc.Encode(errmd)
	case errors.As(err, errdk):
		w.WriteHeader(http.StatusConflict)
		ne = enc.Encode(errdk)
	case errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrKYCPending),
		errors.Is(err, ErrKYCVerified),
		errors.Is(err, ErrStaleDocument):
		w.WriteHeader(http.StatusConflict)
		ne = enc.Encode(map[string]string{"message": err.Error()})
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrNoSession):
		w.WriteHeader(http.StatusUnauthorized)
		ne = enc.Encode(map[string]string{"message": err.Error()})
	case errors.Is(err, ErrOverloaded):
		w.WriteHeader(http.StatusServiceUnavailable)
		ne = enc.Encode(map[string]string{"message": err.Error()})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		ne = enc.Encode(map[string]string{"message": "server error"})
	}
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]string{
		"path": r.URL.Path,
	}
	json.NewEncoder(w).Encode(resp)
}
