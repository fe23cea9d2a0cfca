package securebank

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("not signed in")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrKYCPending         = errors.New("verification already pending")
	ErrKYCVerified        = errors.New("account already verified")
	ErrStaleDocument      = errors.New("account version is stale")
	ErrOverloaded         = errors.New("server overloaded")
)

type ErrBadRequest struct {
	Fields map[string]string
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrNotFound struct {
	ID string `json:"id"`
}

func (e ErrNotFound) Error() string {
	return "record not found"
}

type ErrDuplicateKey struct {
	ID string `json:"id"`
}

func (e ErrDuplicateKey) Error() string {
	return fmt.Sprintf("record already exists: %s", e.ID)
}

type ErrMissingDocuments struct {
	Missing []string `json:"missing"`
}

func (e ErrMissingDocuments) Error() string {
	return fmt.Sprintf("missing documents: %s", strings.Join(e.Missing, ", "))
}
