package securebank

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

const (
	accountsSlot    = "accounts.json"
	currentUserSlot = "current_user.json"
	sessionSlot     = "session.json"
)

// FileEndpoint persists the three store slots as JSON files under one
// directory. Writes are atomic: the blob is written to a temp file and
// renamed over the slot. All I/O goes through a circuit breaker so a
// misbehaving filesystem sheds load instead of hanging every request.
type FileEndpoint struct {
	dir  string
	brkr *gobreaker.TwoStepCircuitBreaker[any]
	log  *zerolog.Logger
}

var (
	_ Repository = (*FileEndpoint)(nil)
)

func NewFileEndpoint(dir string, log *zerolog.Logger) (*FileEndpoint, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	brkr := gobreaker.NewTwoStepCircuitBreaker[any](gobreaker.Settings{
		Name: "localstore",
	})
	return &FileEndpoint{
		dir:  dir,
		brkr: brkr,
		log:  log,
	}, nil
}

func (fe *FileEndpoint) LoadAccounts() (*Document, error) {
	done, err := fe.brkr.Allow()
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	bits, err := os.ReadFile(filepath.Join(fe.dir, accountsSlot))
	if err != nil {
		done(os.IsNotExist(err))
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, err
	}
	done(true)

	if err = json.Unmarshal(bits, doc); err != nil {
		// A corrupt blob degrades to "no accounts" so the caller stays
		// usable; losing the data is preferred over refusing to start.
		fe.log.Warn().Err(err).Msg("accounts slot corrupt, starting empty")
		return NewDocument(), nil
	}
	if doc.Accounts == nil {
		doc.Accounts = make(map[string]*Account)
	}
	return doc, nil
}

func (fe *FileEndpoint) SaveAccounts(doc *Document) error {
	cur := NewDocument()
	if bits, err := os.ReadFile(filepath.Join(fe.dir, accountsSlot)); err == nil {
		if err = json.Unmarshal(bits, cur); err != nil {
			cur = NewDocument()
		}
	}
	for id, prev := range cur.Accounts {
		next, ok := doc.Accounts[id]
		if ok && next.Version < prev.Version {
			return ErrStaleDocument
		}
	}
	return fe.writeSlot(accountsSlot, doc)
}

func (fe *FileEndpoint) CurrentUser() (string, error) {
	var empID string
	err := fe.readSlot(currentUserSlot, &empID)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return empID, nil
}

func (fe *FileEndpoint) SetCurrentUser(empID string) error {
	if empID == "" {
		return fe.removeSlot(currentUserSlot)
	}
	return fe.writeSlot(currentUserSlot, empID)
}

func (fe *FileEndpoint) LoadSession() (*Session, error) {
	sess := &Session{}
	err := fe.readSlot(sessionSlot, sess)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if sess.ID == "" {
		return nil, nil
	}
	return sess, nil
}

func (fe *FileEndpoint) SaveSession(sess *Session) error {
	if sess == nil {
		return fe.removeSlot(sessionSlot)
	}
	return fe.writeSlot(sessionSlot, sess)
}

func (fe *FileEndpoint) readSlot(slot string, v any) error {
	done, err := fe.brkr.Allow()
	if err != nil {
		return err
	}
	bits, err := os.ReadFile(filepath.Join(fe.dir, slot))
	if err != nil {
		done(os.IsNotExist(err))
		return err
	}
	done(true)
	if err = json.Unmarshal(bits, v); err != nil {
		fe.log.Warn().Err(err).Str("slot", slot).Msg("slot corrupt, treating as absent")
		return os.ErrNotExist
	}
	return nil
}

func (fe *FileEndpoint) writeSlot(slot string, v any) error {
	done, err := fe.brkr.Allow()
	if err != nil {
		return err
	}
	var werr error
	defer func() { done(werr == nil) }()

	bits, werr := json.MarshalIndent(v, "", "  ")
	if werr != nil {
		return werr
	}
	path := filepath.Join(fe.dir, slot)
	tmp := path + ".tmp"
	if werr = os.WriteFile(tmp, bits, 0o644); werr != nil {
		return werr
	}
	werr = os.Rename(tmp, path)
	return werr
}

func (fe *FileEndpoint) removeSlot(slot string) error {
	err := os.Remove(filepath.Join(fe.dir, slot))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
