package securebank

// Repository is the persistence boundary: three named slots in the
// host's local store. LoadAccounts degrades a corrupt or missing blob
// to an empty document instead of failing the caller; SaveAccounts
// rejects a document whose account versions regress relative to what
// is already persisted.
type Repository interface {
	LoadAccounts() (*Document, error)
	SaveAccounts(doc *Document) error
	CurrentUser() (string, error)
	SetCurrentUser(empID string) error
	LoadSession() (*Session, error)
	SaveSession(sess *Session) error
}
