package securebank

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Statement renders the signed-in account's transaction history as a
// PDF document written to w.
func (s *serviceImpl) Statement(w io.Writer, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, acct, err := s.loadAccount(sess)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Transaction Statement - %s", acct.EmpID), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	if len(acct.Transactions) == 0 {
		pdf.CellFormat(0, 8, "No transactions yet.", "", 1, "L", false, 0, "")
	}
	for i, txn := range acct.Transactions {
		line := fmt.Sprintf("%d. %s | INR %s | %s",
			i+1, txn.Kind, txn.Amount.StringFixed(2), txn.Time.Format("02 Jan 2006 15:04:05"))
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
