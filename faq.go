package securebank

import "strings"

// faqDefault is returned when no keyword matches.
const faqDefault = "Sorry, I don't understand. Try 'how to withdraw' or 'loan process'."

var faqAnswers = []struct {
	keyword string
	answer  string
}{
	{"withdraw", "To withdraw: go to Withdraw, enter amount, click Withdraw."},
	{"deposit", "To deposit: go to Deposit, enter amount, click Add Money."},
	{"transfer", "To transfer: go to Transfer, enter receiver username & amount, click Transfer."},
	{"loan", "For loans: go to Loan page, check CIBIL, use EMI calculator and submit request."},
	{"kyc", "KYC: go to KYC page, upload Aadhaar front/back & selfie, submit to verify."},
}

// AnswerFAQ is the keyword responder behind the help widget. Later
// keywords win when a question mentions several topics.
func AnswerFAQ(question string) string {
	q := strings.ToLower(question)
	ans := faqDefault
	for _, fa := range faqAnswers {
		if strings.Contains(q, fa.keyword) {
			ans = fa.answer
		}
	}
	return ans
}
