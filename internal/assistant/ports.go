package assistant

import (
	"context"

	"github.com/nextgenbank/voicebank/internal/bank"
)

type Intent string

const (
	IntentCheckBalance     Intent = "check_balance"
	IntentViewTransactions Intent = "view_transactions"
	IntentTransferFunds    Intent = "transfer_funds"
	IntentMakePayment      Intent = "make_payment"
	IntentLoanInquiry      Intent = "loan_inquiry"
	IntentCreditInquiry    Intent = "credit_inquiry"
	IntentGeneralQuestion  Intent = "general_question"
)

// Completer — chat completion backend used for intent classification
// and free-form answers.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Request struct {
	UserInput string
	UserID    *string
	ThreadID  string
	Language  bank.Language
}

type Reply struct {
	Response       string             `json:"response"`
	Intent         Intent             `json:"intent"`
	Confidence     float64            `json:"confidence"`
	AccountBalance *float64           `json:"account_balance"`
	Transactions   []bank.Transaction `json:"transaction_history,omitempty"`
	Entities       map[string]any     `json:"entities,omitempty"`

	CompliancePassed bool `json:"compliance_passed"`
}

type Service interface {
	Answer(ctx context.Context, req Request) (*Reply, error)
}
