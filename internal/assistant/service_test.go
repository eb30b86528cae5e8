package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextgenbank/voicebank/internal/bank"
	"github.com/nextgenbank/voicebank/internal/history"
)

type fakeUserRepo struct {
	users map[string]*bank.UserProfile
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (*bank.UserProfile, error) {
	return r.users[userID], nil
}

func (r *fakeUserRepo) GetPassword(context.Context, string) (string, error) {
	return "", nil
}

func (r *fakeUserRepo) FindRecipient(context.Context, string, string) (*bank.UserProfile, error) {
	return nil, nil
}

type fakeTxRepo struct {
	list []bank.Transaction
}

func (r *fakeTxRepo) ListByUser(_ context.Context, _ string, limit int) ([]bank.Transaction, error) {
	if len(r.list) > limit {
		return r.list[:limit], nil
	}
	return r.list, nil
}

func (r *fakeTxRepo) Transfer(context.Context, string, string, float64, string, string) (float64, error) {
	return 0, errors.New("not used")
}

type fakeTransfers struct {
	result *bank.TransferResult
	err    error

	recipient string
	amount    float64
}

func (f *fakeTransfers) Transfer(_ context.Context, _ string, recipient string, amount float64) (*bank.TransferResult, error) {
	f.recipient = recipient
	f.amount = amount
	return f.result, f.err
}

type fakeRecords struct {
	turns [][2]string // role, text
}

func (f *fakeRecords) AddTurn(_ context.Context, _ string, _ *string, role, text string) error {
	f.turns = append(f.turns, [2]string{role, text})
	return nil
}

func (f *fakeRecords) Recent(context.Context, string, int) ([]history.Record, error) {
	return nil, nil
}

func (f *fakeRecords) ClearForUser(context.Context, string) error { return nil }

type fakeCompleter struct {
	answer string
	err    error
}

func (f *fakeCompleter) Complete(context.Context, string, string) (string, error) {
	return f.answer, f.err
}

func neha() *bank.UserProfile {
	return &bank.UserProfile{
		UserID:        "neha",
		Name:          "Neha Sharma",
		AccountNumber: "NGB001234567890",
		Balance:       125000.00,
		LoanBalance:   120000,
		InterestRate:  3.5,
		CreditLimit:   50000,
	}
}

func newTestAssistant(llm Completer, transfers bank.TransferService, txns []bank.Transaction) (Service, *fakeRecords) {
	users := &fakeUserRepo{users: map[string]*bank.UserProfile{"neha": neha()}}
	records := &fakeRecords{}
	if transfers == nil {
		transfers = &fakeTransfers{err: errors.New("not configured")}
	}
	svc := NewService(llm, users, &fakeTxRepo{list: txns}, transfers, records, zap.NewNop())
	return svc, records
}

func strp(s string) *string { return &s }

func TestAnswerEmptyInput(t *testing.T) {
	svc, _ := newTestAssistant(nil, nil, nil)

	_, err := svc.Answer(context.Background(), Request{UserInput: "  "})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnswerRequiresLogin(t *testing.T) {
	svc, _ := newTestAssistant(nil, nil, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "what is my balance",
		Language:  bank.LangEnglish,
	})
	require.NoError(t, err)
	assert.Equal(t, "Please log in to access your account information.", reply.Response)
	assert.Nil(t, reply.AccountBalance)
}

func TestAnswerUnknownUserGetsLoginPrompt(t *testing.T) {
	svc, _ := newTestAssistant(nil, nil, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "balance",
		UserID:    strp("ghost"),
		Language:  bank.LangHindi,
	})
	require.NoError(t, err)
	assert.Equal(t, "कृपया अपनी खाता जानकारी तक पहुंचने के लिए लॉगिन करें।", reply.Response)
}

func TestAnswerBalance(t *testing.T) {
	svc, records := newTestAssistant(nil, nil, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "check my balance",
		UserID:    strp("neha"),
		ThreadID:  "t1",
		Language:  bank.LangEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, IntentCheckBalance, reply.Intent)
	require.NotNil(t, reply.AccountBalance)
	assert.Equal(t, 125000.00, *reply.AccountBalance)
	assert.Equal(t, "Hello Neha, your current account balance is ₹125,000.00. Account number: NGB001234567890. Is there anything else I can help you with?", reply.Response)
	assert.True(t, reply.CompliancePassed)

	require.Len(t, records.turns, 2)
	assert.Equal(t, "user", records.turns[0][0])
	assert.Equal(t, "assistant", records.turns[1][0])
}

func TestAnswerBalanceUppercaseUserID(t *testing.T) {
	svc, _ := newTestAssistant(nil, nil, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "balance please",
		UserID:    strp("NEHA"),
		Language:  bank.LangEnglish,
	})
	require.NoError(t, err)
	require.NotNil(t, reply.AccountBalance)
}

func TestAnswerTransactions(t *testing.T) {
	txns := []bank.Transaction{
		{Date: "2024-11-20", Type: bank.Debit, Amount: 150, Description: "Grocery Store"},
		{Date: "2024-11-18", Type: bank.Credit, Amount: 3000, Description: "Salary"},
	}
	svc, _ := newTestAssistant(nil, nil, txns)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "show my transactions",
		UserID:    strp("neha"),
		Language:  bank.LangEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, IntentViewTransactions, reply.Intent)
	assert.Len(t, reply.Transactions, 2)
	assert.Contains(t, reply.Response, "1. 2024-11-20 - DEBIT ₹150.00 - Grocery Store")
	assert.Contains(t, reply.Response, "2. 2024-11-18 - CREDIT ₹3,000.00 - Salary")
}

func TestAnswerLoan(t *testing.T) {
	svc, _ := newTestAssistant(nil, nil, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "tell me about my loan",
		UserID:    strp("neha"),
		Language:  bank.LangEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, IntentLoanInquiry, reply.Intent)
	assert.Contains(t, reply.Response, "₹120,000.00")
	assert.Contains(t, reply.Response, "3.50%")
	assert.Equal(t, 120000.0, reply.Entities["loan_balance"])
}

func TestAnswerCredit(t *testing.T) {
	svc, _ := newTestAssistant(nil, nil, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "credit card limit",
		UserID:    strp("neha"),
		Language:  bank.LangGujarati,
	})
	require.NoError(t, err)

	assert.Equal(t, IntentCreditInquiry, reply.Intent)
	assert.Contains(t, reply.Response, "₹50,000.00")
}

func TestAnswerTransferSuccess(t *testing.T) {
	transfers := &fakeTransfers{result: &bank.TransferResult{
		Amount:           500,
		RecipientName:    "Niyati Patel",
		RecipientAccount: "NGB009876543210",
		NewBalance:       124500,
	}}
	svc, _ := newTestAssistant(nil, transfers, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "transfer ₹500 to niyati",
		UserID:    strp("neha"),
		Language:  bank.LangEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, "Niyati", transfers.recipient)
	assert.Equal(t, 500.0, transfers.amount)
	require.NotNil(t, reply.AccountBalance)
	assert.Equal(t, 124500.0, *reply.AccountBalance)
	assert.Contains(t, reply.Response, "₹500.00 has been transferred to Niyati Patel")
	assert.Equal(t, true, reply.Entities["transfer_successful"])
}

func TestAnswerTransferErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"recipient not found", bank.ErrRecipientNotFound, "recipient not found"},
		{"insufficient", bank.ErrInsufficientFunds, "insufficient balance"},
		{"other", errors.New("db down"), "transfer failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAssistant(nil, &fakeTransfers{err: tt.err}, nil)

			reply, err := svc.Answer(context.Background(), Request{
				UserInput: "transfer 500 to ghost",
				UserID:    strp("neha"),
				Language:  bank.LangEnglish,
			})
			require.NoError(t, err)
			assert.Contains(t, reply.Response, tt.want)
			assert.Nil(t, reply.AccountBalance)
		})
	}
}

func TestAnswerGeneralWithoutLLM(t *testing.T) {
	svc, _ := newTestAssistant(nil, nil, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "hello there",
		UserID:    strp("neha"),
		Language:  bank.LangEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, IntentGeneralQuestion, reply.Intent)
	assert.Contains(t, reply.Response, "Hello Neha!")
}

func TestAnswerGeneralLLMFailureDegrades(t *testing.T) {
	llm := &fakeCompleter{err: errors.New("quota exceeded")}
	svc, _ := newTestAssistant(llm, nil, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "zzzz unrelated question",
		UserID:    strp("neha"),
		Language:  bank.LangEnglish,
	})
	require.NoError(t, err)
	assert.Contains(t, reply.Response, "I'm here to help you with")
}

func TestRetrieveContextAttached(t *testing.T) {
	svc, _ := newTestAssistant(nil, nil, nil)

	reply, err := svc.Answer(context.Background(), Request{
		UserInput: "loan info",
		UserID:    strp("neha"),
		Language:  bank.LangEnglish,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Entities["context"])
}
