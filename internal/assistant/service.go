package assistant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nextgenbank/voicebank/internal/bank"
	"github.com/nextgenbank/voicebank/internal/history"
)

var ErrEmptyInput = errors.New("no user input provided")

const transactionsShown = 5

type service struct {
	llm          Completer
	users        bank.UserRepo
	transactions bank.TransactionRepo
	transfers    bank.TransferService
	records      history.Service
	log          *zap.Logger
}

func NewService(
	llm Completer,
	users bank.UserRepo,
	transactions bank.TransactionRepo,
	transfers bank.TransferService,
	records history.Service,
	log *zap.Logger,
) Service {
	return &service{
		llm:          llm,
		users:        users,
		transactions: transactions,
		transfers:    transfers,
		records:      records,
		log:          log,
	}
}

func (s *service) Answer(ctx context.Context, req Request) (*Reply, error) {
	text := strings.TrimSpace(req.UserInput)
	if text == "" {
		return nil, ErrEmptyInput
	}
	lang := req.Language

	if err := s.records.AddTurn(ctx, req.ThreadID, req.UserID, "user", text); err != nil {
		s.log.Warn("record user turn", zap.Error(err))
	}

	cls := s.classify(ctx, text)
	reply := &Reply{
		Intent:           cls.Intent,
		Confidence:       cls.Confidence,
		Entities:         cls.Entities,
		CompliancePassed: true,
	}
	if reply.Entities == nil {
		reply.Entities = map[string]any{}
	}
	if docs := retrieveContext(cls.Intent); len(docs) > 0 {
		reply.Entities["context"] = docs
	}

	var user *bank.UserProfile
	if req.UserID != nil {
		var err error
		user, err = s.users.GetByID(ctx, strings.ToLower(*req.UserID))
		if err != nil {
			return nil, fmt.Errorf("load user: %w", err)
		}
	}
	if user == nil {
		reply.Response = loginPrompt(lang)
		s.recordReply(ctx, req, reply.Response)
		return reply, nil
	}

	name := user.FirstName()

	switch cls.Intent {
	case IntentCheckBalance:
		balance := user.Balance
		reply.AccountBalance = &balance
		reply.Response = balanceResponse(lang, name, balance, user.AccountNumber)

	case IntentViewTransactions:
		list, err := s.transactions.ListByUser(ctx, user.UserID, transactionsShown)
		if err != nil {
			return nil, fmt.Errorf("load transactions: %w", err)
		}
		reply.Transactions = list
		reply.Response = transactionsResponse(lang, name, list)

	case IntentLoanInquiry:
		reply.Entities["loan_balance"] = user.LoanBalance
		reply.Entities["interest_rate"] = user.InterestRate
		reply.Response = loanResponse(lang, name, user.LoanBalance, user.InterestRate)

	case IntentCreditInquiry:
		reply.Entities["credit_limit"] = user.CreditLimit
		reply.Response = creditResponse(lang, name, user.CreditLimit)

	case IntentTransferFunds:
		s.answerTransfer(ctx, reply, user, lang, name)

	default:
		reply.Response = s.freeform(ctx, text, lang, name)
	}

	s.recordReply(ctx, req, reply.Response)
	return reply, nil
}

func (s *service) answerTransfer(ctx context.Context, reply *Reply, user *bank.UserProfile, lang bank.Language, name string) {
	amount, _ := strconv.ParseFloat(fmt.Sprint(reply.Entities["amount"]), 64)
	recipient, _ := reply.Entities["recipient"].(string)

	result, err := s.transfers.Transfer(ctx, user.UserID, recipient, amount)
	switch {
	case err == nil:
		reply.AccountBalance = &result.NewBalance
		reply.Entities["transfer_successful"] = true
		reply.Entities["amount_transferred"] = result.Amount
		reply.Entities["recipient_name"] = result.RecipientName
		reply.Entities["new_balance"] = result.NewBalance
		reply.Response = transferSuccess(lang, name, result)
	case errors.Is(err, bank.ErrRecipientNotFound):
		reply.Entities["error"] = err.Error()
		reply.Response = transferRecipientNotFound(lang, name)
	case errors.Is(err, bank.ErrInsufficientFunds):
		reply.Entities["error"] = err.Error()
		reply.Entities["current_balance"] = user.Balance
		reply.Response = transferInsufficient(lang, name, user.Balance)
	default:
		s.log.Warn("transfer failed", zap.Error(err))
		reply.Entities["error"] = "transfer failed"
		reply.Response = transferFailed(lang, name)
	}
}

// freeform answers general questions through the completion backend;
// any failure degrades to the canned help text.
func (s *service) freeform(ctx context.Context, text string, lang bank.Language, name string) string {
	if s.llm == nil {
		return genericHelp(lang, name)
	}

	system := fmt.Sprintf("You are a banking assistant for Next Gen Indian Banking speaking to %s. Respond only in the language with code %q, in 2-4 concise sentences.", name, lang)
	answer, err := s.llm.Complete(ctx, system, text)
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			s.log.Warn("freeform completion failed", zap.Error(err))
		}
		return genericHelp(lang, name)
	}
	return answer
}

func (s *service) recordReply(ctx context.Context, req Request, text string) {
	if err := s.records.AddTurn(ctx, req.ThreadID, req.UserID, "assistant", text); err != nil {
		s.log.Warn("record assistant turn", zap.Error(err))
	}
}
