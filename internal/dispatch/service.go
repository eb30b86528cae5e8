package dispatch

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nextgenbank/voicebank/internal/bank"
)

const (
	statusProcessing = "Processing..."
	statusReady      = "Ready to help"
)

// Service is the dispatch orchestrator: one utterance or typed message
// in, exactly one bot-visible reply out. Dispatches are serialized and
// the gateway call is bounded by a timeout; the reference behavior left
// both open.
type Service struct {
	gateway Gateway
	state   AccountState
	speaker Speaker
	surface Surface
	log     *zap.Logger
	timeout time.Duration

	mu sync.Mutex
}

func NewService(gateway Gateway, state AccountState, speaker Speaker, surface Surface, log *zap.Logger) *Service {
	return &Service{
		gateway: gateway,
		state:   state,
		speaker: speaker,
		surface: surface,
		log:     log,
		timeout: 30 * time.Second,
	}
}

// Handle runs one dispatch to completion. Exactly one of the gateway
// branch or the fallback branch settles it.
func (s *Service) Handle(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.surface.AppendMessage("user", text)
	s.state.AppendTranscript(ctx, "user", text)
	s.surface.SetStatus(statusProcessing)
	defer s.surface.SetStatus(statusReady)

	lang := s.state.Language(ctx)

	q := Query{
		Text:     text,
		ThreadID: NewThreadID(),
		Language: lang,
	}
	if s.state.Authenticated() {
		if u := s.state.User(); u != nil {
			q.UserID = &u.UserID
		}
	}

	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res := s.gateway.Dispatch(dctx, q)
	if !res.Ok {
		s.log.Warn("gateway dispatch failed, using fallback",
			zap.String("thread", q.ThreadID), zap.String("reason", res.Reason))
		s.settleFallback(ctx, text)
		return
	}

	s.surface.AppendMessage("bot", res.Response)
	s.state.AppendTranscript(ctx, "bot", res.Response)
	s.speaker.Speak(res.Response, lang)

	if res.AccountBalance != nil {
		s.state.ApplyBalance(ctx, *res.AccountBalance)
		s.surface.RenderBalance(*res.AccountBalance)
	}
	if len(res.Transactions) > 0 {
		s.state.ApplyTransactions(res.Transactions)
		s.surface.RenderTransactions(s.state.Transactions())
	}
}

// settleFallback substitutes one canned reply for the failed dispatch.
// Not a retry: the gateway is never called again for this query.
// Fallback responses are not language-tagged, so they are spoken in the
// default language.
func (s *Service) settleFallback(ctx context.Context, text string) {
	reply := Fallback(text)

	s.surface.AppendMessage("bot", reply.Text)
	s.state.AppendTranscript(ctx, "bot", reply.Text)
	s.speaker.Speak(reply.Text, bank.DefaultLanguage)

	if reply.Balance != nil {
		s.state.ApplyBalance(ctx, *reply.Balance)
		s.surface.RenderBalance(*reply.Balance)
	}
}
