package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nextgenbank/voicebank/internal/bank"
)

// Transactions kept for display.
const maxTransactions = 5

// Session snapshots live only as long as one browsing session; the
// language preference has no TTL and survives across sessions.
const snapshotTTL = 12 * time.Hour

// State is the persisted part of the store: the auth flag plus profile.
type State struct {
	Authenticated bool              `json:"is_authenticated"`
	User          *bank.UserProfile `json:"user,omitempty"`
}

type Message struct {
	Role string `json:"role"` // user | bot
	Text string `json:"text"`
}

// Store owns the authenticated user, balance and displayed transaction
// list. It is the only component that mutates this state; everything
// else holds a reference to the store, never a private copy.
type Store struct {
	rdb       *redis.Client
	log       *zap.Logger
	sessionID string

	mu            sync.RWMutex
	authenticated bool
	user          *bank.UserProfile
	transactions  []bank.Transaction
}

func NewStore(rdb *redis.Client, sessionID string, log *zap.Logger) *Store {
	return &Store{rdb: rdb, log: log, sessionID: sessionID}
}

func (s *Store) snapshotKey() string   { return "voicebank:session:" + s.sessionID }
func (s *Store) languageKey() string   { return "voicebank:lang:" + s.sessionID }
func (s *Store) transcriptKey() string { return "voicebank:chat:" + s.sessionID }

func (s *Store) Login(ctx context.Context, profile bank.UserProfile) error {
	s.mu.Lock()
	s.authenticated = true
	p := profile
	s.user = &p
	s.transactions = nil
	s.mu.Unlock()

	if err := s.rdb.Del(ctx, s.transcriptKey()).Err(); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.authenticated = false
	s.user = nil
	s.transactions = nil
	s.mu.Unlock()

	return s.rdb.Del(ctx, s.snapshotKey(), s.transcriptKey()).Err()
}

// ApplyBalance overwrites the current balance and re-persists the
// snapshot. No-op when logged out.
func (s *Store) ApplyBalance(ctx context.Context, amount float64) {
	s.mu.Lock()
	if !s.authenticated || s.user == nil {
		s.mu.Unlock()
		return
	}
	s.user.Balance = amount
	s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		s.log.Warn("persist balance snapshot", zap.Error(err))
	}
}

// ApplyTransactions replaces the displayed list with at most the first
// five entries, preserving order. No-op on an empty list.
func (s *Store) ApplyTransactions(list []bank.Transaction) {
	if len(list) == 0 {
		return
	}
	if len(list) > maxTransactions {
		list = list[:maxTransactions]
	}
	s.mu.Lock()
	s.transactions = append([]bank.Transaction(nil), list...)
	s.mu.Unlock()
}

// Restore rebuilds state from the persisted snapshot. A missing or
// unparsable snapshot means "not authenticated" and is never an error.
func (s *Store) Restore(ctx context.Context) (*State, error) {
	raw, err := s.rdb.Get(ctx, s.snapshotKey()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.log.Warn("invalid session snapshot, treating as logged out", zap.Error(err))
		return nil, nil
	}
	if !state.Authenticated || state.User == nil {
		return nil, nil
	}

	s.mu.Lock()
	s.authenticated = true
	s.user = state.User
	s.mu.Unlock()

	return &state, nil
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Store) User() *bank.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Transactions() []bank.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]bank.Transaction(nil), s.transactions...)
}

// Language reads the durable preference; missing or unknown values fall
// back to the default language.
func (s *Store) Language(ctx context.Context) bank.Language {
	code, err := s.rdb.Get(ctx, s.languageKey()).Result()
	if err != nil {
		return bank.DefaultLanguage
	}
	return bank.ParseLanguage(code)
}

func (s *Store) SetLanguage(ctx context.Context, lang bank.Language) error {
	return s.rdb.Set(ctx, s.languageKey(), string(lang), 0).Err()
}

func (s *Store) AppendTranscript(ctx context.Context, role, text string) {
	entry, err := json.Marshal(Message{Role: role, Text: text})
	if err != nil {
		return
	}
	if err := s.rdb.RPush(ctx, s.transcriptKey(), entry).Err(); err != nil {
		s.log.Warn("persist transcript entry", zap.Error(err))
	}
}

func (s *Store) Transcript(ctx context.Context) []Message {
	raw, err := s.rdb.LRange(ctx, s.transcriptKey(), 0, -1).Result()
	if err != nil {
		return nil
	}
	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err == nil {
			messages = append(messages, m)
		}
	}
	return messages
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.RLock()
	state := State{Authenticated: s.authenticated, User: s.user}
	s.mu.RUnlock()

	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.snapshotKey(), data, snapshotTTL).Err()
}
