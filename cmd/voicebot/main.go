package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nextgenbank/voicebank/internal/bank"
	"github.com/nextgenbank/voicebank/internal/capture"
	"github.com/nextgenbank/voicebank/internal/dispatch"
	"github.com/nextgenbank/voicebank/internal/session"
	"github.com/nextgenbank/voicebank/internal/speech"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// terminalSurface renders assistant output to stdout.
type terminalSurface struct{}

func (terminalSurface) AppendMessage(role, text string) {
	fmt.Printf("[%s] %s\n", role, text)
}

func (terminalSurface) SetStatus(text string) {
	fmt.Printf("-- %s\n", text)
}

func (terminalSurface) RenderBalance(amount float64) {
	fmt.Printf("== balance: %.2f\n", amount)
}

func (terminalSurface) RenderTransactions(list []bank.Transaction) {
	for _, t := range list {
		fmt.Printf("== %s %s %.2f %s\n", t.Date, t.Type, t.Amount, t.Description)
	}
}

// silentSpeaker stands in when no TTS key is configured.
type silentSpeaker struct{}

func (silentSpeaker) Speak(string, bank.Language) {}

func main() {

	_ = godotenv.Load()

	gatewayURL := os.Getenv("GATEWAY_URL")
	if gatewayURL == "" {
		gatewayURL = "http://localhost:8000"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	sessionID := os.Getenv("VOICEBOT_SESSION")
	if sessionID == "" {
		sessionID = "local"
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}

	store := session.NewStore(rdb, sessionID, baseLogger)
	client := dispatch.NewClient(gatewayURL, &http.Client{Timeout: 35 * time.Second})
	surface := terminalSurface{}

	// =========================================================================
	// SPEECH
	// =========================================================================

	var speaker dispatch.Speaker = silentSpeaker{}
	if os.Getenv("ELEVENLABS_API_KEY") != "" {
		audioDir := os.Getenv("VOICEBOT_AUDIO_DIR")
		if audioDir == "" {
			audioDir = "audio"
		}
		sink, err := speech.NewFileSink(audioDir)
		if err != nil {
			log.Fatalf("failed to init audio sink: %v", err)
		}
		speaker = speech.NewSpeaker(
			speech.NewElevenLabsClient(),
			sink,
			os.Getenv("ELEVENLABS_VOICE_ID"),
			baseLogger,
		)
	} else {
		baseLogger.Warn("ELEVENLABS_API_KEY not set, replies will not be spoken")
	}

	var stt speech.STTClient
	if os.Getenv("OPENAI_API_KEY") != "" {
		stt = speech.NewWhisperClient()
	}
	mic := capture.NewService(stt, surface.SetStatus)

	svc := dispatch.NewService(client, store, speaker, surface, baseLogger)

	// =========================================================================
	// SESSION RESTORE
	// =========================================================================

	bg := context.Background()
	if state, err := store.Restore(bg); err == nil && state != nil && state.Authenticated && state.User != nil {
		fmt.Printf("welcome back, %s\n", state.User.FirstName())
		if list, err := client.Transactions(bg, state.User.UserID); err != nil {
			baseLogger.Warn("hydrate transactions", zap.Error(err))
		} else if len(list) > 0 {
			store.ApplyTransactions(list)
			surface.RenderTransactions(store.Transactions())
		}
	}

	surface.SetStatus("Ready to help")
	runLoop(bg, svc, store, client, mic, surface)
}

func runLoop(
	ctx context.Context,
	svc *dispatch.Service,
	store *session.Store,
	client *dispatch.Client,
	mic *capture.Service,
	surface terminalSurface,
) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "quit" || line == "exit":
			return

		case strings.HasPrefix(line, "login "):
			handleLogin(ctx, store, client, surface, line)

		case line == "logout":
			if err := store.Logout(ctx); err != nil {
				fmt.Println("logout failed:", err)
				continue
			}
			fmt.Println("logged out")

		case strings.HasPrefix(line, "lang "):
			code := strings.TrimSpace(strings.TrimPrefix(line, "lang "))
			if code != "en" && code != "hi" && code != "gu" {
				fmt.Println("supported languages: en, hi, gu")
				continue
			}
			if err := store.SetLanguage(ctx, bank.ParseLanguage(code)); err != nil {
				fmt.Println("language not saved:", err)
			}

		case strings.HasPrefix(line, "say "):
			handleClip(ctx, svc, store, mic, strings.TrimSpace(strings.TrimPrefix(line, "say ")))

		case line != "":
			svc.Handle(ctx, line)
		}
	}
}

func handleLogin(
	ctx context.Context,
	store *session.Store,
	client *dispatch.Client,
	surface terminalSurface,
	line string,
) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		fmt.Println("usage: login <username> <password>")
		return
	}

	profile, _, err := client.Authenticate(ctx, parts[1], parts[2])
	if errors.Is(err, dispatch.ErrAuthFailed) {
		fmt.Println("invalid credentials")
		return
	}
	if err != nil {
		fmt.Println("login failed:", err)
		return
	}

	if err := store.Login(ctx, *profile); err != nil {
		fmt.Println("session not saved:", err)
		return
	}
	fmt.Printf("welcome, %s\n", profile.FirstName())

	if list, err := client.Transactions(ctx, profile.UserID); err == nil && len(list) > 0 {
		store.ApplyTransactions(list)
		surface.RenderTransactions(store.Transactions())
	}
}

func handleClip(
	ctx context.Context,
	svc *dispatch.Service,
	store *session.Store,
	mic *capture.Service,
	path string,
) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println("open clip:", err)
		return
	}
	defer f.Close()

	text, err := mic.Capture(ctx, f, store.Language(ctx))
	if errors.Is(err, capture.ErrUnsupported) {
		fmt.Println("voice input requires OPENAI_API_KEY")
		return
	}
	if errors.Is(err, capture.ErrAlreadyListening) {
		fmt.Println("already listening")
		return
	}
	if err != nil {
		fmt.Println("transcription failed:", err)
		return
	}
	svc.Handle(ctx, text)
}
