package delivery

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nextgenbank/voicebank/internal/assistant"
	"github.com/nextgenbank/voicebank/internal/bank"
	"github.com/nextgenbank/voicebank/internal/infra"
	"github.com/nextgenbank/voicebank/internal/speech"
)

type VoiceBankingHandler struct {
	assistant assistant.Service
	stt       speech.STTClient
	archive   infra.AudioArchive
	log       *zap.Logger
}

// stt and archive may be nil: text-only queries keep working without
// speech credentials.
func NewVoiceBankingHandler(svc assistant.Service, stt speech.STTClient, archive infra.AudioArchive, log *zap.Logger) *VoiceBankingHandler {
	return &VoiceBankingHandler{assistant: svc, stt: stt, archive: archive, log: log}
}

type voiceBankingRequest struct {
	UserInput string  `json:"user_input"`
	AudioData string  `json:"audio_data"`
	UserID    *string `json:"user_id"`
	ThreadID  string  `json:"thread_id"`
	Language  string  `json:"language"`
}

func (h *VoiceBankingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req voiceBankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if req.ThreadID == "" {
		req.ThreadID = "session_" + uuid.NewString()
	}
	lang := bank.ParseLanguage(req.Language)

	userInput := req.UserInput
	if req.AudioData != "" {
		transcript, err := h.transcribe(r, req, lang)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid audio data: " + err.Error()})
			return
		}
		userInput = transcript
	}

	if strings.TrimSpace(userInput) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No user input or audio provided"})
		return
	}

	reply, err := h.assistant.Answer(r.Context(), assistant.Request{
		UserInput: userInput,
		UserID:    req.UserID,
		ThreadID:  req.ThreadID,
		Language:  lang,
	})
	if err != nil {
		h.log.Error("voice banking query failed", zap.String("thread", req.ThreadID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func (h *VoiceBankingHandler) transcribe(r *http.Request, req voiceBankingRequest, lang bank.Language) (string, error) {
	if h.stt == nil {
		return "", errSpeechUnavailable
	}

	// data-URL prefix is optional
	raw := req.AudioData
	if i := strings.IndexByte(raw, ','); i >= 0 {
		raw = raw[i+1:]
	}
	audio, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", err
	}

	if h.archive != nil {
		key := "voice/" + req.ThreadID + ".wav"
		if url, err := h.archive.Store(r.Context(), key, audio, "audio/wav"); err != nil {
			h.log.Warn("audio archive failed", zap.Error(err))
		} else {
			h.log.Info("voice clip archived", zap.String("url", url))
		}
	}

	return h.stt.Transcribe(r.Context(), bytes.NewReader(audio), lang)
}
