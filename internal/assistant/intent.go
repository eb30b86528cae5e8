package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

type classification struct {
	Intent     Intent
	Confidence float64
	Entities   map[string]any
}

const intentSystemPrompt = "You are an intent classifier for a banking assistant. Respond with JSON only."

const intentPromptTemplate = `Analyze the user's request and identify:
1. Primary intent (one of: check_balance, view_transactions, transfer_funds, make_payment, loan_inquiry, credit_inquiry, general_question)
2. Confidence level (0.0 to 1.0)
3. Entities (amounts, dates, account numbers, recipient)

User request: %q

Respond in JSON format:
{"intent": "<intent_name>", "confidence": <float>, "entities": {}}`

var (
	amountPrefixRe = regexp.MustCompile(`(?:₹|rupees?|rs\.?)\s*(\d[\d,]*(?:\.\d+)?)`)
	amountSuffixRe = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*(?:rupees?|rs\.?|₹)`)
	amountBareRe   = regexp.MustCompile(`\b(\d[\d,]*(?:\.\d+)?)\b`)
	recipientRe    = regexp.MustCompile(`to\s+([a-zA-Z]+)`)
)

// Keyword tables include the Hindi and Gujarati words the assistant
// understands without the LLM.
var intentKeywords = []struct {
	intent     Intent
	confidence float64
	words      []string
}{
	{IntentCheckBalance, 0.9, []string{"balance", "बैलेंस", "બેલેન્સ"}},
	{IntentViewTransactions, 0.9, []string{"transaction", "history", "लेनदेन", "વ્યવહાર"}},
	{IntentTransferFunds, 0.8, []string{"transfer", "send", "pay", "भेजें", "મોકલો"}},
	{IntentLoanInquiry, 0.9, []string{"loan", "लोन", "લોન", "emi"}},
	{IntentCreditInquiry, 0.9, []string{"credit", "card", "क्रेडिट", "ક્રેડિટ"}},
}

// classify asks the completion backend for an intent; any failure falls
// back to keyword matching so classification itself never errors.
func (s *service) classify(ctx context.Context, text string) classification {
	if s.llm != nil {
		raw, err := s.llm.Complete(ctx, intentSystemPrompt, fmt.Sprintf(intentPromptTemplate, text))
		if err == nil {
			var parsed struct {
				Intent     string         `json:"intent"`
				Confidence float64        `json:"confidence"`
				Entities   map[string]any `json:"entities"`
			}
			if jsonErr := json.Unmarshal([]byte(raw), &parsed); jsonErr == nil && parsed.Intent != "" {
				return classification{
					Intent:     Intent(parsed.Intent),
					Confidence: parsed.Confidence,
					Entities:   parsed.Entities,
				}
			}
		}
	}
	return classifyByKeywords(text)
}

func classifyByKeywords(text string) classification {
	lower := strings.ToLower(text)

	result := classification{
		Intent:     IntentGeneralQuestion,
		Confidence: 0.7,
		Entities:   map[string]any{},
	}

	for _, row := range intentKeywords {
		for _, w := range row.words {
			if strings.Contains(lower, w) {
				result.Intent = row.intent
				result.Confidence = row.confidence
				if row.intent == IntentTransferFunds {
					extractTransferEntities(lower, result.Entities)
				}
				return result
			}
		}
	}
	return result
}

func extractTransferEntities(lower string, entities map[string]any) {
	m := amountPrefixRe.FindStringSubmatch(lower)
	if m == nil {
		m = amountSuffixRe.FindStringSubmatch(lower)
	}
	if m == nil {
		m = amountBareRe.FindStringSubmatch(lower)
	}
	if m != nil {
		entities["amount"] = strings.ReplaceAll(m[1], ",", "")
	}

	if m := recipientRe.FindStringSubmatch(lower); m != nil {
		name := m[1]
		entities["recipient"] = strings.ToUpper(name[:1]) + name[1:]
	}
}
