package dispatch

import "strings"

// FallbackBalance is the illustrative figure quoted by the offline
// balance rule. Callers decide whether to apply it to state; the
// reference behavior does.
const FallbackBalance = 15750.50

// Reply is one canned fallback answer. Balance is set only when the
// balance rule fired.
type Reply struct {
	Text    string
	Balance *float64
}

type fallbackRule struct {
	keywords []string
	text     string
	balance  bool
}

// First matching rule wins; priority order matters.
var fallbackRules = []fallbackRule{
	{
		keywords: []string{"balance"},
		text:     "Your current account balance is ₹15,750.50. Is there anything else I can help you with?",
		balance:  true,
	},
	{
		keywords: []string{"transaction", "history"},
		text:     "Here are your recent transactions: You spent ₹150 at a grocery store on Nov 20, received salary deposit of ₹3,000 on Nov 18, and spent ₹85.25 at a restaurant on Nov 15.",
	},
	{
		keywords: []string{"transfer"},
		text:     "To transfer funds, I'll need the recipient's account details and the amount. Please tell me the account number and amount you'd like to transfer.",
	},
	{
		keywords: []string{"loan"},
		text:     "Your current home loan balance is ₹1,20,000 at 3.5% interest rate. Your next EMI of ₹8,500 is due on December 5th.",
	},
	{
		keywords: []string{"credit"},
		text:     "Your credit card limit is ₹50,000 with ₹42,350 available credit. Would you like to know about recent transactions or payment due dates?",
	},
}

const fallbackDefault = "I'm here to help you with balance inquiries, transactions, transfers, loans, and credit cards. What would you like to know?"

// Fallback answers offline when the gateway is unreachable. Pure
// function: case-insensitive keyword match over the rule list.
func Fallback(text string) Reply {
	lower := strings.ToLower(text)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				reply := Reply{Text: rule.text}
				if rule.balance {
					b := FallbackBalance
					reply.Balance = &b
				}
				return reply
			}
		}
	}
	return Reply{Text: fallbackDefault}
}
