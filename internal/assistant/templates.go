package assistant

import (
	"fmt"
	"strings"

	"github.com/nextgenbank/voicebank/internal/bank"
)

// formatAmount renders rupee amounts the way the templates quote them,
// e.g. 15750.5 -> "15,750.50".
func formatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	intPart := s[:len(s)-3]
	frac := s[len(s)-3:]

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String() + frac
	if neg {
		return "-" + out
	}
	return out
}

func loginPrompt(lang bank.Language) string {
	switch lang {
	case bank.LangHindi:
		return "कृपया अपनी खाता जानकारी तक पहुंचने के लिए लॉगिन करें।"
	case bank.LangGujarati:
		return "કૃપા કરીને તમારી ખાતા માહિતી મેળવવા માટે લૉગિન કરો."
	default:
		return "Please log in to access your account information."
	}
}

func balanceResponse(lang bank.Language, name string, balance float64, accountNum string) string {
	switch lang {
	case bank.LangHindi:
		return fmt.Sprintf("नमस्ते %s, आपका वर्तमान खाता बैलेंस ₹%s है। खाता संख्या %s। क्या मैं आपकी और कोई मदद कर सकता हूं?", name, formatAmount(balance), accountNum)
	case bank.LangGujarati:
		return fmt.Sprintf("નમસ્તે %s, તમારું વર્તમાન ખાતા બેલેન્સ ₹%s છે. ખાતા નંબર %s. શું હું તમને બીજી કોઈ મદદ કરી શકું?", name, formatAmount(balance), accountNum)
	default:
		return fmt.Sprintf("Hello %s, your current account balance is ₹%s. Account number: %s. Is there anything else I can help you with?", name, formatAmount(balance), accountNum)
	}
}

func transactionsResponse(lang bank.Language, name string, list []bank.Transaction) string {
	if len(list) > 3 {
		list = list[:3]
	}
	lines := make([]string, 0, len(list))
	for i, t := range list {
		lines = append(lines, fmt.Sprintf("%d. %s - %s ₹%s - %s",
			i+1, t.Date, strings.ToUpper(string(t.Type)), formatAmount(t.Amount), t.Description))
	}
	txns := strings.Join(lines, "\n")

	switch lang {
	case bank.LangHindi:
		return fmt.Sprintf("नमस्ते %s, यहां आपके हाल के लेनदेन हैं:\n%s\nक्या आप और विवरण चाहते हैं?", name, txns)
	case bank.LangGujarati:
		return fmt.Sprintf("નમસ્તે %s, અહીં તમારા તાજેતરના વ્યવહારો છે:\n%s\nશું તમને વધુ વિગતો જોઈએ છે?", name, txns)
	default:
		return fmt.Sprintf("Hello %s, here are your recent transactions:\n%s\nWould you like more details?", name, txns)
	}
}

func loanResponse(lang bank.Language, name string, loanBalance, interestRate float64) string {
	switch lang {
	case bank.LangHindi:
		return fmt.Sprintf("नमस्ते %s, आपका लोन बैलेंस ₹%s है और ब्याज दर %.2f%% है। क्या मैं आपकी और कोई मदद कर सकता हूं?", name, formatAmount(loanBalance), interestRate)
	case bank.LangGujarati:
		return fmt.Sprintf("નમસ્તે %s, તમારું લોન બેલેન્સ ₹%s છે અને વ્યાજ દર %.2f%% છે. શું હું તમને બીજી કોઈ મદદ કરી શકું?", name, formatAmount(loanBalance), interestRate)
	default:
		return fmt.Sprintf("Hello %s, your loan balance is ₹%s with an interest rate of %.2f%%. Is there anything else I can help you with?", name, formatAmount(loanBalance), interestRate)
	}
}

func creditResponse(lang bank.Language, name string, creditLimit float64) string {
	switch lang {
	case bank.LangHindi:
		return fmt.Sprintf("नमस्ते %s, आपकी क्रेडिट लिमिट ₹%s है। क्या मैं आपकी और कोई मदद कर सकता हूं?", name, formatAmount(creditLimit))
	case bank.LangGujarati:
		return fmt.Sprintf("નમસ્તે %s, તમારી ક્રેડિટ લિમિટ ₹%s છે. શું હું તમને બીજી કોઈ મદદ કરી શકું?", name, formatAmount(creditLimit))
	default:
		return fmt.Sprintf("Hello %s, your credit limit is ₹%s. Is there anything else I can help you with?", name, formatAmount(creditLimit))
	}
}

func transferSuccess(lang bank.Language, name string, r *bank.TransferResult) string {
	switch lang {
	case bank.LangHindi:
		return fmt.Sprintf("सफल! %s, ₹%s %s को ट्रांसफर कर दिया गया है। आपका नया बैलेंस: ₹%s। प्राप्तकर्ता खाता: %s।",
			name, formatAmount(r.Amount), r.RecipientName, formatAmount(r.NewBalance), r.RecipientAccount)
	case bank.LangGujarati:
		return fmt.Sprintf("સફળ! %s, ₹%s %s ને ટ્રાન્સફર કરવામાં આવ્યા છે. તમારું નવું બેલેન્સ: ₹%s. પ્રાપ્તકર્તા ખાતું: %s.",
			name, formatAmount(r.Amount), r.RecipientName, formatAmount(r.NewBalance), r.RecipientAccount)
	default:
		return fmt.Sprintf("Success! %s, ₹%s has been transferred to %s. Your new balance: ₹%s. Recipient account: %s.",
			name, formatAmount(r.Amount), r.RecipientName, formatAmount(r.NewBalance), r.RecipientAccount)
	}
}

func transferRecipientNotFound(lang bank.Language, name string) string {
	switch lang {
	case bank.LangHindi:
		return fmt.Sprintf("क्षमा करें %s, प्राप्तकर्ता नहीं मिला। कृपया सही नाम दोबारा जांचें।", name)
	case bank.LangGujarati:
		return fmt.Sprintf("માફ કરશો %s, પ્રાપ્તકર્તા મળ્યો નહીં. કૃપા કરીને સાચું નામ ફરીથી તપાસો.", name)
	default:
		return fmt.Sprintf("Sorry %s, recipient not found. Please check the recipient name and try again.", name)
	}
}

func transferInsufficient(lang bank.Language, name string, currentBalance float64) string {
	switch lang {
	case bank.LangHindi:
		return fmt.Sprintf("क्षमा करें %s, आपका बैलेंस अपर्याप्त है। वर्तमान बैलेंस: ₹%s।", name, formatAmount(currentBalance))
	case bank.LangGujarati:
		return fmt.Sprintf("માફ કરશો %s, તમારું બેલેન્સ અપૂરતું છે. વર્તમાન બેલેન્સ: ₹%s.", name, formatAmount(currentBalance))
	default:
		return fmt.Sprintf("Sorry %s, insufficient balance. Your current balance is ₹%s.", name, formatAmount(currentBalance))
	}
}

func transferFailed(lang bank.Language, name string) string {
	switch lang {
	case bank.LangHindi:
		return fmt.Sprintf("क्षमा करें %s, ट्रांसफर नहीं हो सका। कृपया दोबारा कोशिश करें।", name)
	case bank.LangGujarati:
		return fmt.Sprintf("માફ કરશો %s, ટ્રાન્સફર થઈ શક્યું નહીં. કૃપા કરીને ફરી પ્રયાસ કરો.", name)
	default:
		return fmt.Sprintf("Sorry %s, transfer failed. Please try again.", name)
	}
}

func genericHelp(lang bank.Language, name string) string {
	switch lang {
	case bank.LangHindi:
		return fmt.Sprintf("नमस्ते %s, मैं आपकी बैंकिंग जरूरतों में मदद के लिए यहां हूं।", name)
	case bank.LangGujarati:
		return fmt.Sprintf("નમસ્તે %s, હું તમારી બેન્કિંગ જરૂરિયાતોમાં મદદ કરવા અહીં છું.", name)
	default:
		return fmt.Sprintf("Hello %s! I'm here to help you with balance inquiries, transaction history, fund transfers, loan information, and credit card details. What would you like to know?", name)
	}
}
