package bank

// Language selects the UI/speech language of the assistant.
type Language string

const (
	LangEnglish  Language = "en"
	LangHindi    Language = "hi"
	LangGujarati Language = "gu"
)

// DefaultLanguage is used whenever no preference is stored or the stored
// value is not one of the supported codes.
const DefaultLanguage = LangEnglish

func ParseLanguage(code string) Language {
	switch Language(code) {
	case LangHindi:
		return LangHindi
	case LangGujarati:
		return LangGujarati
	default:
		return DefaultLanguage
	}
}

type UserProfile struct {
	UserID        string  `json:"user_id"`
	Name          string  `json:"name"`
	AccountNumber string  `json:"account_number"`
	Balance       float64 `json:"balance"`
	Phone         string  `json:"phone,omitempty"`
	Email         string  `json:"email,omitempty"`
	LoanBalance   float64 `json:"loan_balance,omitempty"`
	InterestRate  float64 `json:"interest_rate,omitempty"`
	CreditLimit   float64 `json:"credit_limit,omitempty"`
}

// FirstName is what the assistant uses to address the customer.
func (u UserProfile) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}

type TransactionType string

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

type Transaction struct {
	Date        string          `json:"date"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Balance     float64         `json:"balance,omitempty"`
}
