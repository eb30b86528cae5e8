package assistant

type knowledgeDoc struct {
	Topic   string
	Content string
}

var knowledgeBase = []knowledgeDoc{
	{
		Topic:   "interest_rates",
		Content: "Current savings account interest rate is 2.5% per annum. Home loan rates start at 7.25% for qualified borrowers with flexible repayment options.",
	},
	{
		Topic:   "credit_cards",
		Content: "We offer credit cards with 0% introductory interest for 12 months, rewards programs, cashback benefits, and no annual fees for the first year.",
	},
	{
		Topic:   "transfer_limits",
		Content: "Daily NEFT/RTGS transfer limit is ₹5,00,000 for verified accounts. IMPS transfers have a limit of ₹2,00,000. International transfers may take 2-5 business days.",
	},
}

var intentTopics = map[Intent][]string{
	IntentLoanInquiry:   {"interest_rates"},
	IntentCreditInquiry: {"credit_cards"},
	IntentTransferFunds: {"transfer_limits"},
}

func retrieveContext(intent Intent) []string {
	topics := intentTopics[intent]
	var docs []string
	for _, doc := range knowledgeBase {
		for _, t := range topics {
			if doc.Topic == t {
				docs = append(docs, doc.Content)
			}
		}
	}
	return docs
}
