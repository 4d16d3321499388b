package payment

// Method is the user-facing payment instrument.
type Method string

const (
	MethodGPay       Method = "gpay"
	MethodPhonePe    Method = "phonepe"
	MethodPaytm      Method = "paytm"
	MethodUPIID      Method = "upi_id"
	MethodNetBanking Method = "netbanking"
	MethodCard       Method = "card"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodGPay, MethodPhonePe, MethodPaytm, MethodUPIID, MethodNetBanking, MethodCard:
		return true
	}
	return false
}

// CardForm is the credit/debit card entry. Number may contain grouping
// spaces; validation strips them before counting digits.
type CardForm struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

// SubmitRequest is everything the payment step collects from the user.
type SubmitRequest struct {
	Method Method    `json:"method" binding:"required"`
	Card   *CardForm `json:"card,omitempty"`
	UPIID  string    `json:"upi_id,omitempty"`
	Bank   string    `json:"bank,omitempty"`
}
