package payment

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

// FieldErrors maps form field names to inline messages. An empty map means
// the submission may proceed.
type FieldErrors map[string]string

func (e FieldErrors) OK() bool {
	return len(e) == 0
}

// ValidateSubmit checks the form before any charge is issued. A rejected
// form never reaches the gateway; the caller stays on the payment step.
func ValidateSubmit(req SubmitRequest, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if !req.Method.IsValid() {
		errs["method"] = "Unknown payment method."
		return errs
	}

	switch req.Method {
	case MethodCard:
		if req.Card == nil {
			errs["card"] = "Card details are required."
			return errs
		}
		validateCard(*req.Card, now, errs)
	case MethodUPIID:
		if !strings.Contains(req.UPIID, "@") {
			errs["upi_id"] = "Enter a valid UPI ID."
		}
	case MethodNetBanking:
		if strings.TrimSpace(req.Bank) == "" {
			errs["bank"] = "Select your bank."
		}
	}

	return errs
}

func validateCard(card CardForm, now time.Time, errs FieldErrors) {
	number := strings.ReplaceAll(card.Number, " ", "")
	if len(number) != 16 || !digitsOnly.MatchString(number) {
		errs["card_number"] = "Card number must be 16 digits."
	}

	if len(strings.TrimSpace(card.Name)) < 3 {
		errs["card_name"] = "Cardholder name is required."
	}

	if !expiryPattern.MatchString(card.Expiry) {
		errs["expiry_date"] = "Invalid format. Use MM/YY."
	} else if cardExpired(card.Expiry, now) {
		errs["expiry_date"] = "Card has expired."
	}

	if len(card.CVV) < 3 || len(card.CVV) > 4 || !digitsOnly.MatchString(card.CVV) {
		errs["cvv"] = "CVV must be 3 or 4 digits."
	}
}

// cardExpired compares at month granularity: a card is usable through the
// last day of its expiry month.
func cardExpired(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])
	year += 2000

	if year != now.Year() {
		return year < now.Year()
	}
	return month < int(now.Month())
}
