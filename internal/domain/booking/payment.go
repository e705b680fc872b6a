package booking

import (
	"regexp"
	"strconv"
	"strings"
)

// Mobile-wallet transaction IDs as printed on BKASH/NAGAD/ROCKET receipts.
var transactionIDPattern = regexp.MustCompile(`^[A-Z0-9]{8,12}$`)

const (
	MethodBkash  = "BKASH"
	MethodNagad  = "NAGAD"
	MethodRocket = "ROCKET"
)

func IsValidTransactionID(id string) bool {
	return transactionIDPattern.MatchString(id)
}

// CoerceAmount turns whatever the client sent as amount_paid into a float.
// Absent or unparseable amounts become 0 instead of failing the booking;
// reconciliation flags zero-amount records downstream.
func CoerceAmount(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}
