package models

// Exchange lifecycle statuses
const (
	ExchangeProposed  = "proposed"
	ExchangeAccepted  = "accepted"
	ExchangeDeclined  = "declined"
	ExchangeCancelled = "cancelled"
	ExchangeCompleted = "completed"
)

// Rate types for offered skills
const (
	RateTypeHourly = "hourly"
	RateTypeSwap   = "swap"
	RateTypeFree   = "free"
)

// Notification types
const (
	NotificationTypeMessage  = "message"
	NotificationTypeExchange = "exchange"
	NotificationTypeReview   = "review"
)

// ValidExchangeStatus reports whether s is a known lifecycle status
func ValidExchangeStatus(s string) bool {
	switch s {
	case ExchangeProposed, ExchangeAccepted, ExchangeDeclined, ExchangeCancelled, ExchangeCompleted:
		return true
	}
	return false
}
