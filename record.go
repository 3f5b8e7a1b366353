package orion

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies which side of the book a record belongs to. A record is
// wholly income or wholly expense, there are no split records.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown record kind: %q", s)
	}
}

// Record is one ledger entry: a sale, an expense, a debt settlement, or a
// generic income/expense line.
//
// Date is kept as the raw string it was recorded with. Add and Update
// reject dates that do not parse, but decoded data files and imports may
// carry dates that no longer do; such records stay in the collection and
// in exports, and are excluded from date-bucketed aggregations.
type Record struct {
	ID            string          `json:"id"`
	Kind          Kind            `json:"type"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Debit         decimal.Decimal `json:"debit"`
	Method        string          `json:"method,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	RecorderName  string          `json:"recorderName,omitempty"`
	RecorderPhone string          `json:"recorderPhone,omitempty"`
}

// Day parses the record's date. ok is false when the date does not parse
// to a valid calendar date.
func (r Record) Day() (day Date, ok bool) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return Date{}, false
	}
	return d, true
}

// Validation failure codes returned from Add and Update.
const (
	InvalidDate     = "InvalidDate"
	InvalidCategory = "InvalidCategory"
	InvalidAmount   = "InvalidAmount"
)

// ValidationError describes why a candidate record was rejected. It carries
// enough detail for a caller to show a specific message.
type ValidationError struct {
	Code   string // one of InvalidDate, InvalidCategory, InvalidAmount
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// validate checks a candidate record against the acceptance rules: a
// parseable date, a non-empty category (after trimming), and an amount
// strictly greater than zero. The debit may be zero.
func validate(candidate Record) error {
	if strings.TrimSpace(candidate.Date) == "" {
		return &ValidationError{Code: InvalidDate, Detail: "date is required"}
	}
	if _, err := ParseDate(candidate.Date); err != nil {
		return &ValidationError{Code: InvalidDate, Detail: err.Error()}
	}
	if strings.TrimSpace(candidate.Category) == "" {
		return &ValidationError{Code: InvalidCategory, Detail: "category is required"}
	}
	if !candidate.Amount.IsPositive() {
		return &ValidationError{Code: InvalidAmount, Detail: fmt.Sprintf("amount must be greater than 0, got %s", candidate.Amount)}
	}
	return nil
}
