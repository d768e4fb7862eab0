package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusClosed    Status = "CLOSED"
	StatusDefaulted Status = "DEFAULTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusClosed, StatusDefaulted:
		return true
	}
	return false
}

// Loan is the persisted record representing one loan's terms and status.
// ID is assigned by the database on insert and never changes afterwards.
type Loan struct {
	ID                   int64
	StartDate            time.Time
	LoanEndDate          time.Time
	TotalLoanAmount      decimal.Decimal
	LoanInterestRate     decimal.Decimal
	AmountReceived       decimal.Decimal
	TargetCompletionDate time.Time
	PayOffDate           *time.Time
	DailyRate            decimal.Decimal
	ProductID            string
	CustomerID           string
	Status               Status
}

// ReplaceTerms overwrites every field of the loan from the incoming record,
// keeping the identifier. Update semantics are whole-record replacement, not
// merge: a nil PayOffDate in the incoming record clears the stored one.
func (l *Loan) ReplaceTerms(incoming *Loan) {
	l.StartDate = incoming.StartDate
	l.LoanEndDate = incoming.LoanEndDate
	l.TotalLoanAmount = incoming.TotalLoanAmount
	l.LoanInterestRate = incoming.LoanInterestRate
	l.AmountReceived = incoming.AmountReceived
	l.TargetCompletionDate = incoming.TargetCompletionDate
	l.PayOffDate = incoming.PayOffDate
	l.DailyRate = incoming.DailyRate
	l.ProductID = incoming.ProductID
	l.CustomerID = incoming.CustomerID
	l.Status = incoming.Status
}
