package loan

import (
	"context"
)

type Repository interface {
	FindByID(ctx context.Context, loanID int64) (*Loan, error)

	FindAll(ctx context.Context) ([]Loan, error)

	// Save inserts the loan when its ID is zero and updates the existing row
	// otherwise. The returned loan carries the database-assigned identifier.
	Save(ctx context.Context, l *Loan) (*Loan, error)

	Delete(ctx context.Context, loanID int64) error
}
