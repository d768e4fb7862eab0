package loan

import (
	"context"
	"fmt"
	"log/slog"

	"loan-service/internal/infrastructure/monitoring"
	"loan-service/internal/pkg/apperrors"
)

type LoanService interface {
	AddLoan(ctx context.Context, newLoan *Loan) (*Loan, error)

	UpdateLoan(ctx context.Context, loanID int64, incoming *Loan) (*Loan, error)

	DeleteLoan(ctx context.Context, loanID int64) error

	GetLoan(ctx context.Context, loanID int64) (*Loan, error)

	GetAllLoans(ctx context.Context) ([]Loan, error)
}

type loanServiceImpl struct {
	repo   Repository
	logger *slog.Logger
}

func NewLoanService(r Repository, logger *slog.Logger) LoanService {
	return &loanServiceImpl{repo: r, logger: logger.With("component", "LoanService")}
}

func (s *loanServiceImpl) AddLoan(ctx context.Context, newLoan *Loan) (*Loan, error) {
	if newLoan == nil {
		return nil, fmt.Errorf("%w: loan payload cannot be nil", apperrors.ErrInvalidArgument)
	}
	if !newLoan.Status.Valid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", newLoan.Status))
	}

	s.logger.InfoContext(ctx, "Adding new loan", "customer_id", newLoan.CustomerID, "product_id", newLoan.ProductID)

	created, err := s.repo.Save(ctx, newLoan)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to save new loan", "error", err)
		return nil, err
	}

	monitoring.RecordLoanCreated()
	s.logger.InfoContext(ctx, "Loan added successfully", "loan_id", created.ID)
	return created, nil
}

// UpdateLoan replaces every field of the stored loan with the incoming record,
// preserving the identifier. The lookup and the save are two separate storage
// calls with no isolation between them: a concurrent delete that lands in the
// gap makes the save's UPDATE match nothing and the call returns not-found.
func (s *loanServiceImpl) UpdateLoan(ctx context.Context, loanID int64, incoming *Loan) (*Loan, error) {
	if incoming == nil {
		return nil, fmt.Errorf("%w: loan payload cannot be nil", apperrors.ErrInvalidArgument)
	}
	if loanID <= 0 {
		return nil, fmt.Errorf("%w: invalid loan ID %d", apperrors.ErrInvalidArgument, loanID)
	}
	if !incoming.Status.Valid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", incoming.Status))
	}

	s.logger.InfoContext(ctx, "Updating loan", "loan_id", loanID)

	existing, err := s.repo.FindByID(ctx, loanID)
	if err != nil {
		s.logger.WarnContext(ctx, "Loan lookup for update failed", "loan_id", loanID, "error", err)
		return nil, err
	}

	existing.ReplaceTerms(incoming)

	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to save updated loan", "loan_id", loanID, "error", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Loan updated successfully", "loan_id", updated.ID)
	return updated, nil
}

func (s *loanServiceImpl) DeleteLoan(ctx context.Context, loanID int64) error {
	if loanID <= 0 {
		return fmt.Errorf("%w: invalid loan ID %d", apperrors.ErrInvalidArgument, loanID)
	}

	s.logger.InfoContext(ctx, "Deleting loan", "loan_id", loanID)

	if _, err := s.repo.FindByID(ctx, loanID); err != nil {
		s.logger.WarnContext(ctx, "Loan lookup for delete failed", "loan_id", loanID, "error", err)
		return err
	}

	if err := s.repo.Delete(ctx, loanID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete loan", "loan_id", loanID, "error", err)
		return err
	}

	monitoring.RecordLoanDeleted()
	s.logger.InfoContext(ctx, "Loan deleted successfully", "loan_id", loanID)
	return nil
}

func (s *loanServiceImpl) GetLoan(ctx context.Context, loanID int64) (*Loan, error) {
	if loanID <= 0 {
		return nil, fmt.Errorf("%w: invalid loan ID %d", apperrors.ErrInvalidArgument, loanID)
	}

	s.logger.InfoContext(ctx, "Retrieving loan", "loan_id", loanID)

	found, err := s.repo.FindByID(ctx, loanID)
	if err != nil {
		s.logger.WarnContext(ctx, "Loan lookup failed", "loan_id", loanID, "error", err)
		return nil, err
	}
	return found, nil
}

func (s *loanServiceImpl) GetAllLoans(ctx context.Context) ([]Loan, error) {
	s.logger.InfoContext(ctx, "Retrieving all loans")

	loans, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to retrieve loans", "error", err)
		return nil, err
	}
	return loans, nil
}
