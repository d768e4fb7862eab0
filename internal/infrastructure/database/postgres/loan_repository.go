package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"loan-service/internal/domain/loan"
	"loan-service/internal/infrastructure/monitoring"
	"loan-service/internal/pkg/apperrors"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

const loanColumns = "loan_id, start_date, loan_end_date, total_loan_amount, loan_interest_rate, amount_received, target_completion_date, pay_off_date, daily_rate, product_id, customer_id, status"

const (
	sqlFindLoanByID = "SELECT " + loanColumns + " FROM loans WHERE loan_id = $1"

	sqlFindAllLoans = "SELECT " + loanColumns + " FROM loans ORDER BY loan_id"

	sqlInsertLoan = "INSERT INTO loans (start_date, loan_end_date, total_loan_amount, loan_interest_rate, amount_received, target_completion_date, pay_off_date, daily_rate, product_id, customer_id, status) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING " + loanColumns

	sqlUpdateLoan = "UPDATE loans SET start_date = $2, loan_end_date = $3, total_loan_amount = $4, loan_interest_rate = $5, amount_received = $6, target_completion_date = $7, pay_off_date = $8, daily_rate = $9, product_id = $10, customer_id = $11, status = $12 " +
		"WHERE loan_id = $1 RETURNING " + loanColumns

	sqlDeleteLoan = "DELETE FROM loans WHERE loan_id = $1"
)

type LoanRepository struct {
	db     DBPool
	logger *slog.Logger
}

func NewLoanRepository(db DBPool, logger *slog.Logger) *LoanRepository {
	return &LoanRepository{db: db, logger: logger.With("component", "LoanRepository")}
}

var _ loan.Repository = (*LoanRepository)(nil)

func scanLoan(row pgx.Row) (*loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(
		&l.ID, &l.StartDate, &l.LoanEndDate, &l.TotalLoanAmount, &l.LoanInterestRate,
		&l.AmountReceived, &l.TargetCompletionDate, &l.PayOffDate, &l.DailyRate,
		&l.ProductID, &l.CustomerID, &l.Status,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func observe(queryName string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery(queryName, status, time.Since(start))
}

func (r *LoanRepository) FindByID(ctx context.Context, loanID int64) (l *loan.Loan, err error) {
	start := time.Now()
	defer func() { observe("find_loan_by_id", start, err) }()

	l, err = scanLoan(r.db.QueryRow(ctx, sqlFindLoanByID, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: loan with ID %d not found", apperrors.ErrNotFound, loanID)
		}
		r.logger.ErrorContext(ctx, "Failed to query loan", "loan_id", loanID, "error", err)
		return nil, fmt.Errorf("%w: failed to query loan %d: %w", apperrors.ErrDatabase, loanID, err)
	}
	return l, nil
}

func (r *LoanRepository) FindAll(ctx context.Context) (loans []loan.Loan, err error) {
	start := time.Now()
	defer func() { observe("find_all_loans", start, err) }()

	rows, err := r.db.Query(ctx, sqlFindAllLoans)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query loans", "error", err)
		return nil, fmt.Errorf("%w: failed to query loans: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	loans = make([]loan.Loan, 0)
	for rows.Next() {
		l, scanErr := scanLoan(rows)
		if scanErr != nil {
			r.logger.ErrorContext(ctx, "Failed to scan loan row", "error", scanErr)
			return nil, fmt.Errorf("%w: failed to scan loan row: %w", apperrors.ErrDatabase, scanErr)
		}
		loans = append(loans, *l)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: loan row iteration failed: %w", apperrors.ErrDatabase, rowsErr)
	}
	return loans, nil
}

func (r *LoanRepository) Save(ctx context.Context, l *loan.Loan) (*loan.Loan, error) {
	if l.ID == 0 {
		return r.insert(ctx, l)
	}
	return r.update(ctx, l)
}

func (r *LoanRepository) insert(ctx context.Context, l *loan.Loan) (saved *loan.Loan, err error) {
	start := time.Now()
	defer func() { observe("insert_loan", start, err) }()

	saved, err = scanLoan(r.db.QueryRow(ctx, sqlInsertLoan,
		l.StartDate, l.LoanEndDate, l.TotalLoanAmount, l.LoanInterestRate, l.AmountReceived,
		l.TargetCompletionDate, l.PayOffDate, l.DailyRate, l.ProductID, l.CustomerID, l.Status,
	))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert loan", "error", err)
		return nil, fmt.Errorf("%w: failed to insert loan: %w", apperrors.ErrDatabase, err)
	}
	r.logger.InfoContext(ctx, "Loan created in DB", "loan_id", saved.ID)
	return saved, nil
}

func (r *LoanRepository) update(ctx context.Context, l *loan.Loan) (saved *loan.Loan, err error) {
	start := time.Now()
	defer func() { observe("update_loan", start, err) }()

	saved, err = scanLoan(r.db.QueryRow(ctx, sqlUpdateLoan,
		l.ID, l.StartDate, l.LoanEndDate, l.TotalLoanAmount, l.LoanInterestRate, l.AmountReceived,
		l.TargetCompletionDate, l.PayOffDate, l.DailyRate, l.ProductID, l.CustomerID, l.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: loan with ID %d not found", apperrors.ErrNotFound, l.ID)
		}
		r.logger.ErrorContext(ctx, "Failed to update loan", "loan_id", l.ID, "error", err)
		return nil, fmt.Errorf("%w: failed to update loan %d: %w", apperrors.ErrDatabase, l.ID, err)
	}
	r.logger.InfoContext(ctx, "Loan updated in DB", "loan_id", saved.ID)
	return saved, nil
}

func (r *LoanRepository) Delete(ctx context.Context, loanID int64) (err error) {
	start := time.Now()
	defer func() { observe("delete_loan", start, err) }()

	tag, err := r.db.Exec(ctx, sqlDeleteLoan, loanID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete loan", "loan_id", loanID, "error", err)
		return fmt.Errorf("%w: failed to delete loan %d: %w", apperrors.ErrDatabase, loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan with ID %d not found", apperrors.ErrNotFound, loanID)
	}
	r.logger.InfoContext(ctx, "Loan deleted from DB", "loan_id", loanID)
	return nil
}
