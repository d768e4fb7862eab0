package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"loan-service/internal/config"
	"loan-service/internal/domain/loan"
)

type stubLoanService struct {
	loans []loan.Loan
}

func (s *stubLoanService) AddLoan(ctx context.Context, newLoan *loan.Loan) (*loan.Loan, error) {
	created := *newLoan
	created.ID = int64(len(s.loans) + 1)
	s.loans = append(s.loans, created)
	return &created, nil
}

func (s *stubLoanService) UpdateLoan(ctx context.Context, loanID int64, incoming *loan.Loan) (*loan.Loan, error) {
	updated := *incoming
	updated.ID = loanID
	return &updated, nil
}

func (s *stubLoanService) DeleteLoan(ctx context.Context, loanID int64) error { return nil }

func (s *stubLoanService) GetLoan(ctx context.Context, loanID int64) (*loan.Loan, error) {
	return &loan.Loan{ID: loanID}, nil
}

func (s *stubLoanService) GetAllLoans(ctx context.Context) ([]loan.Loan, error) {
	return s.loans, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:      8080,
			RateLimit: config.RateLimitConfig{Enabled: false},
		},
		Metrics: config.MetricsConfig{Path: "/metrics"},
	}
}

func TestSetupRouter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := SetupRouter(&stubLoanService{}, testConfig(), logger)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health endpoint", http.MethodGet, "/health", http.StatusOK},
		{"metrics endpoint", http.MethodGet, "/metrics", http.StatusOK},
		{"list loans route", http.MethodGet, "/api/v1/loans", http.StatusOK},
		{"get loan route", http.MethodGet, "/api/v1/loans/12", http.StatusOK},
		{"delete loan route", http.MethodDelete, "/api/v1/loans/12", http.StatusNoContent},
		{"unknown route", http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
