package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-service/internal/domain/loan"
)

func validRequest() LoanRequest {
	now := today()
	return LoanRequest{
		StartDate:            now.Format(dateLayout),
		LoanEndDate:          now.AddDate(0, 0, 30).Format(dateLayout),
		TotalLoanAmount:      decimal.NewFromFloat(10000.00),
		LoanInterestRate:     decimal.NewFromFloat(5.5),
		AmountReceived:       decimal.NewFromFloat(2000.00),
		TargetCompletionDate: now.AddDate(0, 1, 0).Format(dateLayout),
		DailyRate:            decimal.NewFromFloat(10.00),
		ProductID:            "PROD123",
		CustomerID:           "CUST123",
		Status:               "ACTIVE",
	}
}

func violatedFields(violations []FieldViolation) []string {
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestLoanRequestValidate(t *testing.T) {
	t.Run("valid request has no violations", func(t *testing.T) {
		req := validRequest()
		assert.Nil(t, req.Validate())
	})

	t.Run("valid request with future payoff date", func(t *testing.T) {
		req := validRequest()
		req.PayOffDate = today().AddDate(0, 0, 1).Format(dateLayout)
		assert.Nil(t, req.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(r *LoanRequest)
		field   string
		message string
	}{
		{
			name:    "zero total loan amount",
			mutate:  func(r *LoanRequest) { r.TotalLoanAmount = decimal.Zero },
			field:   "totalLoanAmount",
			message: "total loan amount must be greater than 0",
		},
		{
			name:    "negative total loan amount",
			mutate:  func(r *LoanRequest) { r.TotalLoanAmount = decimal.NewFromFloat(-1) },
			field:   "totalLoanAmount",
			message: "total loan amount must be greater than 0",
		},
		{
			name:    "interest rate above 100",
			mutate:  func(r *LoanRequest) { r.LoanInterestRate = decimal.NewFromFloat(100.5) },
			field:   "loanInterestRate",
			message: "loan interest rate cannot exceed 100",
		},
		{
			name:    "zero interest rate",
			mutate:  func(r *LoanRequest) { r.LoanInterestRate = decimal.Zero },
			field:   "loanInterestRate",
			message: "loan interest rate must be greater than 0",
		},
		{
			name:    "negative amount received",
			mutate:  func(r *LoanRequest) { r.AmountReceived = decimal.NewFromFloat(-0.01) },
			field:   "amountReceived",
			message: "amount received cannot be negative",
		},
		{
			name:    "negative daily rate",
			mutate:  func(r *LoanRequest) { r.DailyRate = decimal.NewFromFloat(-10) },
			field:   "dailyRate",
			message: "daily rate cannot be negative",
		},
		{
			name:    "missing start date",
			mutate:  func(r *LoanRequest) { r.StartDate = "" },
			field:   "startDate",
			message: "start date is required",
		},
		{
			name:    "start date in the future",
			mutate:  func(r *LoanRequest) { r.StartDate = today().AddDate(0, 0, 1).Format(dateLayout) },
			field:   "startDate",
			message: "start date must be in the past or present",
		},
		{
			name:    "malformed start date",
			mutate:  func(r *LoanRequest) { r.StartDate = "15/01/2024" },
			field:   "startDate",
			message: "startDate must be an ISO-8601 date (YYYY-MM-DD)",
		},
		{
			name:    "loan end date in the past",
			mutate:  func(r *LoanRequest) { r.LoanEndDate = today().AddDate(0, 0, -1).Format(dateLayout) },
			field:   "loanEndDate",
			message: "loan end date must be in the future or present",
		},
		{
			name:    "target completion date in the past",
			mutate:  func(r *LoanRequest) { r.TargetCompletionDate = today().AddDate(0, -1, 0).Format(dateLayout) },
			field:   "targetCompletionDate",
			message: "target completion date must be in the future or present",
		},
		{
			name:    "payoff date today is not strictly future",
			mutate:  func(r *LoanRequest) { r.PayOffDate = today().Format(dateLayout) },
			field:   "payOffDate",
			message: "payoff date must be in the future",
		},
		{
			name:    "blank product ID",
			mutate:  func(r *LoanRequest) { r.ProductID = "   " },
			field:   "productId",
			message: "product ID cannot be blank",
		},
		{
			name:    "missing customer ID",
			mutate:  func(r *LoanRequest) { r.CustomerID = "" },
			field:   "customerId",
			message: "customer ID cannot be blank",
		},
		{
			name:    "unknown status",
			mutate:  func(r *LoanRequest) { r.Status = "PENDING" },
			field:   "status",
			message: "status must be one of ACTIVE, CLOSED, DEFAULTED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			violations := req.Validate()
			require.Len(t, violations, 1)
			assert.Equal(t, tt.field, violations[0].Field)
			assert.Equal(t, tt.message, violations[0].Message)
		})
	}

	t.Run("multiple invalid fields yield one violation each", func(t *testing.T) {
		req := validRequest()
		req.TotalLoanAmount = decimal.Zero
		req.ProductID = ""
		req.Status = "BOGUS"

		violations := req.Validate()
		assert.ElementsMatch(t,
			[]string{"totalLoanAmount", "productId", "status"},
			violatedFields(violations),
		)
	})
}

func TestLoanRequestToDomain(t *testing.T) {
	req := validRequest()
	req.PayOffDate = today().AddDate(1, 0, 0).Format(dateLayout)

	entity, err := req.ToDomain()
	require.NoError(t, err)

	assert.Zero(t, entity.ID)
	assert.Equal(t, req.StartDate, entity.StartDate.Format(dateLayout))
	assert.Equal(t, req.LoanEndDate, entity.LoanEndDate.Format(dateLayout))
	assert.True(t, req.TotalLoanAmount.Equal(entity.TotalLoanAmount))
	assert.True(t, req.LoanInterestRate.Equal(entity.LoanInterestRate))
	assert.True(t, req.AmountReceived.Equal(entity.AmountReceived))
	assert.Equal(t, req.TargetCompletionDate, entity.TargetCompletionDate.Format(dateLayout))
	require.NotNil(t, entity.PayOffDate)
	assert.Equal(t, req.PayOffDate, entity.PayOffDate.Format(dateLayout))
	assert.True(t, req.DailyRate.Equal(entity.DailyRate))
	assert.Equal(t, req.ProductID, entity.ProductID)
	assert.Equal(t, req.CustomerID, entity.CustomerID)
	assert.Equal(t, loan.StatusActive, entity.Status)
}

func TestLoanRequestToDomainOmittedPayOffDate(t *testing.T) {
	req := validRequest()

	entity, err := req.ToDomain()
	require.NoError(t, err)
	assert.Nil(t, entity.PayOffDate)
}

// Request -> entity -> response must be lossless for every shared field.
func TestLoanMappingRoundTrip(t *testing.T) {
	req := validRequest()
	req.PayOffDate = today().AddDate(0, 6, 0).Format(dateLayout)

	entity, err := req.ToDomain()
	require.NoError(t, err)
	entity.ID = 77

	resp := NewLoanResponse(entity)

	assert.Equal(t, int64(77), resp.LoanID)
	assert.Equal(t, req.StartDate, resp.StartDate)
	assert.Equal(t, req.LoanEndDate, resp.LoanEndDate)
	assert.True(t, req.TotalLoanAmount.Equal(resp.TotalLoanAmount))
	assert.True(t, req.LoanInterestRate.Equal(resp.LoanInterestRate))
	assert.True(t, req.AmountReceived.Equal(resp.AmountReceived))
	assert.Equal(t, req.TargetCompletionDate, resp.TargetCompletionDate)
	assert.Equal(t, req.PayOffDate, resp.PayOffDate)
	assert.True(t, req.DailyRate.Equal(resp.DailyRate))
	assert.Equal(t, req.ProductID, resp.ProductID)
	assert.Equal(t, req.CustomerID, resp.CustomerID)
	assert.Equal(t, req.Status, resp.Status)
}

func TestNewLoanResponseWithoutPayOffDate(t *testing.T) {
	entity := &loan.Loan{
		ID:                   5,
		StartDate:            time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		LoanEndDate:          time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		TotalLoanAmount:      decimal.NewFromInt(10000),
		LoanInterestRate:     decimal.NewFromFloat(5.5),
		AmountReceived:       decimal.NewFromInt(2000),
		TargetCompletionDate: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		DailyRate:            decimal.NewFromInt(10),
		ProductID:            "PROD123",
		CustomerID:           "CUST123",
		Status:               loan.StatusActive,
	}

	resp := NewLoanResponse(entity)
	assert.Empty(t, resp.PayOffDate)
	assert.Equal(t, "2024-01-15", resp.StartDate)
	assert.Equal(t, "ACTIVE", resp.Status)
}
