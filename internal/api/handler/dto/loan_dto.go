package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"loan-service/internal/domain/loan"
)

const dateLayout = "2006-01-02"

func init() {
	// Amounts and rates go on the wire as JSON numbers with full precision.
	decimal.MarshalJSONWithoutQuotes = true
}

// LoanRequest is the inbound wire shape. It carries no identifier: the server
// assigns one on create and the URL names one on update.
type LoanRequest struct {
	StartDate            string          `json:"startDate" validate:"required,datetime=2006-01-02,pastorpresent"`
	LoanEndDate          string          `json:"loanEndDate" validate:"required,datetime=2006-01-02,presentorfuture"`
	TotalLoanAmount      decimal.Decimal `json:"totalLoanAmount" validate:"gt=0"`
	LoanInterestRate     decimal.Decimal `json:"loanInterestRate" validate:"gt=0,lte=100"`
	AmountReceived       decimal.Decimal `json:"amountReceived" validate:"gte=0"`
	TargetCompletionDate string          `json:"targetCompletionDate" validate:"required,datetime=2006-01-02,presentorfuture"`
	PayOffDate           string          `json:"payOffDate,omitempty" validate:"omitempty,datetime=2006-01-02,future"`
	DailyRate            decimal.Decimal `json:"dailyRate" validate:"gte=0"`
	ProductID            string          `json:"productId" validate:"required,notblank"`
	CustomerID           string          `json:"customerId" validate:"required,notblank"`
	Status               string          `json:"status" validate:"required,oneof=ACTIVE CLOSED DEFAULTED"`
}

// LoanResponse mirrors LoanRequest plus the assigned identifier.
type LoanResponse struct {
	LoanID               int64           `json:"loanId"`
	StartDate            string          `json:"startDate"`
	LoanEndDate          string          `json:"loanEndDate"`
	TotalLoanAmount      decimal.Decimal `json:"totalLoanAmount"`
	LoanInterestRate     decimal.Decimal `json:"loanInterestRate"`
	AmountReceived       decimal.Decimal `json:"amountReceived"`
	TargetCompletionDate string          `json:"targetCompletionDate"`
	PayOffDate           string          `json:"payOffDate,omitempty"`
	DailyRate            decimal.Decimal `json:"dailyRate"`
	ProductID            string          `json:"productId"`
	CustomerID           string          `json:"customerId"`
	Status               string          `json:"status"`
}

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error      string           `json:"error"`
	Violations []FieldViolation `json:"violations,omitempty"`
}

var validate = newLoanValidator()

func newLoanValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("pastorpresent", dateRule(func(d, today time.Time) bool { return !d.After(today) }))
	_ = v.RegisterValidation("presentorfuture", dateRule(func(d, today time.Time) bool { return !d.Before(today) }))
	_ = v.RegisterValidation("future", dateRule(func(d, today time.Time) bool { return d.After(today) }))

	return v
}

// dateRule builds a validator over ISO-8601 date strings. Unparseable values
// pass here so the datetime tag stays the single reporter of format errors.
func dateRule(ok func(d, today time.Time) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return true
		}
		return ok(d, today())
	}
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate evaluates the declarative constraint set and returns one violation
// per failing field, in struct order. A nil result means the request is valid.
func (r *LoanRequest) Validate() []FieldViolation {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldViolation{{Field: "", Message: err.Error()}}
	}

	violations := make([]FieldViolation, 0, len(validationErrors))
	for _, fe := range validationErrors {
		violations = append(violations, FieldViolation{Field: fe.Field(), Message: violationMessage(fe)})
	}
	return violations
}

var violationMessages = map[string]string{
	"startDate.required":                   "start date is required",
	"startDate.pastorpresent":              "start date must be in the past or present",
	"loanEndDate.required":                 "loan end date is required",
	"loanEndDate.presentorfuture":          "loan end date must be in the future or present",
	"totalLoanAmount.gt":                   "total loan amount must be greater than 0",
	"loanInterestRate.gt":                  "loan interest rate must be greater than 0",
	"loanInterestRate.lte":                 "loan interest rate cannot exceed 100",
	"amountReceived.gte":                   "amount received cannot be negative",
	"targetCompletionDate.required":        "target completion date is required",
	"targetCompletionDate.presentorfuture": "target completion date must be in the future or present",
	"payOffDate.future":                    "payoff date must be in the future",
	"dailyRate.gte":                        "daily rate cannot be negative",
	"productId.required":                   "product ID cannot be blank",
	"productId.notblank":                   "product ID cannot be blank",
	"customerId.required":                  "customer ID cannot be blank",
	"customerId.notblank":                  "customer ID cannot be blank",
	"status.required":                      "status is required",
	"status.oneof":                         "status must be one of ACTIVE, CLOSED, DEFAULTED",
}

func violationMessage(fe validator.FieldError) string {
	if fe.Tag() == "datetime" {
		return fmt.Sprintf("%s must be an ISO-8601 date (YYYY-MM-DD)", fe.Field())
	}
	if msg, ok := violationMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s failed validation on '%s'", fe.Field(), fe.Tag())
}

// ToDomain maps a validated request to the entity shape. Call Validate first:
// date fields are assumed parseable here.
func (r *LoanRequest) ToDomain() (*loan.Loan, error) {
	startDate, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}
	loanEndDate, err := time.Parse(dateLayout, r.LoanEndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid loanEndDate: %w", err)
	}
	targetCompletionDate, err := time.Parse(dateLayout, r.TargetCompletionDate)
	if err != nil {
		return nil, fmt.Errorf("invalid targetCompletionDate: %w", err)
	}

	var payOffDate *time.Time
	if r.PayOffDate != "" {
		d, err := time.Parse(dateLayout, r.PayOffDate)
		if err != nil {
			return nil, fmt.Errorf("invalid payOffDate: %w", err)
		}
		payOffDate = &d
	}

	return &loan.Loan{
		StartDate:            startDate,
		LoanEndDate:          loanEndDate,
		TotalLoanAmount:      r.TotalLoanAmount,
		LoanInterestRate:     r.LoanInterestRate,
		AmountReceived:       r.AmountReceived,
		TargetCompletionDate: targetCompletionDate,
		PayOffDate:           payOffDate,
		DailyRate:            r.DailyRate,
		ProductID:            r.ProductID,
		CustomerID:           r.CustomerID,
		Status:               loan.Status(r.Status),
	}, nil
}

func NewLoanResponse(l *loan.Loan) LoanResponse {
	resp := LoanResponse{
		LoanID:               l.ID,
		StartDate:            l.StartDate.Format(dateLayout),
		LoanEndDate:          l.LoanEndDate.Format(dateLayout),
		TotalLoanAmount:      l.TotalLoanAmount,
		LoanInterestRate:     l.LoanInterestRate,
		AmountReceived:       l.AmountReceived,
		TargetCompletionDate: l.TargetCompletionDate.Format(dateLayout),
		DailyRate:            l.DailyRate,
		ProductID:            l.ProductID,
		CustomerID:           l.CustomerID,
		Status:               string(l.Status),
	}
	if l.PayOffDate != nil {
		resp.PayOffDate = l.PayOffDate.Format(dateLayout)
	}
	return resp
}
