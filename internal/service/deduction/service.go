package deduction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/deduction"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type DeductionServiceImpl struct {
	db              *database.DB
	cashAdvanceRepo deduction.CashAdvanceRepository
	shortRepo       deduction.ShortRepository
	loanRepo        deduction.LoanRepository
}

func NewDeductionService(
	db *database.DB,
	cashAdvanceRepo deduction.CashAdvanceRepository,
	shortRepo deduction.ShortRepository,
	loanRepo deduction.LoanRepository,
) deduction.DeductionService {
	return &DeductionServiceImpl{
		db:              db,
		cashAdvanceRepo: cashAdvanceRepo,
		shortRepo:       shortRepo,
		loanRepo:        loanRepo,
	}
}

// CreateCashAdvance implements deduction.DeductionService.
func (s *DeductionServiceImpl) CreateCashAdvance(ctx context.Context, req deduction.CreateCashAdvanceRequest) (deduction.CashAdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.CashAdvanceResponse{}, err
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	installments := 0
	if req.Installments != nil {
		installments = *req.Installments
	}
	perPayment := decimal.Zero
	if installments > 1 {
		// Round up so the final installment absorbs the shortfall and the
		// remaining balance hits exactly zero within the installment count.
		perPayment = req.Amount.Div(decimal.NewFromInt(int64(installments))).RoundUp(2)
	}

	ca := deduction.CashAdvance{
		EmployeeID:       req.EmployeeID,
		Date:             date,
		Amount:           req.Amount,
		RemainingUnpaid:  req.Amount,
		Installments:     installments,
		AmountPerPayment: perPayment,
		Status:           deduction.StatusUnpaid,
		Reason:           req.Reason,
	}
	created, err := s.cashAdvanceRepo.Create(ctx, ca)
	if err != nil {
		return deduction.CashAdvanceResponse{}, fmt.Errorf("failed to create cash advance: %w", err)
	}
	return mapCashAdvanceToResponse(created), nil
}

// ListCashAdvances implements deduction.DeductionService.
func (s *DeductionServiceImpl) ListCashAdvances(ctx context.Context, employeeID string, year, month int) ([]deduction.CashAdvanceResponse, error) {
	advances, err := s.cashAdvanceRepo.ListByMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash advances: %w", err)
	}
	responses := make([]deduction.CashAdvanceResponse, 0, len(advances))
	for _, ca := range advances {
		responses = append(responses, mapCashAdvanceToResponse(ca))
	}
	return responses, nil
}

// DeleteCashAdvance implements deduction.DeductionService.
func (s *DeductionServiceImpl) DeleteCashAdvance(ctx context.Context, id string) error {
	if _, err := s.cashAdvanceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.cashAdvanceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete cash advance: %w", err)
	}
	return nil
}

// CreateShort implements deduction.DeductionService.
func (s *DeductionServiceImpl) CreateShort(ctx context.Context, req deduction.CreateShortRequest) (deduction.ShortResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.ShortResponse{}, err
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	short := deduction.Short{
		EmployeeID:      req.EmployeeID,
		Date:            date,
		Amount:          req.Amount,
		RemainingUnpaid: req.Amount,
		Status:          deduction.StatusUnpaid,
		Reason:          req.Reason,
	}
	created, err := s.shortRepo.Create(ctx, short)
	if err != nil {
		return deduction.ShortResponse{}, fmt.Errorf("failed to create short: %w", err)
	}
	return mapShortToResponse(created), nil
}

// ListShorts implements deduction.DeductionService.
func (s *DeductionServiceImpl) ListShorts(ctx context.Context, employeeID string, year, month int) ([]deduction.ShortResponse, error) {
	shorts, err := s.shortRepo.ListByMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list shorts: %w", err)
	}
	responses := make([]deduction.ShortResponse, 0, len(shorts))
	for _, sh := range shorts {
		responses = append(responses, mapShortToResponse(sh))
	}
	return responses, nil
}

// DeleteShort implements deduction.DeductionService.
func (s *DeductionServiceImpl) DeleteShort(ctx context.Context, id string) error {
	if _, err := s.shortRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.shortRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete short: %w", err)
	}
	return nil
}

// CreateLoan implements deduction.DeductionService.
func (s *DeductionServiceImpl) CreateLoan(ctx context.Context, req deduction.CreateLoanRequest) (deduction.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.LoanResponse{}, err
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	loan := deduction.Loan{
		EmployeeID:        req.EmployeeID,
		Date:              date,
		Amount:            req.Amount,
		AmountPerPayment:  req.Amount.Div(decimal.NewFromInt(int64(req.NumberOfPayments))).RoundUp(2),
		RemainingBalance:  req.Amount,
		RemainingPayments: req.NumberOfPayments,
		Status:            deduction.StatusUnpaid,
	}
	created, err := s.loanRepo.Create(ctx, loan)
	if err != nil {
		return deduction.LoanResponse{}, fmt.Errorf("failed to create loan: %w", err)
	}
	return mapLoanToResponse(created), nil
}

// ListLoans implements deduction.DeductionService.
func (s *DeductionServiceImpl) ListLoans(ctx context.Context, employeeID string, year, month int) ([]deduction.LoanResponse, error) {
	loans, err := s.loanRepo.ListByMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	responses := make([]deduction.LoanResponse, 0, len(loans))
	for _, l := range loans {
		responses = append(responses, mapLoanToResponse(l))
	}
	return responses, nil
}

// DeleteLoan implements deduction.DeductionService.
func (s *DeductionServiceImpl) DeleteLoan(ctx context.Context, id string) error {
	if _, err := s.loanRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.loanRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	return nil
}

func mapCashAdvanceToResponse(ca deduction.CashAdvance) deduction.CashAdvanceResponse {
	return deduction.CashAdvanceResponse{
		ID:               ca.ID,
		EmployeeID:       ca.EmployeeID,
		Date:             ca.Date.Format("2006-01-02"),
		Amount:           ca.Amount.Round(2),
		RemainingUnpaid:  ca.RemainingUnpaid.Round(2),
		Installments:     ca.Installments,
		AmountPerPayment: ca.AmountPerPayment.Round(2),
		Status:           string(ca.Status),
		Reason:           ca.Reason,
	}
}

func mapShortToResponse(sh deduction.Short) deduction.ShortResponse {
	return deduction.ShortResponse{
		ID:              sh.ID,
		EmployeeID:      sh.EmployeeID,
		Date:            sh.Date.Format("2006-01-02"),
		Amount:          sh.Amount.Round(2),
		RemainingUnpaid: sh.RemainingUnpaid.Round(2),
		Status:          string(sh.Status),
		Reason:          sh.Reason,
	}
}

func mapLoanToResponse(l deduction.Loan) deduction.LoanResponse {
	return deduction.LoanResponse{
		ID:                l.ID,
		EmployeeID:        l.EmployeeID,
		Date:              l.Date.Format("2006-01-02"),
		Amount:            l.Amount.Round(2),
		AmountPerPayment:  l.AmountPerPayment.Round(2),
		RemainingBalance:  l.RemainingBalance.Round(2),
		RemainingPayments: l.RemainingPayments,
		Status:            string(l.Status),
	}
}
