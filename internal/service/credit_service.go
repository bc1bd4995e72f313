package service

import (
	"context"
	"errors"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/model"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditService applies payments against credit bills. A bill stays in the
// outstanding list while credit_remaining > 0; reaching 0 drops it out
// permanently — there is no explicit closed flag.
type CreditService interface {
	// AddPayment amortizes amount against the bill's remaining balance:
	// amount_paid grows unchecked, credit_remaining clamps at 0, and an
	// append-only payment row is written. Missing bill = silent no-op.
	AddPayment(ctx context.Context, billID int64, req dto.AddCreditPaymentRequest) error
	OutstandingBills(ctx context.Context) ([]dto.BillResponse, error)
	Payments(ctx context.Context, billID int64) ([]dto.CreditPaymentResponse, error)
}

type creditService struct {
	bills    repository.BillRepository
	payments repository.CreditPaymentRepository
}

func NewCreditService(bills repository.BillRepository, payments repository.CreditPaymentRepository) CreditService {
	return &creditService{bills: bills, payments: payments}
}

func (s *creditService) AddPayment(ctx context.Context, billID int64, req dto.AddCreditPaymentRequest) error {
	if !req.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		return err
	}

	bill, err := s.bills.FindByID(ctx, billID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	newPaid := bill.AmountPaid.Add(req.Amount)
	newRemaining := bill.CreditRemaining.Sub(req.Amount)
	if newRemaining.IsNegative() {
		newRemaining = decimal.Zero
	}

	return runTx(ctx, s.bills.DB(), func(tx *gorm.DB) error {
		if err := s.bills.UpdateCreditTx(tx, billID, newPaid, newRemaining); err != nil {
			return err
		}
		return s.payments.CreateTx(tx, &model.CreditPayment{
			BillID:      billID,
			Amount:      req.Amount,
			PaymentDate: paymentDate,
		})
	})
}

func (s *creditService) OutstandingBills(ctx context.Context) ([]dto.BillResponse, error) {
	bills, err := s.bills.ListWithCredit(ctx)
	if err != nil {
		return nil, err
	}
	return billsToResponses(bills), nil
}

func (s *creditService) Payments(ctx context.Context, billID int64) ([]dto.CreditPaymentResponse, error) {
	payments, err := s.payments.ListByBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CreditPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.CreditPaymentResponse{
			ID:          p.ID,
			BillID:      p.BillID,
			Amount:      p.Amount,
			PaymentDate: formatDate(p.PaymentDate),
		})
	}
	return out, nil
}
