package creditservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/ledger"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

type CreditRepo interface {
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	TotalPaid(ctx context.Context, customerID int64) (decimal.Decimal, error)
	Create(ctx context.Context, p *domain.CreditPayment) (*domain.CreditPayment, error)
	GetByID(ctx context.Context, id int64) (*domain.CreditPayment, error)
	Delete(ctx context.Context, id int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.CreditPayment, error)
}

type TripRepo interface {
	CreditTotal(ctx context.Context, customerID int64) (decimal.Decimal, error)
}

type Service struct {
	credit    CreditRepo
	trips     TripRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(credit CreditRepo, trips TripRepo, txManager pg.TXManager) *Service {
	return &Service{
		credit:    credit,
		trips:     trips,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) account(ctx context.Context, customerID int64) (domain.CustomerCreditAccount, error) {
	credit, err := s.trips.CreditTotal(ctx, customerID)
	if err != nil {
		return domain.CustomerCreditAccount{}, err
	}
	paid, err := s.credit.TotalPaid(ctx, customerID)
	if err != nil {
		return domain.CustomerCreditAccount{}, err
	}
	return ledger.CreditAccount(customerID, credit, paid), nil
}

func (s *Service) customer(ctx context.Context, id int64) error {
	customer, err := s.credit.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.NewNotFoundError("customer", id)
	}
	return nil
}

// RecordPayment books a customer payment against the credit computed at
// write time. The client's view of the remaining credit only produces a warning.
func (s *Service) RecordPayment(ctx context.Context, in domain.CreditPaymentInput) (*domain.CreditPaymentResult, error) {
	if in.CustomerID <= 0 {
		return nil, domain.NewValidationError("customerId", "is required")
	}
	if in.Date.IsZero() {
		in.Date = s.now()
	}

	var result domain.CreditPaymentResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.txManager.Lock(ctx, pg.CustomerLock(in.CustomerID)); err != nil {
			return err
		}
		if err := s.customer(ctx, in.CustomerID); err != nil {
			return err
		}
		account, err := s.account(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		warning, err := ledger.CheckCreditPayment(in.Amount, in.OriginalCreditAmount, account)
		if err != nil {
			return err
		}

		payment, err := s.credit.Create(ctx, &domain.CreditPayment{
			CustomerID:           in.CustomerID,
			Amount:               in.Amount,
			Date:                 ledger.Day(in.Date),
			Method:               in.Method,
			Reference:            in.Reference,
			Notes:                in.Notes,
			OriginalCreditAmount: *in.OriginalCreditAmount,
			CreatedBy:            in.CreatedBy,
		})
		if err != nil {
			return err
		}
		result = domain.CreditPaymentResult{
			Payment: *payment,
			Account: ledger.CreditAccount(in.CustomerID, account.TotalCredit, account.TotalPaid.Add(in.Amount)),
			Warning: warning,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to record credit payment", zap.Int64("customer_id", in.CustomerID), zap.Error(err))
		return nil, err
	}
	if result.Warning != "" {
		zap.L().Warn("stale credit amount on payment",
			zap.Int64("customer_id", in.CustomerID),
			zap.Int64("payment_id", result.Payment.ID),
			zap.String("warning", result.Warning),
		)
	}
	return &result, nil
}

// DeletePayment removes a payment and returns the customer's recomputed account.
func (s *Service) DeletePayment(ctx context.Context, id int64) (*domain.CustomerCreditAccount, error) {
	var account domain.CustomerCreditAccount
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err := s.credit.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if payment == nil {
			return domain.NewNotFoundError("credit payment", id)
		}
		if err := s.txManager.Lock(ctx, pg.CustomerLock(payment.CustomerID)); err != nil {
			return err
		}
		if err := s.credit.Delete(ctx, id); err != nil {
			return err
		}
		account, err = s.account(ctx, payment.CustomerID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to delete credit payment", zap.Int64("payment_id", id), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (s *Service) Account(ctx context.Context, customerID int64) (*domain.CustomerCreditAccount, error) {
	if err := s.customer(ctx, customerID); err != nil {
		return nil, err
	}
	account, err := s.account(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to compute credit account", zap.Int64("customer_id", customerID), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (s *Service) ListPayments(ctx context.Context, customerID int64) ([]domain.CreditPayment, error) {
	if err := s.customer(ctx, customerID); err != nil {
		return nil, err
	}
	return s.credit.ListByCustomer(ctx, customerID)
}
