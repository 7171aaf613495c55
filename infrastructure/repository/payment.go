package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/alikitto/ad-dash/infrastructure/database/postgres"
	"github.com/alikitto/ad-dash/internal/domain"
)

const paymentsTable = "payments"

type PaymentRepository interface {
	ListPayments(ctx context.Context, accountID string) ([]*domain.Payment, error)
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

type paymentRepository struct {
	db postgres.Queryer
}

func NewPaymentRepository(db postgres.Queryer) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

func (r *paymentRepository) ListPayments(ctx context.Context, accountID string) ([]*domain.Payment, error) {
	paymentsSQL, paymentsArgs, err := squirrel.
		Select("id", "account_id", "amount", "paid_at", "note", "reference", "created_at").
		From(paymentsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("paid_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, paymentsSQL, paymentsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var (
			payment domain.Payment
			paidAt  time.Time
		)

		if err := rows.Scan(
			&payment.ID,
			&payment.AccountID,
			&payment.Amount,
			&paidAt,
			&payment.Note,
			&payment.Reference,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}

		payment.PaidAt = paidAt.Format(time.DateOnly)
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	insertSQL, insertArgs, err := squirrel.
		Insert(paymentsTable).
		Columns("account_id", "amount", "paid_at", "note", "reference").
		Values(payment.AccountID, payment.Amount, payment.PaidAt, payment.Note, payment.Reference).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx, insertSQL, insertArgs...).Scan(&payment.ID, &payment.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return payment, nil
}
