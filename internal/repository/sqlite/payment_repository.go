package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"passvault/internal/domain"
	"passvault/internal/repository"
)

const createPaymentsTable = `
CREATE TABLE IF NOT EXISTS payments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id INTEGER NOT NULL,
	card_holder TEXT NOT NULL DEFAULT '',
	card_number TEXT NOT NULL DEFAULT '',
	security_code INTEGER NOT NULL DEFAULT 0,
	expiration_month INTEGER NOT NULL DEFAULT 0,
	expiration_year INTEGER NOT NULL DEFAULT 0,
	name TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	note TEXT NOT NULL DEFAULT '',
	FOREIGN KEY(owner_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_payments_owner_id ON payments(owner_id);
`

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPaymentsTable); err != nil {
		return fmt.Errorf("create payments table: %w", err)
	}
	return nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO payments (owner_id, card_holder, card_number, security_code, expiration_month, expiration_year, name, color, note)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.OwnerID,
		payment.CardHolder,
		payment.CardNumber,
		payment.SecurityCode,
		payment.ExpirationMonth,
		payment.ExpirationYear,
		payment.Name,
		payment.Color,
		payment.Note,
	)
	if err != nil {
		return 0, fmt.Errorf("insert payment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("payment last insert id: %w", err)
	}
	payment.ID = id
	return id, nil
}

func (r *PaymentRepository) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, card_holder, card_number, security_code, expiration_month, expiration_year, name, color, note
FROM payments
WHERE id = ?`,
		id,
	)
	return scanPayment(row)
}

func (r *PaymentRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_id, card_holder, card_number, security_code, expiration_month, expiration_year, name, color, note
FROM payments
WHERE owner_id = ?
ORDER BY id ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}

	return payments, rows.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE payments
SET card_holder = ?, card_number = ?, security_code = ?, expiration_month = ?, expiration_year = ?, name = ?, color = ?, note = ?
WHERE id = ?`,
		payment.CardHolder,
		payment.CardNumber,
		payment.SecurityCode,
		payment.ExpirationMonth,
		payment.ExpirationYear,
		payment.Name,
		payment.Color,
		payment.Note,
		payment.ID,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update payment rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

func scanPayment(row interface {
	Scan(dest ...any) error
}) (*domain.Payment, error) {
	var payment domain.Payment
	if err := row.Scan(
		&payment.ID,
		&payment.OwnerID,
		&payment.CardHolder,
		&payment.CardNumber,
		&payment.SecurityCode,
		&payment.ExpirationMonth,
		&payment.ExpirationYear,
		&payment.Name,
		&payment.Color,
		&payment.Note,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return &payment, nil
}
