// Package database provides the file-backed customer record store.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"aircon-subsidy-engine/internal/models"
)

// CustomerRepository handles customer record operations.
type CustomerRepository struct {
	db *DB
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Add appends a new customer row and returns its id. No uniqueness is
// enforced on email or any other field; duplicate emails create
// duplicate rows.
func (r *CustomerRepository) Add(ctx context.Context, record *models.CustomerRecord) (int64, error) {
	var id int64

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, `
			INSERT INTO customers (model_number, manufacture_year, zip_code, address, name, phone_number, email, customer_number)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			record.ModelNumber,
			record.ManufactureYear,
			record.ZipCode,
			record.Address,
			record.Name,
			record.PhoneNumber,
			record.Email,
			record.CustomerNumber,
		)
		if err != nil {
			return err
		}

		id, err = result.LastInsertId()
		return err
	})

	if err != nil {
		return 0, fmt.Errorf("failed to add customer: %w", err)
	}

	return id, nil
}

// FindByEmail returns the first customer row matching the email, or nil
// when none exists. With duplicate emails "first" means lowest id.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*models.CustomerRecord, error) {
	var record models.CustomerRecord
	found := false

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, `
			SELECT id, model_number, manufacture_year, zip_code, address, name, phone_number, email, customer_number
			FROM customers
			WHERE email = ?
			ORDER BY id
			LIMIT 1`,
			email,
		)

		err := row.Scan(
			&record.ID,
			&record.ModelNumber,
			&record.ManufactureYear,
			&record.ZipCode,
			&record.Address,
			&record.Name,
			&record.PhoneNumber,
			&record.Email,
			&record.CustomerNumber,
		)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &record, nil
}

// Count returns the total number of customer rows.
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
