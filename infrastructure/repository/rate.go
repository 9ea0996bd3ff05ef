// Package repository contains the data-access implementations backed by
// PostgreSQL.
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quotelane/lease-pricing-api/infrastructure/database/postgres"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

const (
	leaseRateTable = "lease_rate lr"
)

type RateRepository interface {
	// ListQuotes returns every raw quote row for one (vehicle, mileage,
	// maintenance, contract type) scope, in no particular order.
	ListQuotes(vehicleID string, mileage int, includesMaintenance bool, contractType domain.ContractType) ([]domain.QuoteCell, error)
	SaveQuotes(vehicleID string, mileage int, quotes []domain.QuoteCell) error
}

type rateRepository struct {
	conn *postgres.Connection
}

func NewRateRepository(conn *postgres.Connection) RateRepository {
	return &rateRepository{
		conn: conn,
	}
}

func (r *rateRepository) ListQuotes(
	vehicleID string,
	mileage int,
	includesMaintenance bool,
	contractType domain.ContractType,
) ([]domain.QuoteCell, error) {
	query, args, err := squirrel.
		Select(
			"lr.provider",
			"lr.term",
			"lr.initial_months",
			"lr.monthly_rental_minor",
			"lr.includes_maintenance",
			"lr.contract_type",
		).
		From(leaseRateTable).
		Where(squirrel.Eq{
			"lr.vehicle_id":           vehicleID,
			"lr.mileage":              mileage,
			"lr.includes_maintenance": includesMaintenance,
			"lr.contract_type":        string(contractType),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building quotes query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.QuoteCell{}, nil
		}
		return nil, fmt.Errorf("error executing quotes query: %w", err)
	}
	defer rows.Close()

	quotes := make([]domain.QuoteCell, 0)
	for rows.Next() {
		var q domain.QuoteCell
		err := rows.Scan(
			&q.Provider,
			&q.Term,
			&q.InitialMonths,
			&q.MonthlyRentalMinor,
			&q.IncludesMaintenance,
			&q.ContractType,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning quote row: %w", err)
		}
		quotes = append(quotes, q)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote rows: %w", err)
	}

	return quotes, nil
}

func (r *rateRepository) SaveQuotes(vehicleID string, mileage int, quotes []domain.QuoteCell) error {
	if len(quotes) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("lease_rate").
		Columns(
			"vehicle_id",
			"mileage",
			"provider",
			"term",
			"initial_months",
			"monthly_rental_minor",
			"includes_maintenance",
			"contract_type",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, q := range quotes {
		query = query.Values(
			vehicleID,
			mileage,
			q.Provider,
			q.Term,
			q.InitialMonths,
			q.MonthlyRentalMinor,
			q.IncludesMaintenance,
			string(q.ContractType),
		)
	}

	// Quote cells are immutable once ingested; a re-upload replaces the price
	// for the same cell key.
	query = query.Suffix(`
		ON CONFLICT (vehicle_id, mileage, provider, term, initial_months, contract_type, includes_maintenance) DO UPDATE SET
			monthly_rental_minor = EXCLUDED.monthly_rental_minor,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building quote insert query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error executing quote insert query: %w", err)
	}

	return nil
}
