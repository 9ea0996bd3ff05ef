package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/quotelane/lease-pricing-api/infrastructure/database/postgres"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

const (
	competitorPriceTable = "competitor_price cp"
)

type CompetitorPriceRepository interface {
	// ListByVehicle returns the latest snapshot rows matched to the vehicle.
	ListByVehicle(vehicleID string) ([]domain.CompetitorPrice, error)
	// SaveSnapshot persists one scraped row. Rows are persisted one by one so
	// a failure on one never corrupts another source's count.
	SaveSnapshot(price *domain.CompetitorPrice) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type competitorPriceRepository struct {
	conn *postgres.Connection
}

func NewCompetitorPriceRepository(conn *postgres.Connection) CompetitorPriceRepository {
	return &competitorPriceRepository{
		conn: conn,
	}
}

func (r *competitorPriceRepository) ListByVehicle(vehicleID string) ([]domain.CompetitorPrice, error) {
	query, args, err := squirrel.
		Select(
			"cp.id",
			"cp.vehicle_id",
			"cp.source_name",
			"cp.monthly_price_minor",
			"cp.term",
			"cp.mileage",
			"cp.url",
			"cp.snapshot_date",
		).
		From(competitorPriceTable).
		Where(squirrel.Eq{"cp.vehicle_id": vehicleID}).
		OrderBy("cp.snapshot_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building competitor price query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.CompetitorPrice{}, nil
		}
		return nil, fmt.Errorf("error executing competitor price query: %w", err)
	}
	defer rows.Close()

	prices := make([]domain.CompetitorPrice, 0)
	for rows.Next() {
		var p domain.CompetitorPrice
		err := rows.Scan(
			&p.ID,
			&p.VehicleID,
			&p.SourceName,
			&p.MonthlyPriceMinor,
			&p.Term,
			&p.Mileage,
			&p.URL,
			&p.SnapshotDate,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning competitor price row: %w", err)
		}
		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating competitor price rows: %w", err)
	}

	return prices, nil
}

func (r *competitorPriceRepository) SaveSnapshot(price *domain.CompetitorPrice) error {
	query, args, err := squirrel.
		Insert("competitor_price").
		Columns(
			"id",
			"vehicle_id",
			"source_name",
			"monthly_price_minor",
			"term",
			"mileage",
			"url",
			"snapshot_date",
		).
		Values(
			price.ID,
			price.VehicleID,
			price.SourceName,
			price.MonthlyPriceMinor,
			price.Term,
			price.Mileage,
			price.URL,
			price.SnapshotDate,
		).
		Suffix(`
			ON CONFLICT (vehicle_id, source_name, snapshot_date) DO UPDATE SET
				monthly_price_minor = EXCLUDED.monthly_price_minor,
				term = EXCLUDED.term,
				mileage = EXCLUDED.mileage,
				url = EXCLUDED.url
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building competitor price insert query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("error executing competitor price insert query: %w", err)
	}

	return nil
}

func (r *competitorPriceRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("competitor_price").
		Where(squirrel.Lt{"snapshot_date": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building competitor price cleanup query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("error executing competitor price cleanup query: %w", err)
	}

	return result.RowsAffected()
}
