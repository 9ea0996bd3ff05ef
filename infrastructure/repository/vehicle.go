package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quotelane/lease-pricing-api/infrastructure/database/postgres"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

const (
	vehicleTable   = "vehicle v"
	vehicleColumns = "v.id, v.manufacturer, v.model, v.variant, v.list_price_minor, v.fuel_type, v.co2_g_km, v.doors, v.created_at, v.updated_at"
)

type VehicleRepository interface {
	GetVehicleByID(id string) (*domain.Vehicle, error)
	ListVehicles() ([]*domain.Vehicle, error)
}

type vehicleRepository struct {
	conn *postgres.Connection
}

func NewVehicleRepository(conn *postgres.Connection) VehicleRepository {
	return &vehicleRepository{
		conn: conn,
	}
}

func (r *vehicleRepository) GetVehicleByID(id string) (*domain.Vehicle, error) {
	query, args, err := squirrel.
		Select(vehicleColumns).
		From(vehicleTable).
		Where(squirrel.Eq{"v.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building vehicle query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	vehicle, err := scanVehicle(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning vehicle: %w", err)
	}
	return vehicle, nil
}

func (r *vehicleRepository) ListVehicles() ([]*domain.Vehicle, error) {
	query, args, err := squirrel.
		Select(vehicleColumns).
		From(vehicleTable).
		OrderBy("v.manufacturer ASC", "v.model ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building vehicle list query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Vehicle{}, nil
		}
		return nil, fmt.Errorf("error executing vehicle list query: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		v := &domain.Vehicle{}
		err := rows.Scan(
			&v.ID,
			&v.Manufacturer,
			&v.Model,
			&v.Variant,
			&v.ListPriceMinor,
			&v.FuelType,
			&v.CO2GramsPerKM,
			&v.Doors,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicle rows: %w", err)
	}

	return vehicles, nil
}

func scanVehicle(row *sql.Row) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}

	err := row.Scan(
		&v.ID,
		&v.Manufacturer,
		&v.Model,
		&v.Variant,
		&v.ListPriceMinor,
		&v.FuelType,
		&v.CO2GramsPerKM,
		&v.Doors,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return v, nil
}
