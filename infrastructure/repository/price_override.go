package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quotelane/lease-pricing-api/infrastructure/database/postgres"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

const (
	priceOverrideTable   = "price_override po"
	priceOverrideColumns = "po.id, po.vehicle_id, po.provider, po.contract_type, po.term, po.mileage, po.type, po.value, po.priority, po.is_active, po.valid_until, po.reason, po.created_at, po.updated_at"
	// unaliased variant for RETURNING clauses
	priceOverrideReturning = "id, vehicle_id, provider, contract_type, term, mileage, type, value, priority, is_active, valid_until, reason, created_at, updated_at"
)

type PriceOverrideRepository interface {
	CreateOverride(override *domain.PriceOverride) (*domain.PriceOverride, error)
	UpdateOverride(override *domain.PriceOverride) (*domain.PriceOverride, error)
	// DeleteOverride removes the override; reports whether a row existed.
	DeleteOverride(id string) (bool, error)
	GetOverrideByID(id string) (*domain.PriceOverride, error)
	ListOverrides() ([]domain.PriceOverride, error)
	// ListActiveOverrides returns a fresh snapshot of all active overrides.
	// Each call allocates its own slice so a resolution in flight never sees
	// a concurrent edit.
	ListActiveOverrides() ([]domain.PriceOverride, error)
}

type priceOverrideRepository struct {
	conn *postgres.Connection
}

func NewPriceOverrideRepository(conn *postgres.Connection) PriceOverrideRepository {
	return &priceOverrideRepository{
		conn: conn,
	}
}

func (r *priceOverrideRepository) CreateOverride(override *domain.PriceOverride) (*domain.PriceOverride, error) {
	var contractType *string
	if override.Scope.ContractType != nil {
		ct := string(*override.Scope.ContractType)
		contractType = &ct
	}

	query, args, err := squirrel.
		Insert("price_override").
		Columns(
			"id",
			"vehicle_id",
			"provider",
			"contract_type",
			"term",
			"mileage",
			"type",
			"value",
			"priority",
			"is_active",
			"valid_until",
			"reason",
		).
		Values(
			override.ID,
			override.Scope.VehicleID,
			override.Scope.Provider,
			contractType,
			override.Scope.Term,
			override.Scope.Mileage,
			string(override.Type),
			override.Value,
			override.Priority,
			override.IsActive,
			override.ValidUntil,
			override.Reason,
		).
		Suffix("RETURNING " + priceOverrideReturning).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building override insert query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	created, err := scanOverrideRow(row)
	if err != nil {
		return nil, fmt.Errorf("error scanning created override: %w", err)
	}
	return created, nil
}

func (r *priceOverrideRepository) UpdateOverride(override *domain.PriceOverride) (*domain.PriceOverride, error) {
	var contractType *string
	if override.Scope.ContractType != nil {
		ct := string(*override.Scope.ContractType)
		contractType = &ct
	}

	query, args, err := squirrel.
		Update("price_override").
		Set("vehicle_id", override.Scope.VehicleID).
		Set("provider", override.Scope.Provider).
		Set("contract_type", contractType).
		Set("term", override.Scope.Term).
		Set("mileage", override.Scope.Mileage).
		Set("type", string(override.Type)).
		Set("value", override.Value).
		Set("priority", override.Priority).
		Set("is_active", override.IsActive).
		Set("valid_until", override.ValidUntil).
		Set("reason", override.Reason).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": override.ID}).
		Suffix("RETURNING " + priceOverrideReturning).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building override update query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	updated, err := scanOverrideRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning updated override: %w", err)
	}
	return updated, nil
}

func (r *priceOverrideRepository) DeleteOverride(id string) (bool, error) {
	query, args, err := squirrel.
		Delete("price_override").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building override delete query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("error executing override delete query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *priceOverrideRepository) GetOverrideByID(id string) (*domain.PriceOverride, error) {
	query, args, err := squirrel.
		Select(priceOverrideColumns).
		From(priceOverrideTable).
		Where(squirrel.Eq{"po.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building override query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	override, err := scanOverrideRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning override: %w", err)
	}
	return override, nil
}

func (r *priceOverrideRepository) ListOverrides() ([]domain.PriceOverride, error) {
	return r.listOverrides(nil)
}

func (r *priceOverrideRepository) ListActiveOverrides() ([]domain.PriceOverride, error) {
	return r.listOverrides(squirrel.Eq{"po.is_active": true})
}

func (r *priceOverrideRepository) listOverrides(where squirrel.Sqlizer) ([]domain.PriceOverride, error) {
	queryBuilder := squirrel.
		Select(priceOverrideColumns).
		From(priceOverrideTable).
		OrderBy("po.priority DESC", "po.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building override list query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.PriceOverride{}, nil
		}
		return nil, fmt.Errorf("error executing override list query: %w", err)
	}
	defer rows.Close()

	overrides := make([]domain.PriceOverride, 0)
	for rows.Next() {
		override, err := scanOverrideRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning override row: %w", err)
		}
		overrides = append(overrides, *override)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating override rows: %w", err)
	}

	return overrides, nil
}

type overrideScanner interface {
	Scan(dest ...interface{}) error
}

func scanOverride(s overrideScanner) (*domain.PriceOverride, error) {
	override := &domain.PriceOverride{}
	var overrideType string
	var contractType *string

	err := s.Scan(
		&override.ID,
		&override.Scope.VehicleID,
		&override.Scope.Provider,
		&contractType,
		&override.Scope.Term,
		&override.Scope.Mileage,
		&overrideType,
		&override.Value,
		&override.Priority,
		&override.IsActive,
		&override.ValidUntil,
		&override.Reason,
		&override.CreatedAt,
		&override.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	override.Type = domain.OverrideType(overrideType)
	if contractType != nil {
		ct := domain.ContractType(*contractType)
		override.Scope.ContractType = &ct
	}

	return override, nil
}

func scanOverrideRow(row *sql.Row) (*domain.PriceOverride, error) {
	return scanOverride(row)
}

func scanOverrideRows(rows *sql.Rows) (*domain.PriceOverride, error) {
	return scanOverride(rows)
}
