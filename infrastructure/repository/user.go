package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quotelane/lease-pricing-api/infrastructure/database/postgres"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

const (
	userTable   = "app_user u"
	userColumns = "u.id, u.name, u.lastname, u.email, u.password_hash, u.active, u.role_id, u.deleted, u.deleted_at, u.created_at, u.updated_at"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id int) (*domain.User, error)
	ListUsers() ([]*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.
		Insert("app_user").
		Columns("name", "lastname", "email", "password_hash", "active", "role_id").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.RoleID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building user insert query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, fmt.Errorf("error scanning created user: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"u.email": email})
}

func (r *userRepository) GetUserByID(id int) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"u.id": id})
}

func (r *userRepository) getUser(where squirrel.Sqlizer) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(userTable).
		Where(where).
		Where(squirrel.Eq{"u.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building user query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	user := &domain.User{}
	err = row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.Deleted,
		&user.DeletedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}

	return user, nil
}

func (r *userRepository) ListUsers() ([]*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(userTable).
		Where(squirrel.Eq{"u.deleted": false}).
		OrderBy("u.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building user list query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.User{}, nil
		}
		return nil, fmt.Errorf("error executing user list query: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Lastname,
			&user.Email,
			&user.PasswordHash,
			&user.Active,
			&user.RoleID,
			&user.Deleted,
			&user.DeletedAt,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
