package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/sbilibin2017/gw-user-auth/internal/logger"
	"github.com/sbilibin2017/gw-user-auth/internal/middlewares"
	"github.com/sbilibin2017/gw-user-auth/internal/models"
)

// ErrEmailTaken is returned by Save when the email collides with the
// unique index on users.email.
var ErrEmailTaken = errors.New("email already registered")

const selectUserColumns = `
	SELECT id, name, email, nickname, password_hash, created_at, updated_at
	FROM users
`

// UserReadRepository provides read-only access to the users table.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = selectUserColumns + ` WHERE email = ? LIMIT 1`
	return r.getOne(ctx, query, email)
}

// GetByName returns the first user with the given name, or nil when absent.
func (r *UserReadRepository) GetByName(ctx context.Context, name string) (*models.UserDB, error) {
	const query = selectUserColumns + ` WHERE name = ? ORDER BY id LIMIT 1`
	return r.getOne(ctx, query, name)
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = selectUserColumns + ` WHERE id = ? LIMIT 1`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, args...)

	// Log with query in single line
	logger.Log.Infow("user select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository provides write access to the users table.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row and returns it with its generated id.
// passwordHash may be empty for users created without credentials.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, nickname, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (name, email, nickname, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	args := []any{name, email, nickname, passwordHash}

	e := ext(ctx, r.db)

	res, err := e.ExecContext(ctx, query, args...)

	// Log with query in single line
	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email, nickname},
		"error", err,
	)

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var user models.UserDB
	if err := sqlx.GetContext(ctx, e, &user, selectUserColumns+` WHERE id = ?`, id); err != nil {
		return nil, err
	}

	return &user, nil
}

// ext returns the transaction bound to the request context when the route
// runs under TxMiddleware, and the plain connection otherwise.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
