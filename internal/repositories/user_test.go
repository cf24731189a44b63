package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-user-auth/internal/middlewares"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", filepath.Join(t.TempDir(), "users.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL,
		nickname      TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE UNIQUE INDEX idx_users_email ON users (email);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	return db
}

func TestUserWriteRepository_Save(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	repo := NewUserWriteRepository(db)

	user, err := repo.Save(ctx, "alice", "alice@example.com", "al", "hashed-password")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "al", user.Nickname)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	// Ids keep incrementing
	second, err := repo.Save(ctx, "bob", "bob@example.com", "", "")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	assert.Empty(t, second.PasswordHash)
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	repo := NewUserWriteRepository(db)

	_, err := repo.Save(ctx, "alice", "alice@example.com", "al", "hash1")
	assert.NoError(t, err)

	user, err := repo.Save(ctx, "other", "alice@example.com", "ot", "hash2")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, user)

	var count int
	assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 1, count)
}

func TestUserReadRepository_Lookups(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)

	saved, err := writeRepo.Save(ctx, "alice", "alice@example.com", "al", "hash")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "alice", "alice2@example.com", "al2", "hash")
	assert.NoError(t, err)

	t.Run("by email", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, saved.ID, user.ID)
	})

	t.Run("by email miss", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("by name returns first match", func(t *testing.T) {
		user, err := readRepo.GetByName(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, saved.ID, user.ID)
	})

	t.Run("by name miss", func(t *testing.T) {
		user, err := readRepo.GetByName(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("by id", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, saved.ID)
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("by id miss", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, 404)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepositories_UseTxFromContext(t *testing.T) {
	db := setupSQLite(t)

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)

	tx, err := db.Beginx()
	assert.NoError(t, err)

	ctx := middlewares.SetTxToContext(context.Background(), tx)

	saved, err := writeRepo.Save(ctx, "alice", "alice@example.com", "al", "hash")
	assert.NoError(t, err)

	// Visible inside the transaction
	user, err := readRepo.GetByID(ctx, saved.ID)
	assert.NoError(t, err)
	assert.NotNil(t, user)

	assert.NoError(t, tx.Rollback())

	// Rolled back, so the plain connection sees nothing
	user, err = readRepo.GetByID(context.Background(), saved.ID)
	assert.NoError(t, err)
	assert.Nil(t, user)
}
