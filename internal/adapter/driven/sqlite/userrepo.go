package sqlite

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/pharmajava/timeclock/internal/domain/model"
	"github.com/pharmajava/timeclock/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.IdentityStore = (*UserRepo)(nil)

// UserRepo is the SQLite implementation of the IdentityStore port interface.
// Names are stored in plaintext for reads; an AES-256-GCM encrypted copy is
// written alongside on every create and rename.
type UserRepo struct {
	db  *DB
	key []byte // 32-byte AES-256 key.
}

// NewUserRepo creates a new UserRepo. key must be 32 bytes for AES-256-GCM.
func NewUserRepo(db *DB, key []byte) *UserRepo {
	return &UserRepo{db: db, key: key}
}

// Create stores a new user with an encrypted copy of the name and returns
// the store-assigned id.
func (r *UserRepo) Create(ctx context.Context, name string) (int64, error) {
	ciphertext, err := r.encrypt(name)
	if err != nil {
		return 0, err
	}

	const query = `INSERT INTO users (name, name_ciphertext) VALUES (?, ?)`
	res, err := r.db.Writer.ExecContext(ctx, query, name, ciphertext)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user insert id: %w", err)
	}
	return id, nil
}

// Rename updates the user's name and recomputes the encrypted copy.
// Returns driven.ErrUserNotFound if the id does not exist.
func (r *UserRepo) Rename(ctx context.Context, id int64, name string) error {
	ciphertext, err := r.encrypt(name)
	if err != nil {
		return err
	}

	const query = `UPDATE users SET name = ?, name_ciphertext = ? WHERE id = ?`
	res, err := r.db.Writer.ExecContext(ctx, query, name, ciphertext, id)
	if err != nil {
		return fmt.Errorf("rename user %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rename user %d rows affected: %w", id, err)
	}
	if affected == 0 {
		return driven.ErrUserNotFound
	}
	return nil
}

// Get returns the stored user, ciphertext included.
// Returns driven.ErrUserNotFound if the id does not exist.
func (r *UserRepo) Get(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, name_ciphertext FROM users WHERE id = ?`

	var u model.User
	err := r.db.Reader.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.NameCiphertext)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, driven.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// encrypt encrypts plaintext using AES-256-GCM and returns a base64-encoded
// string containing the nonce (12 bytes) prepended to the ciphertext.
func (r *UserRepo) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(r.key)
	if err != nil {
		return "", fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("cipher.NewGCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("rand nonce: %w", err)
	}

	// Seal appends the ciphertext to nonce, producing: nonce || ciphertext || tag.
	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
