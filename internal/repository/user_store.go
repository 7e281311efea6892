package repository

import (
	"database/sql"

	"github.com/jefferson5286/taskmanage/internal/model"
)

// UserExists checks if a user exists by username
func (s *Store) UserExists(username string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username = ?`
	var exists int
	err := s.db.QueryRow(query, username).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateUser creates a new user. The UNIQUE constraints on username,
// reference and current_access_token surface collisions as errors.
func (s *Store) CreateUser(username, passwordHash, accessToken, reference string) (*model.User, error) {
	query := `
		INSERT INTO users (username, password_hash, current_access_token, reference)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.Exec(query, username, passwordHash, accessToken, reference)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.User{
		ID:                 int(id),
		Username:           username,
		PasswordHash:       passwordHash,
		CurrentAccessToken: accessToken,
		Reference:          reference,
	}, nil
}

// GetUserByUsername returns a user by username, or nil when absent
func (s *Store) GetUserByUsername(username string) (*model.User, error) {
	query := `
		SELECT id, username, password_hash, current_access_token, reference
		FROM users WHERE username = ?
	`
	return s.scanUser(s.db.QueryRow(query, username))
}

// GetUserByReference returns a user by its external reference, or nil when absent
func (s *Store) GetUserByReference(reference string) (*model.User, error) {
	query := `
		SELECT id, username, password_hash, current_access_token, reference
		FROM users WHERE reference = ?
	`
	return s.scanUser(s.db.QueryRow(query, reference))
}

// UpdateAccessToken replaces the user's current access token. The previous
// token stops being valid as soon as the row is written.
func (s *Store) UpdateAccessToken(userID int, newToken string) error {
	query := `UPDATE users SET current_access_token = ? WHERE id = ?`
	_, err := s.db.Exec(query, newToken, userID)
	return err
}

func (s *Store) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	var accessToken sql.NullString

	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &accessToken, &user.Reference,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if accessToken.Valid {
		user.CurrentAccessToken = accessToken.String
	}

	return user, nil
}
