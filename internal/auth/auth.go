// Package auth implements the local credential check and session
// handling. There is no auth backend: the dashboard ships a single
// built-in operator account whose bcrypt hash is seeded into the local
// store on first run.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/modepsa/hornotui/internal/model"
	"github.com/modepsa/hornotui/internal/store"
)

// ErrInvalidCredentials is returned for an unknown usuario or a wrong
// password; callers show it as-is.
var ErrInvalidCredentials = errors.New("credenciales incorrectas")

const (
	defaultUsuario  = "admin@modepsa.com"
	defaultPassword = "admin123"
)

func defaultProfile() model.User {
	return model.User{
		ID:      1,
		Name:    "Administrador",
		Usuario: defaultUsuario,
		DNI:     "00000000",
		Role:    "Admin",
		Avatar:  "A",
	}
}

// EnsureDefaultUser seeds the built-in operator account when the users
// table is empty.
func EnsureDefaultUser(ctx context.Context, st *store.Store) error {
	n, err := st.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if n > 0 {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}
	if err := st.UpsertUser(ctx, defaultUsuario, string(hashed), defaultProfile()); err != nil {
		return fmt.Errorf("failed to seed default user: %w", err)
	}
	return nil
}

// Login validates the credentials against the local user table and
// returns a fresh session. The session is not persisted here; callers
// decide whether to save it.
func Login(ctx context.Context, st *store.Store, usuario, password string) (model.Session, error) {
	hash, profile, err := st.GetUser(ctx, usuario)
	if err == sql.ErrNoRows {
		return model.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return model.Session{}, ErrInvalidCredentials
	}
	return model.Session{
		Token:     uuid.NewString(),
		User:      profile,
		CreatedAt: time.Now(),
	}, nil
}
