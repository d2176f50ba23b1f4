package account

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	repo       Repo
	bcryptCost int
	jwtSecret  []byte
	tokenTTL   time.Duration
}

func NewService(repo Repo, bcryptCost int, jwtSecret []byte, tokenTTL time.Duration) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, bcryptCost: bcryptCost, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *Service) Signup(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, &User{
		Username:        username,
		PasswordHash:    string(hash),
		DisplayUsername: username,
		CreatedAt:       time.Now(),
	})
}

// Login verifies credentials and issues a signed token carrying the display
// username. Lookup misses and bad passwords collapse into one error so the
// response never leaks which half was wrong.
func (s *Service) Login(ctx context.Context, username, password string) (string, *User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := GenerateToken(s.jwtSecret, u.DisplayUsername, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *Service) Delete(ctx context.Context, username, password string) error {
	u, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return s.repo.Delete(ctx, u.ID)
}
