package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	// MinCost keeps bcrypt cheap in tests.
	return NewService(NewMemoryRepo(), 4, []byte("test-secret"), time.Hour)
}

func Test_SignupAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	err := svc.Signup(ctx, "alice-wonder", "correct-horse")
	assert.NoError(t, err)

	token, u, err := svc.Login(ctx, "alice-wonder", "correct-horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice-wonder", u.DisplayUsername)

	claims, err := ParseToken([]byte("test-secret"), token)
	assert.NoError(t, err)
	assert.Equal(t, "alice-wonder", claims.Username)
}

func Test_LoginWrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assert.NoError(t, svc.Signup(ctx, "alice-wonder", "correct-horse"))

	_, _, err := svc.Login(ctx, "alice-wonder", "wrong-horse!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody-here", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func Test_SignupDuplicateUsername(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assert.NoError(t, svc.Signup(ctx, "alice-wonder", "correct-horse"))
	err := svc.Signup(ctx, "Alice-Wonder", "another-pass")
	assert.ErrorIs(t, err, ErrDuplicate, "usernames are case-insensitive")
}

func Test_DeleteAccount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assert.NoError(t, svc.Signup(ctx, "alice-wonder", "correct-horse"))

	err := svc.Delete(ctx, "alice-wonder", "wrong-horse!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.NoError(t, svc.Delete(ctx, "alice-wonder", "correct-horse"))

	_, _, err = svc.Login(ctx, "alice-wonder", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func Test_TokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), "alice-wonder", time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func Test_TokenExpires(t *testing.T) {
	token, err := GenerateToken([]byte("secret"), "alice-wonder", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken([]byte("secret"), token)
	assert.Error(t, err)
}
