package session

import (
	"testing"

	"go-devconnect-cli/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Current()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	sess := models.Session{AccessToken: "abc123", RefreshToken: "def456"}
	user := models.Profile{ID: "u-1", Email: "dev@example.com", UserType: models.UserTypeDeveloper}
	require.NoError(t, store.Save(sess, user))

	got, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.AccessToken)

	gotUser, err := store.User()
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", gotUser.Email)

	require.NoError(t, store.Clear())
	_, err = store.Current()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClearWithoutSession(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.NoError(t, store.Clear())
}

func TestRoleFromTokenClaims(t *testing.T) {
	store := NewStore(t.TempDir())

	token := signedToken(t, jwt.MapClaims{
		"sub":       "user-42",
		"user_type": "company",
	})
	require.NoError(t, store.Save(models.Session{AccessToken: token}, models.Profile{}))

	role, err := store.Role()
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeCompany, role)

	userID, err := store.UserID()
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestRoleFromNestedMetadata(t *testing.T) {
	store := NewStore(t.TempDir())

	token := signedToken(t, jwt.MapClaims{
		"sub": "user-7",
		"user_metadata": map[string]interface{}{
			"user_type": "developer",
		},
	})
	require.NoError(t, store.Save(models.Session{AccessToken: token}, models.Profile{}))

	role, err := store.Role()
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeDeveloper, role)
}

// an opaque token falls back to the profile captured at login
func TestRoleFallsBackToProfile(t *testing.T) {
	store := NewStore(t.TempDir())

	sess := models.Session{AccessToken: "not-a-jwt"}
	user := models.Profile{ID: "u-9", UserType: models.UserTypeDeveloper}
	require.NoError(t, store.Save(sess, user))

	role, err := store.Role()
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeDeveloper, role)

	userID, err := store.UserID()
	require.NoError(t, err)
	assert.Equal(t, "u-9", userID)
}

func TestRoleWithoutSession(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Role()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
