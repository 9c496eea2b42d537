package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops-be/internal/user"
)

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	identity := func(r *http.Request) (string, string, bool) {
		uid, ok := GetUserIDFromContext(r.Context())
		role, _ := r.Context().Value(UserRoleKey).(string)
		return uid, role, ok
	}

	t.Run("AttachesIdentityForValidToken", func(t *testing.T) {
		token, err := user.GenerateJWT("user-123", "admin", "admin@hotel.test")
		require.NoError(t, err)

		var gotID, gotRole string
		var gotOK bool
		h := AuthMiddleware("test-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, gotRole, gotOK = identity(r)
		}))

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, gotOK)
		assert.Equal(t, "user-123", gotID)
		assert.Equal(t, "admin", gotRole)
	})

	t.Run("MissingHeaderStaysAnonymous", func(t *testing.T) {
		var gotOK bool
		h := AuthMiddleware("test-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _, gotOK = identity(r)
		}))

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.False(t, gotOK)
	})

	t.Run("WrongSecretStaysAnonymous", func(t *testing.T) {
		token, err := user.GenerateJWT("user-789", "staff", "staff@hotel.test")
		require.NoError(t, err)

		var handlerRan, gotOK bool
		h := AuthMiddleware("some-other-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerRan = true
			_, _, gotOK = identity(r)
		}))

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, handlerRan)
		assert.False(t, gotOK)
	})
}
