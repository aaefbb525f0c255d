package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  uint(7),
		"role": "faculty",
		"name": "A. Verma",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func runAuth(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/student/attendance", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := RequireAuth(testSecret)(next)(c)
	return c, rec, err
}

func TestRequireAuthAttachesPrincipal(t *testing.T) {
	token := signTestToken(t, testSecret, time.Hour)
	c, rec, err := runAuth(t, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), c.Get("user_id"))
	assert.Equal(t, "faculty", c.Get("role"))
	assert.Equal(t, "A. Verma", c.Get("name"))
}

func TestRequireAuthRejections(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not.a.token",
		"wrong secret":   "Bearer " + signTestToken(t, "other", time.Hour),
		"expired":        "Bearer " + signTestToken(t, testSecret, -time.Minute),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := runAuth(t, header)
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	newCtx := func(role string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set("role", role)
		return c
	}

	require.NoError(t, RequireRole("faculty", "admin")(next)(newCtx("faculty")))
	require.NoError(t, RequireRole("faculty", "admin")(next)(newCtx("ADMIN")))

	err := RequireRole("admin")(next)(newCtx("student"))
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)

	err = RequireRole("admin")(next)(newCtx(""))
	require.Error(t, err)
}
