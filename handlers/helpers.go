package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// shared request-DTO validator
var validate = validator.New()

// atoiOr parses s, falling back to def when it is empty or malformed.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// principalID reads the authenticated subject id attached by the auth middleware.
func principalID(c echo.Context) uint {
	switch v := c.Get("user_id").(type) {
	case uint:
		return v
	case int:
		return uint(v)
	default:
		return 0
	}
}
