package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/acadportal/AMSBackend/database"
	"github.com/acadportal/AMSBackend/models"
)

const tokenTTL = time.Hour

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint, role, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type registerReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /register creates an admin account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Email and password are required"})
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Email and password are required"})
	}

	var dup models.User
	if err := database.DB.Where("email = ?", req.Email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Email already exists"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
	}
	u := models.User{Email: req.Email, Password: string(hash)}
	if err := database.DB.Create(&u).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "User registered successfully"})
}

// POST /login signs a student in by email.
func (h *AuthHandler) StudentLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Email and password are required."})
	}

	var s models.Student
	if err := database.DB.Where("email = ?", strings.TrimSpace(strings.ToLower(req.Email))).First(&s).Error; err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(s.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Invalid credentials"})
	}

	token, err := h.signJWT(s.ID, "student", s.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error."})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token":     token,
		"expiresIn": int(tokenTTL.Seconds()),
		"message":   "Login successful.",
	})
}

// POST /faculty/login
func (h *AuthHandler) FacultyLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Email and password are required."})
	}

	var f models.Faculty
	if err := database.DB.Where("email = ?", strings.TrimSpace(strings.ToLower(req.Email))).First(&f).Error; err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(f.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Invalid credentials"})
	}

	token, err := h.signJWT(f.ID, "faculty", f.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error."})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token":     token,
		"expiresIn": int(tokenTTL.Seconds()),
		"message":   "Faculty login successful.",
	})
}

// POST /admin/login
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Email and password are required."})
	}

	var u models.User
	if err := database.DB.Where("email = ?", strings.TrimSpace(strings.ToLower(req.Email))).First(&u).Error; err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Invalid admin credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"message": "Invalid admin credentials"})
	}

	token, err := h.signJWT(u.ID, "admin", u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error."})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token":     token,
		"expiresIn": int(tokenTTL.Seconds()),
		"message":   "Admin login successful.",
	})
}
