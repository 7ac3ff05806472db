package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// LoginHandler implements the demo login flow: any email/password pair is
// accepted and a user record is fabricated for the requested role. The only
// thing validated is the role itself.
type LoginHandler struct {
	issuer *TokenIssuer
	delay  time.Duration
}

// NewLoginHandler creates a login handler. delay reproduces the source
// demo's simulated authentication latency and may be zero.
func NewLoginHandler(issuer *TokenIssuer, delay time.Duration) *LoginHandler {
	return &LoginHandler{issuer: issuer, delay: delay}
}

func (h *LoginHandler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login handles POST /auth/login.
func (h *LoginHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	role, err := ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		}
	}

	user := FabricateUser(req.Email, role)
	token, err := h.issuer.Issue(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// FabricateUser builds the mock identity for a role. IDs line up with the
// seeded demo records so the role dashboards resolve to real data.
func FabricateUser(email string, role Role) User {
	user := User{Email: email, Role: role}
	switch role {
	case RoleAdmin:
		user.ID = "1"
		user.Name = "Hospital Administrator"
		user.HospitalID = "hospital-1"
	case RoleDoctor:
		user.ID = "doctor-1"
		user.Name = "Dr. Sarah Johnson"
		user.HospitalID = "hospital-1"
	case RolePatient:
		user.ID = "patient-1"
		user.Name = "John Patient"
	}
	return user
}
