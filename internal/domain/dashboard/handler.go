package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medboard/medboard/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard/admin", h.Admin, auth.RequireRole(auth.RoleAdmin))
	api.GET("/dashboard/doctor", h.Doctor, auth.RequireRole(auth.RoleDoctor))
	api.GET("/dashboard/patient", h.Patient, auth.RequireRole(auth.RolePatient))
}

// Admin serves the caller's hospital summary; ?hospital_id overrides the
// hospital carried in the session.
func (h *Handler) Admin(c echo.Context) error {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	hospitalID := user.HospitalID
	if v := c.QueryParam("hospital_id"); v != "" {
		hospitalID = v
	}
	if hospitalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hospital_id is required")
	}

	summary, err := h.svc.AdminSummary(c.Request().Context(), hospitalID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) Doctor(c echo.Context) error {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	summary, err := h.svc.DoctorSummary(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) Patient(c echo.Context) error {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	summary, err := h.svc.PatientSummary(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}
