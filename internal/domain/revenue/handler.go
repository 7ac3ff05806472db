package revenue

import (
	"net/http"
	"strconv"
	"time"

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
	api.GET("/revenues", h.History, auth.RequireRole(auth.RoleAdmin))
	api.GET("/revenues/report", h.MonthlyReport, auth.RequireRole(auth.RoleAdmin))
	api.GET("/revenues/earnings", h.Earnings, auth.RequireRole(auth.RoleDoctor))
}

// History lists the stored monthly aggregates, narrowed by ?doctor_id or
// ?hospital_id when given.
func (h *Handler) History(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		revenues []*Revenue
		err      error
	)
	if doctorID := c.QueryParam("doctor_id"); doctorID != "" {
		revenues, err = h.svc.HistoryByDoctor(ctx, doctorID)
	} else {
		revenues, err = h.svc.History(ctx, c.QueryParam("hospital_id"))
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, revenues)
}

// MonthlyReport derives the aggregate for ?hospital_id, defaulting to the
// current month when year/month are not given.
func (h *Handler) MonthlyReport(c echo.Context) error {
	hospitalID := c.QueryParam("hospital_id")
	if hospitalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hospital_id is required")
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if v := c.QueryParam("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = y
	}
	if v := c.QueryParam("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid month")
		}
		month = m
	}

	report, err := h.svc.MonthlyReport(c.Request().Context(), hospitalID, year, month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, report)
}

// Earnings returns the calling doctor's per-hospital income. Admins may
// inspect any doctor via ?doctor_id.
func (h *Handler) Earnings(c echo.Context) error {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	doctorID := user.ID
	if user.Role == auth.RoleAdmin {
		if v := c.QueryParam("doctor_id"); v != "" {
			doctorID = v
		}
	}

	earnings, err := h.svc.DoctorEarnings(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, earnings)
}
