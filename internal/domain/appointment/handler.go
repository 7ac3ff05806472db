package appointment

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medboard/medboard/internal/platform/auth"
	"github.com/medboard/medboard/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments", h.Book, auth.RequireRole(auth.RolePatient))
	api.GET("/appointments", h.List)
	api.GET("/appointments/:id", h.Get)
	api.PATCH("/appointments/:id", h.Update, auth.RequireRole(auth.RoleDoctor))
	api.POST("/appointments/:id/cancel", h.Cancel)
}

// httpError maps the package's error kinds onto status codes: validation
// 400, not found 404, conflict 409.
func httpError(err error) error {
	switch {
	case errors.Is(err, ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) Book(c echo.Context) error {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	// Patients always book for themselves.
	req.PatientID = user.ID

	a, err := h.svc.Book(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Get(c echo.Context) error {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	a, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !canSee(user, a) {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, a)
}

// List scopes results to the caller's role: patients see their own
// appointments, doctors their schedule, admins everything (optionally
// filtered by hospital_id or doctor_id).
func (h *Handler) List(c echo.Context) error {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	ctx := c.Request().Context()

	var (
		appointments []*Appointment
		err          error
	)
	switch user.Role {
	case auth.RolePatient:
		appointments, err = h.svc.ListByPatient(ctx, user.ID)
	case auth.RoleDoctor:
		appointments, err = h.svc.ListByDoctor(ctx, user.ID)
	default:
		if hospitalID := c.QueryParam("hospital_id"); hospitalID != "" {
			appointments, err = h.svc.ListByHospital(ctx, hospitalID)
		} else if doctorID := c.QueryParam("doctor_id"); doctorID != "" {
			appointments, err = h.svc.ListByDoctor(ctx, doctorID)
		} else {
			appointments, err = h.svc.List(ctx)
		}
	}
	if err != nil {
		return httpError(err)
	}

	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(appointments))
	return c.JSON(http.StatusOK, pagination.NewResponse(appointments[lo:hi], len(appointments), pg.Limit, pg.Offset))
}

func (h *Handler) Update(c echo.Context) error {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if user.Role == auth.RoleDoctor && a.DoctorID != user.ID {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}

	updated, err := h.svc.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) Cancel(c echo.Context) error {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	actorID := user.ID
	if user.Role == auth.RoleAdmin {
		actorID = ""
	}
	a, err := h.svc.Cancel(c.Request().Context(), c.Param("id"), actorID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func canSee(user *auth.User, a *Appointment) bool {
	switch user.Role {
	case auth.RolePatient:
		return a.PatientID == user.ID
	case auth.RoleDoctor:
		return a.DoctorID == user.ID
	default:
		return true
	}
}
