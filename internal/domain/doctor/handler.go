package doctor

import (
	"errors"
	"net/http"
	"time"

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
	api.GET("/doctors", h.List)
	api.GET("/doctors/specializations", h.Specializations)
	api.GET("/doctors/booking-dates", h.BookingDates)
	api.GET("/doctors/day-slots", h.DaySlots)
	api.GET("/doctors/:id", h.Get)
	api.GET("/doctors/:id/availability", h.Availability)
	api.POST("/doctors", h.Create, auth.RequireRole(auth.RoleAdmin))
}

func (h *Handler) Create(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) Get(c echo.Context) error {
	d, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

// List handles GET /doctors. With q or specialization params it performs
// the booking flow's doctor search.
func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)

	term := c.QueryParam("q")
	specialization := c.QueryParam("specialization")

	var (
		doctors []*Doctor
		err     error
	)
	if term != "" || specialization != "" {
		doctors, err = h.svc.Search(c.Request().Context(), term, specialization)
	} else {
		doctors, err = h.svc.List(c.Request().Context())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	lo, hi := pg.Slice(len(doctors))
	return c.JSON(http.StatusOK, pagination.NewResponse(doctors[lo:hi], len(doctors), pg.Limit, pg.Offset))
}

func (h *Handler) Specializations(c echo.Context) error {
	specs, err := h.svc.Specializations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if specs == nil {
		specs = []string{}
	}
	return c.JSON(http.StatusOK, specs)
}

// BookingDates handles GET /doctors/booking-dates.
func (h *Handler) BookingDates(c echo.Context) error {
	dates := h.svc.BookingDates(time.Now())
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return c.JSON(http.StatusOK, out)
}

// DaySlots handles GET /doctors/day-slots: the workday's slot grid the
// booking UI renders before a doctor is chosen.
func (h *Handler) DaySlots(c echo.Context) error {
	slots := h.svc.DaySlots()
	if slots == nil {
		slots = []string{}
	}
	return c.JSON(http.StatusOK, slots)
}

type availabilityResponse struct {
	DoctorID string   `json:"doctor_id"`
	Date     string   `json:"date"`
	Times    []string `json:"times"`
}

// Availability handles GET /doctors/:id/availability?date=YYYY-MM-DD.
func (h *Handler) Availability(c echo.Context) error {
	dateStr := c.QueryParam("date")
	if dateStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date format, want YYYY-MM-DD")
	}

	times, err := h.svc.Availability(c.Request().Context(), c.Param("id"), date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if times == nil {
		times = []string{}
	}

	return c.JSON(http.StatusOK, availabilityResponse{
		DoctorID: c.Param("id"),
		Date:     dateStr,
		Times:    times,
	})
}
