package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"citamed/internal/errors"
	"citamed/internal/service"
)

// AppointmentHandler handles booking and history endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// CreateCitaRequest represents a booking request. usuario_id is the user id,
// not the patient id; the patient row is resolved server-side.
type CreateCitaRequest struct {
	UsuarioID uint   `json:"usuario_id" validate:"required"`
	DoctorID  uint   `json:"doctor_id" validate:"required"`
	FechaHora string `json:"fecha_hora" validate:"required"`
	Motivo    string `json:"motivo"`
}

// CreateCitaResponse represents a successful booking.
type CreateCitaResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	CitaID  uint   `json:"cita_id"`
}

// CitasResponse lists a user's appointment history.
type CitasResponse struct {
	Success bool                      `json:"success"`
	Citas   []service.AppointmentView `json:"citas"`
}

// CreateCita godoc
// @Summary Book an appointment
// @Tags citas
// @Accept json
// @Produce json
// @Param request body CreateCitaRequest true "Booking data"
// @Success 200 {object} CreateCitaResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /citas [post]
func (h *AppointmentHandler) CreateCita(c echo.Context) error {
	var req CreateCitaRequest
	if err := c.Bind(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	citaID, err := h.appointmentService.Book(c.Request().Context(), req.UsuarioID, req.DoctorID, req.FechaHora, req.Motivo)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CreateCitaResponse{
		Success: true,
		Message: "Cita creada exitosamente",
		CitaID:  citaID,
	})
}

// MisCitas godoc
// @Summary Appointment history for a user
// @Tags citas
// @Produce json
// @Param usuario_id path int true "User ID"
// @Success 200 {object} CitasResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mis-citas/{usuario_id} [get]
func (h *AppointmentHandler) MisCitas(c echo.Context) error {
	usuarioID, err := strconv.Atoi(c.Param("usuario_id"))
	if err != nil || usuarioID <= 0 {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Success: false,
			Message: "Not Found",
		})
	}

	citas, err := h.appointmentService.History(c.Request().Context(), uint(usuarioID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CitasResponse{
		Success: true,
		Citas:   citas,
	})
}
