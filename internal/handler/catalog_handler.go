package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"citamed/internal/errors"
	"citamed/internal/model"
	"citamed/internal/service"
)

// CatalogHandler handles the specialty and doctor catalog endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// EspecialidadesResponse lists all specialties.
type EspecialidadesResponse struct {
	Success        bool              `json:"success"`
	Especialidades []model.Specialty `json:"especialidades"`
}

// DoctoresResponse lists the doctors of one specialty.
type DoctoresResponse struct {
	Success  bool                    `json:"success"`
	Doctores []service.DoctorSummary `json:"doctores"`
}

// ListEspecialidades godoc
// @Summary List all specialties
// @Tags catalogo
// @Produce json
// @Success 200 {object} EspecialidadesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /especialidades [get]
func (h *CatalogHandler) ListEspecialidades(c echo.Context) error {
	specialties, err := h.catalogService.ListEspecialidades(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, EspecialidadesResponse{
		Success:        true,
		Especialidades: specialties,
	})
}

// ListDoctores godoc
// @Summary List doctors of a specialty
// @Tags catalogo
// @Produce json
// @Param especialidad_id path int true "Specialty ID"
// @Success 200 {object} DoctoresResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /doctores/{especialidad_id} [get]
func (h *CatalogHandler) ListDoctores(c echo.Context) error {
	especialidadID, err := strconv.Atoi(c.Param("especialidad_id"))
	if err != nil || especialidadID <= 0 {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Success: false,
			Message: "Not Found",
		})
	}

	doctores, err := h.catalogService.ListDoctoresByEspecialidad(c.Request().Context(), uint(especialidadID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, DoctoresResponse{
		Success:  true,
		Doctores: doctores,
	})
}
