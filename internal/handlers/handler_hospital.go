package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/dto"
	"github.com/CareSetu/health_portal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// hospitalHandler handles hospital directory requests.
type hospitalHandler struct {
	hospitalService portssvc.HospitalSvcFacade
}

func newHospitalHandler(hs portssvc.HospitalSvcFacade) *hospitalHandler {
	return &hospitalHandler{hospitalService: hs}
}

// registerHospitalRoutes sets up the routes for the hospital directory. The
// group is expected to carry the session auth middleware.
func registerHospitalRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newHospitalHandler(services.Hospital)

	hospitals := rg.Group("/hospitals")
	{
		hospitals.GET("/states", h.listStates)
		hospitals.GET("/districts", h.listDistricts)
		hospitals.GET("", h.searchHospitals)
		hospitals.POST("", h.createHospital)
		hospitals.GET("/:id", h.getHospital)
		hospitals.PUT("/:id/beds", h.updateBeds)
	}
}

// listStates godoc
// @Summary List states
// @Description Lists the distinct states that have hospitals in the directory.
// @Tags hospitals
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse
// @Router /hospitals/states [get]
// @Security SessionAuth
func (h *hospitalHandler) listStates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	states, err := h.hospitalService.ListStates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list states", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list states"})
		return
	}

	c.JSON(http.StatusOK, states)
}

// listDistricts godoc
// @Summary List districts
// @Description Lists the distinct districts of a state that have hospitals.
// @Tags hospitals
// @Produce json
// @Param state query string true "State name"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hospitals/districts [get]
// @Security SessionAuth
func (h *hospitalHandler) listDistricts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state := c.Query("state")
	if state == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter 'state' is required"})
		return
	}

	districts, err := h.hospitalService.ListDistricts(c.Request.Context(), state)
	if err != nil {
		logger.Error("Failed to list districts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list districts"})
		return
	}

	c.JSON(http.StatusOK, districts)
}

// searchHospitals godoc
// @Summary Search hospitals
// @Description Searches the directory by state, district and name prefix.
// @Tags hospitals
// @Produce json
// @Param state query string false "State filter"
// @Param district query string false "District filter"
// @Param name query string false "Case-insensitive name prefix"
// @Param limit query int false "Max results (default 20)"
// @Success 200 {array} dto.HospitalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hospitals [get]
// @Security SessionAuth
func (h *hospitalHandler) searchHospitals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SearchHospitalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	hospitals, err := h.hospitalService.SearchHospitals(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to search hospitals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to search hospitals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHospitalListResponse(hospitals))
}

// getHospital godoc
// @Summary Get hospital
// @Description Retrieves one hospital by ID.
// @Tags hospitals
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} dto.HospitalResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hospitals/{id} [get]
// @Security SessionAuth
func (h *hospitalHandler) getHospital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hospital, err := h.hospitalService.GetHospital(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Hospital not found"})
			return
		}
		logger.Error("Failed to get hospital", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get hospital"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHospitalResponse(hospital))
}

// createHospital godoc
// @Summary Create hospital
// @Description Registers a hospital in the directory (hospital-admin action).
// @Tags hospitals
// @Accept json
// @Produce json
// @Param hospital body dto.CreateHospitalRequest true "Hospital info"
// @Success 201 {object} dto.HospitalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hospitals [post]
// @Security SessionAuth
func (h *hospitalHandler) createHospital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	hospital, err := h.hospitalService.CreateHospital(c.Request.Context(), req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Only hospital administrators may register hospitals"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create hospital", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create hospital"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToHospitalResponse(hospital))
}

// updateBeds godoc
// @Summary Update bed availability
// @Description Updates a hospital's bed counts. Only the hospital's own admin may call this.
// @Tags hospitals
// @Accept json
// @Produce json
// @Param id path string true "Hospital ID"
// @Param beds body dto.UpdateBedsRequest true "Bed counts"
// @Success 200 {object} dto.HospitalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hospitals/{id}/beds [put]
// @Security SessionAuth
func (h *hospitalHandler) updateBeds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.UpdateBedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	hospital, err := h.hospitalService.UpdateBeds(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "You may only update your own hospital"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Hospital not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update beds", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update beds"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToHospitalResponse(hospital))
}
