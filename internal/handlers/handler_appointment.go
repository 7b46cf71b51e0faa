package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/dto"
	"github.com/CareSetu/health_portal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// appointmentHandler handles appointment requests.
type appointmentHandler struct {
	appointmentService portssvc.AppointmentSvcFacade
}

func newAppointmentHandler(as portssvc.AppointmentSvcFacade) *appointmentHandler {
	return &appointmentHandler{appointmentService: as}
}

// registerAppointmentRoutes sets up the routes for appointments. The group is
// expected to carry the session auth middleware.
func registerAppointmentRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAppointmentHandler(services.Appointment)

	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.createAppointment)
		appointments.GET("", h.listAppointments)
		appointments.GET("/:id", h.getAppointment)
		appointments.PATCH("/:id", h.updateAppointment)
	}
}

// createAppointment godoc
// @Summary Book appointment
// @Description Books an appointment at a hospital for the requesting patient.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body dto.CreateAppointmentRequest true "Appointment info"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Hospital not found"
// @Failure 500 {object} ErrorResponse
// @Router /appointments [post]
// @Security SessionAuth
func (h *appointmentHandler) createAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Only patients may book appointments"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Hospital not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create appointment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(appointment))
}

// listAppointments godoc
// @Summary List appointments
// @Description Lists the requester's own appointments, or a hospital's
// @Description appointments when hospitalID is given (admin only).
// @Tags appointments
// @Produce json
// @Param hospitalID query string false "List for this hospital instead (admin only)"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.AppointmentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /appointments [get]
// @Security SessionAuth
func (h *appointmentHandler) listAppointments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.ListAppointmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	var (
		appointments []domain.Appointment
		err          error
	)
	if hospitalID := c.Query("hospitalID"); hospitalID != "" {
		appointments, err = h.appointmentService.ListAppointmentsForHospital(c.Request.Context(), hospitalID, requestingUserID, params.Limit, params.Offset)
	} else {
		appointments, err = h.appointmentService.ListAppointmentsForUser(c.Request.Context(), requestingUserID, params.Limit, params.Offset)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "You may not view this hospital's appointments"})
			return
		}
		logger.Error("Failed to list appointments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list appointments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments))
}

// getAppointment godoc
// @Summary Get appointment
// @Description Retrieves one appointment, visible to its owner or the hospital's admin.
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /appointments/{id} [get]
// @Security SessionAuth
func (h *appointmentHandler) getAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), c.Param("id"), requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "You may not view this appointment"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Appointment not found"})
		default:
			logger.Error("Failed to get appointment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appointment))
}

// updateAppointment godoc
// @Summary Update appointment
// @Description Changes an appointment's status or schedule. Cancelled appointments are immutable.
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param appointment body dto.UpdateAppointmentRequest true "Changes"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /appointments/{id} [patch]
// @Security SessionAuth
func (h *appointmentHandler) updateAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	appointment, err := h.appointmentService.UpdateAppointment(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "You may not modify this appointment"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Appointment not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update appointment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appointment))
}
