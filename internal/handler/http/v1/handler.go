package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/config"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/shenikar/incident_board/internal/service"
	"github.com/sirupsen/logrus"
)

// Раздел, на который клиент переключается после успешной отправки формы
const sectionIncidents = "incidents"

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Get the whole board
// @Description Get every projection of the board as last rendered: ticker, feed, moderation list, markers and summary.
// @Tags Board
// @Produce json
// @Success 200 {object} projection.Board
// @Router /board [get]
func (h *Handler) getBoard(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.Board(c.Request.Context()))
}

// @Summary Get high priority ticker
// @Tags Board
// @Produce json
// @Success 200 {array} projection.TickerEntry
// @Router /board/ticker [get]
func (h *Handler) getTicker(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.Board(c.Request.Context()).Ticker)
}

// @Summary Get feed under the active filter
// @Tags Board
// @Produce json
// @Success 200 {array} projection.FeedCard
// @Router /board/feed [get]
func (h *Handler) getFeed(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.Board(c.Request.Context()).Feed)
}

// @Summary Get moderation list
// @Tags Board
// @Produce json
// @Success 200 {array} projection.ModerationCard
// @Router /board/moderation [get]
func (h *Handler) getModeration(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.Board(c.Request.Context()).Moderation)
}

// @Summary Get map markers under the active filter
// @Tags Board
// @Produce json
// @Success 200 {array} projection.Marker
// @Router /board/markers [get]
func (h *Handler) getMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.Board(c.Request.Context()).Markers)
}

// @Summary Get board summary
// @Tags Board
// @Produce json
// @Success 200 {object} projection.Summary
// @Router /board/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.Board(c.Request.Context()).Summary)
}

// @Summary Get active filter
// @Tags Board
// @Produce json
// @Success 200 {object} FilterResponse
// @Router /board/filter [get]
func (h *Handler) getFilter(c *gin.Context) {
	c.JSON(http.StatusOK, FilterResponse{Filter: h.incidentService.Board(c.Request.Context()).Filter})
}

// @Summary Set active filter
// @Description Set the severity filter applied to the feed and the map. Moderation list and ticker are never filtered.
// @Tags Board
// @Accept json
// @Produce json
// @Param filter body SetFilterRequest true "Filter request"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /board/filter [put]
func (h *Handler) setFilter(c *gin.Context) {
	var input SetFilterRequest
	log := h.logger.WithField("method", "setFilter")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := models.ParseSeverityFilter(input.Severity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.incidentService.SetFilter(c.Request.Context(), filter)
	c.JSON(http.StatusOK, FilterResponse{Filter: filter})
}

// @Summary Submit a new incident
// @Description Submit the incident form. Blank fields get defaults, unparsable coordinates are dropped, unknown severity is rejected.
// @Tags Incidents
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param incident body SubmitIncidentRequest true "Incident submission form"
// @Success 201 {object} SubmitIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /incidents [post]
func (h *Handler) submitIncident(c *gin.Context) {
	var input SubmitIncidentRequest
	log := h.logger.WithField("method", "submitIncident")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.SubmitIncident(c.Request.Context(), DTOToSubmissionForm(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, SubmitIncidentResponse{
		Incident:    ModelToIncidentResponse(incident),
		NextSection: sectionIncidents,
	})
}

// @Summary Get a list of incidents
// @Description Get incidents in display order, optionally filtered by severity.
// @Tags Incidents
// @Produce json
// @Param severity query string false "Severity filter" Enums(all, mild, average, critical, alltime)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid severity"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	filter, err := models.ParseSeverityFilter(c.Query("severity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidents := h.incidentService.ListIncidents(c.Request.Context(), filter)
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Verify an incident
// @Description Increment the verified counter of an incident by one.
// @Tags Moderation
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/verify [post]
func (h *Handler) verifyIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "verifyIncident").WithField("id", id)

	incident, err := h.incidentService.VerifyIncident(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Flag an incident
// @Description Increment the flagged counter of an incident by one.
// @Tags Moderation
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/flag [post]
func (h *Handler) flagIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "flagIncident").WithField("id", id)

	incident, err := h.incidentService.FlagIncident(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Delete an incident
// @Description Remove an incident from the board. Other incidents keep their ids and order.
// @Tags Moderation
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.writeError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError переводит ошибки сервиса в HTTP-статусы
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrIncidentNotFound):
		log.WithError(err).Warn("Incident not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, models.ErrInvalidSeverity):
		log.WithError(err).Warn("Submission rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid severity: must be one of mild, average, critical, alltime"})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
