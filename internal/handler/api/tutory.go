package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "tutorlink/internal/handler/dto/request"
	resdto "tutorlink/internal/handler/dto/response"
	"tutorlink/internal/handler/httperr"
	"tutorlink/internal/handler/middleware"
	"tutorlink/internal/infra"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TutoryHandler struct {
	tutoryCommands commands.TutoryCommands
	tutoryQueries  queries.TutoryQueries
	reviewQueries  queries.ReviewQueries
	subjectQueries queries.SubjectQueries
}

func NewTutoryHandler(
	tutoryCommands commands.TutoryCommands,
	tutoryQueries queries.TutoryQueries,
	reviewQueries queries.ReviewQueries,
	subjectQueries queries.SubjectQueries,
) *TutoryHandler {
	return &TutoryHandler{
		tutoryCommands: tutoryCommands,
		tutoryQueries:  tutoryQueries,
		reviewQueries:  reviewQueries,
		subjectQueries: subjectQueries,
	}
}

// @Summary Create tutory
// @Description Create a tutoring offering with a weekly availability template
// @Tags tutories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTutoryRequest true "Tutory request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tutories [post]
func (h *TutoryHandler) Create(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateTutoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.tutoryCommands.CreateTutory(c.Request.Context(), tutorID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSubjectNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Subject not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tutory data", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update tutory
// @Description Partially update an owned tutory
// @Tags tutories
// @Accept json
// @Security BearerAuth
// @Param id path string true "Tutory ID"
// @Param request body reqdto.UpdateTutoryRequest true "Update request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tutories/{id} [patch]
func (h *TutoryHandler) Update(c *gin.Context) {
	tutorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	tutoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateTutoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.tutoryCommands.UpdateTutory(c.Request.Context(), tutorID, tutoryID, req.ToInput()); err != nil {
		switch {
		case errors.Is(err, commands.ErrTutoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tutory not found", nil)
		case errors.Is(err, commands.ErrNotTutoryOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tutory data", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Search tutories
// @Description Public search across enabled tutories
// @Tags tutories
// @Produce json
// @Param subject query string false "Subject ID"
// @Param category query string false "Subject category"
// @Param lesson_type query string false "online or offline"
// @Param q query string false "Free-text match on tutory or tutor name"
// @Success 200 {array} resdto.TutoryListItemResponse
// @Router /tutories [get]
func (h *TutoryHandler) Search(c *gin.Context) {
	var filters queries.TutorySearchFilters

	if s := c.Query("subject"); s != "" {
		subjectID, err := uuid.Parse(s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid subject id", nil)
			return
		}
		filters.SubjectID = &subjectID
	}
	if s := c.Query("category"); s != "" {
		filters.Category = &s
	}
	if s := c.Query("lesson_type"); s != "" {
		filters.LessonType = &s
	}
	if s := c.Query("q"); s != "" {
		filters.Query = &s
	}

	items, err := h.tutoryQueries.Search(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search tutories", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTutoryListItems(items))
}

// @Summary Tutory detail
// @Tags tutories
// @Produce json
// @Param id path string true "Tutory ID"
// @Success 200 {object} resdto.TutoryResponse
// @Failure 404 {object} httperr.Response
// @Router /tutories/{id} [get]
func (h *TutoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.tutoryQueries.GetDetail(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tutory not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tutory", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTutoryView(view))
}

// @Summary Tutory availability
// @Description Expand the weekly template into bookable instants over the window
// @Tags tutories
// @Produce json
// @Param id path string true "Tutory ID"
// @Param days query int false "Window in days, 7 or 14" default(14)
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tutories/{id}/availability [get]
func (h *TutoryHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	days := 14
	if s := c.Query("days"); s != "" {
		parsed, convErr := strconv.Atoi(s)
		if convErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, convErr, "Invalid days parameter", nil)
			return
		}
		days = parsed
	}

	instants, err := h.tutoryQueries.Availability(c.Request.Context(), id, days)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidWindowRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Window must be 7 or 14 days", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tutory not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		TutoryID:   id,
		WindowDays: days,
		Instants:   instants,
	})
}

// @Summary Tutory reviews
// @Tags tutories
// @Produce json
// @Param id path string true "Tutory ID"
// @Success 200 {array} resdto.ReviewResponse
// @Router /tutories/{id}/reviews [get]
func (h *TutoryHandler) Reviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	views, err := h.reviewQueries.ListByTutory(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary List subjects
// @Tags subjects
// @Produce json
// @Success 200 {array} resdto.SubjectResponse
// @Router /subjects [get]
func (h *TutoryHandler) Subjects(c *gin.Context) {
	views, err := h.subjectQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load subjects", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubjectViews(views))
}
