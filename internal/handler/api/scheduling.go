package api

import (
	"net/http"

	"salon-scheduling/internal/domain/recurrence"
	reqdto "salon-scheduling/internal/handler/dto/request"
	resdto "salon-scheduling/internal/handler/dto/response"
	"salon-scheduling/internal/handler/httperr"
	"salon-scheduling/internal/pkg/errs"
	"salon-scheduling/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SchedulingHandler struct {
	q queries.SchedulingQueries
}

func NewSchedulingHandler(q queries.SchedulingQueries) *SchedulingHandler {
	return &SchedulingHandler{q: q}
}

// @Summary Check booking conflicts
// @Description Lists every reason a proposed booking should not be accepted as-is
// @Tags scheduling
// @Accept json
// @Produce json
// @Param request body reqdto.CheckConflictsRequest true "Booking candidate"
// @Success 200 {object} resdto.ConflictCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/scheduling/conflicts [post]
func (h *SchedulingHandler) CheckConflicts(c *gin.Context) {
	var req reqdto.CheckConflictsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.q.CheckConflicts(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictResult(result))
}

// @Summary Check a recurring series
// @Description Expands the recurrence and checks every occurrence for conflicts
// @Tags scheduling
// @Accept json
// @Produce json
// @Param request body reqdto.CheckSeriesRequest true "Booking candidate with recurrence"
// @Success 200 {object} resdto.SeriesCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/scheduling/series/conflicts [post]
func (h *SchedulingHandler) CheckSeries(c *gin.Context) {
	var req reqdto.CheckSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.q.CheckSeries(c.Request.Context(), req.ToSeriesRequest())
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	res, err := resdto.FromSeriesCheck(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Preview recurrence
// @Description Lists the dates a recurrence pattern produces, after exclusions
// @Tags recurrence
// @Accept json
// @Produce json
// @Param request body reqdto.PreviewRecurrenceRequest true "Start and pattern"
// @Success 200 {object} resdto.RecurrencePreviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/scheduling/recurrences/preview [post]
func (h *SchedulingHandler) PreviewRecurrence(c *gin.Context) {
	var req reqdto.PreviewRecurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	preview, err := h.q.PreviewRecurrence(c.Request.Context(), req.Start(), req.Recurrence.ToDomain(), req.ExcludedDates)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	res, err := resdto.FromRecurrencePreview(preview)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Validate recurrence
// @Description Reports the first rule a recurrence pattern violates
// @Tags recurrence
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateRecurrenceRequest true "Pattern"
// @Success 200 {object} resdto.ValidateRecurrenceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/scheduling/recurrences/validate [post]
func (h *SchedulingHandler) ValidateRecurrence(c *gin.Context) {
	var req reqdto.ValidateRecurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result := h.q.ValidateRecurrence(c.Request.Context(), req.Recurrence.ToDomain())
	c.JSON(http.StatusOK, resdto.FromValidation(result))
}

func abortWithQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrInvalidCandidate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking candidate", nil)
	case errs.Is(err, queries.ErrInvalidPattern):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, recurrence.ErrorMessage(err), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
