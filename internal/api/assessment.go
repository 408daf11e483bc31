package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/vexine/backend/internal/service"
	"github.com/pageza/vexine/backend/internal/types"
)

// AssessmentHandler exposes the assessment pipeline over HTTP.
type AssessmentHandler struct {
	assessmentService service.IAssessmentService
}

func NewAssessmentHandler(assessmentService service.IAssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
	}
}

func (h *AssessmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/options", h.Options)
	router.POST("/metrics", h.Metrics)
	router.POST("/recommendations", h.Recommendations)
	router.POST("/assessments", h.Assess)
}

// Options returns the selectable values, form defaults and numeric ranges.
func (h *AssessmentHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, types.NewOptionsResponse())
}

func (h *AssessmentHandler) Metrics(c *gin.Context) {
	var req types.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := req.Profile()
	if err != nil {
		respondProfileError(c, err)
		return
	}

	metrics, err := h.assessmentService.Metrics(c.Request.Context(), profile)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *AssessmentHandler) Recommendations(c *gin.Context) {
	var req types.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body"})
		return
	}

	recs := h.assessmentService.Recommend(c.Request.Context(), req.Selector())
	c.JSON(http.StatusOK, recs)
}

func (h *AssessmentHandler) Assess(c *gin.Context) {
	var req types.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := req.Profile()
	if err != nil {
		respondProfileError(c, err)
		return
	}

	assessment, err := h.assessmentService.Assess(c.Request.Context(), profile)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

func respondProfileError(c *gin.Context, err error) {
	var rangeErr *types.RangeError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: service.ErrInvalidInput.Error()})
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: rangeErr.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to compute assessment"})
	}
}
