package handlers

import (
	"errors"
	"net/http"

	"portfolio-dispatch/internal/api/models"
	"portfolio-dispatch/internal/dispatch"
	"portfolio-dispatch/internal/model"
	"portfolio-dispatch/internal/solver"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OptimizeHandler handles optimization requests.
type OptimizeHandler struct {
	// newSolver builds the per-request solver from the request options.
	newSolver func(solver.Options) solver.Solver
}

func NewOptimizeHandler() *OptimizeHandler {
	return &OptimizeHandler{
		newSolver: func(opts solver.Options) solver.Solver {
			return solver.NewHiGHS(opts)
		},
	}
}

// Optimize handles POST /api/v1/optimize. Each request builds, solves, and
// extracts a fresh model; nothing is retained between requests.
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	sys, err := req.System.ToSystem()
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_SYSTEM", err)
		return
	}

	opt := dispatch.New(h.newSolver(solver.Options{
		TimeLimitSeconds: req.Options.TimeLimitSeconds,
	}))
	sched, err := opt.Optimize(sys)
	if err != nil {
		status, code := classifyError(err)
		writeError(c, status, code, err)
		return
	}

	c.JSON(http.StatusOK, models.FromSchedule(uuid.NewString(), sched))
}

// Validate handles POST /api/v1/validate: full validation including the
// cross-reference checks, without solving.
func (h *OptimizeHandler) Validate(c *gin.Context) {
	var req models.SystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	sys, err := req.ToSystem()
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, "INVALID_SYSTEM", err)
		return
	}
	if err := sys.Validate(); err != nil {
		writeError(c, http.StatusUnprocessableEntity, "INVALID_SYSTEM", err)
		return
	}
	if _, err := dispatch.Build(sys); err != nil {
		writeError(c, http.StatusUnprocessableEntity, "INVALID_SYSTEM", err)
		return
	}

	c.JSON(http.StatusOK, models.ValidateResponse{Valid: true})
}

func classifyError(err error) (int, string) {
	var (
		validationErr *model.ValidationError
		configErr     *model.ConfigError
		solveErr      *solver.SolveError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR"
	case errors.As(err, &configErr):
		return http.StatusUnprocessableEntity, "CONFIGURATION_ERROR"
	case errors.As(err, &solveErr):
		return http.StatusConflict, "SOLVE_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func writeError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
