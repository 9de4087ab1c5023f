package api

import (
	"alcyxob/runtrack/internal/domain"
	"alcyxob/runtrack/internal/runlog"
	"alcyxob/runtrack/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RunHandler serves runs and daily goals.
type RunHandler struct {
	runService service.RunService
	today      func() time.Time
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(runService service.RunService) *RunHandler {
	return &RunHandler{runService: runService, today: runlog.Today}
}

// --- DTOs for API ---

// DistanceRequest is the body of both run and goal creation. Distance is
// text as typed by the user; Date defaults to today.
type DistanceRequest struct {
	Distance string `json:"distance" binding:"required"`
	Date     string `json:"date" binding:"omitempty"` // YYYY-MM-DD
}

type RunResponse struct {
	ID        string    `json:"id"`
	Distance  float64   `json:"distance"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type GoalResponse struct {
	ID       string  `json:"id"`
	Distance float64 `json:"distance"`
	Date     string  `json:"date"`
	Created  bool    `json:"created,omitempty"`
}

func MapRunToResponse(run *domain.RunRecord) RunResponse {
	if run == nil {
		return RunResponse{}
	}
	return RunResponse{
		ID:        run.ID.Hex(),
		Distance:  run.Distance,
		Date:      run.Date.Format(service.DateLayout),
		CreatedAt: run.CreatedAt,
	}
}

func MapRunsToResponse(runs []domain.RunRecord) []RunResponse {
	responses := make([]RunResponse, len(runs))
	for i := range runs {
		responses[i] = MapRunToResponse(&runs[i])
	}
	return responses
}

func MapGoalToResponse(goal *domain.GoalRecord) GoalResponse {
	if goal == nil {
		return GoalResponse{}
	}
	return GoalResponse{
		ID:       goal.ID.Hex(),
		Distance: goal.Distance,
		Date:     goal.Date.Format(service.DateLayout),
	}
}

func MapGoalsToResponse(goals []domain.GoalRecord) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i := range goals {
		responses[i] = MapGoalToResponse(&goals[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateRun godoc
// @Summary Record a run
// @Tags Runs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param run body DistanceRequest true "Run distance and date"
// @Success 201 {object} RunResponse
// @Failure 400 {object} gin.H "Invalid distance or date"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /runs [post]
func (h *RunHandler) CreateRun(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	date, err := service.ParseDate(req.Date, h.today())
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	run, err := h.runService.AddRun(c.Request.Context(), userID, req.Distance, date)
	if err != nil {
		abortWithServiceError(c, err, "Failed to record run.")
		return
	}
	c.JSON(http.StatusCreated, MapRunToResponse(run))
}

// ListRuns godoc
// @Summary List runs of the authenticated user
// @Tags Runs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RunResponse
// @Router /runs [get]
func (h *RunHandler) ListRuns(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	runs, err := h.runService.ListRuns(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve runs.")
		return
	}
	c.JSON(http.StatusOK, MapRunsToResponse(runs))
}

// DeleteRun godoc
// @Summary Delete a run
// @Tags Runs
// @Security BearerAuth
// @Param runId path string true "Run ID"
// @Success 204
// @Failure 404 {object} gin.H "Run not found"
// @Router /runs/{runId} [delete]
func (h *RunHandler) DeleteRun(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	runID, ok := pathObjectID(c, "runId")
	if !ok {
		return
	}
	if err := h.runService.DeleteRun(c.Request.Context(), userID, runID); err != nil {
		abortWithServiceError(c, err, "Failed to delete run.")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetGoal godoc
// @Summary Set the goal for a day
// @Description Creates the goal, or updates it when the day already has one.
// @Tags Goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param goal body DistanceRequest true "Goal distance and date"
// @Success 201 {object} GoalResponse "Goal created"
// @Success 200 {object} GoalResponse "Goal updated"
// @Failure 400 {object} gin.H "Invalid distance or date"
// @Router /goals [post]
func (h *RunHandler) SetGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	date, err := service.ParseDate(req.Date, h.today())
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	goal, created, err := h.runService.AddGoal(c.Request.Context(), userID, req.Distance, date)
	if err != nil {
		abortWithServiceError(c, err, "Failed to set goal.")
		return
	}

	resp := MapGoalToResponse(goal)
	resp.Created = created
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// ListGoals godoc
// @Summary List goals of the authenticated user
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} GoalResponse
// @Router /goals [get]
func (h *RunHandler) ListGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goals, err := h.runService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve goals.")
		return
	}
	c.JSON(http.StatusOK, MapGoalsToResponse(goals))
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags Goals
// @Security BearerAuth
// @Param goalId path string true "Goal ID"
// @Success 204
// @Failure 404 {object} gin.H "Goal not found"
// @Router /goals/{goalId} [delete]
func (h *RunHandler) DeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goalID, ok := pathObjectID(c, "goalId")
	if !ok {
		return
	}
	if err := h.runService.DeleteGoal(c.Request.Context(), userID, goalID); err != nil {
		abortWithServiceError(c, err, "Failed to delete goal.")
		return
	}
	c.Status(http.StatusNoContent)
}
