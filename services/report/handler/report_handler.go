package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"match-night/internal/matching"
	model "match-night/internal/models"
	"match-night/services/helpers"
	"match-night/utils"

	"github.com/gin-gonic/gin"
)

type PipelineInterface interface {
	Run(sessionID string, policy matching.Policy) (int, error)
	MatchesForSubject(sessionID, subjectID string) (matching.MatchSet, error)
}

type MaterializerInterface interface {
	Materialize(sessionID string) (int, error)
	GetSnapshot(userID, sessionID, reportType string) (model.ReportSnapshot, error)
	GetSnapshotByToken(token string) (model.ReportSnapshot, error)
}

type ReportHandler struct {
	pipeline     PipelineInterface
	materializer MaterializerInterface
}

func NewReportHandler(pipeline PipelineInterface, materializer MaterializerInterface) *ReportHandler {
	return &ReportHandler{pipeline: pipeline, materializer: materializer}
}

type RunPipelineRequest struct {
	Policy string `json:"policy"`
}

// SnapshotResponse carries the frozen payload and, for the aggregate type,
// the share token.
type SnapshotResponse struct {
	UserID     string          `json:"user_id,omitempty"`
	ReportType string          `json:"report_type"`
	Payload    json.RawMessage `json:"payload"`
	ShareToken string          `json:"share_token,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

// RunPipelineHandler handles POST /admin/sessions/:session_id/pipeline
func (h *ReportHandler) RunPipelineHandler(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req RunPipelineRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "RunPipelineHandler", err)
			return
		}
	}

	created, err := h.pipeline.Run(sessionID, matching.Policy(req.Policy))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RunPipelineHandler: pipeline run failed", map[string]any{
			"session_id": sessionID,
			"policy":     req.Policy,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"matches_created": created}, "match pipeline completed")
	helpers.LogSuccess("RunPipelineHandler", "match pipeline completed", map[string]any{
		"session_id":      sessionID,
		"matches_created": created,
	})
}

// MaterializeHandler handles POST /admin/sessions/:session_id/snapshots
func (h *ReportHandler) MaterializeHandler(c *gin.Context) {
	sessionID := c.Param("session_id")

	count, err := h.materializer.Materialize(sessionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("MaterializeHandler: materialization failed", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"count": count}, "snapshots materialized")
	helpers.LogSuccess("MaterializeHandler", "snapshots materialized", map[string]any{
		"session_id": sessionID,
		"count":      count,
	})
}

// GetMatchesHandler handles GET /matches/:user_id?session_id=
func (h *ReportHandler) GetMatchesHandler(c *gin.Context) {
	userID := c.Param("user_id")
	sessionID := c.Query("session_id")

	set, err := h.pipeline.MatchesForSubject(sessionID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMatchesHandler: error retrieving matches", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if set.Records == nil {
		set.Records = []model.MatchRecord{}
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"matches":   set.Records,
		"remaining": set.Remaining,
	}, "matches retrieved successfully")
}

// GetReportHandler handles GET /reports/:user_id?session_id=&type=
func (h *ReportHandler) GetReportHandler(c *gin.Context) {
	userID := c.Param("user_id")
	sessionID := c.Query("session_id")
	reportType := c.DefaultQuery("type", model.ReportAggregate)

	s, err := h.materializer.GetSnapshot(userID, sessionID, reportType)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetReportHandler: error retrieving report", map[string]any{
			"user_id":     userID,
			"report_type": reportType,
			"error":       err.Error(),
		})
		return
	}

	resp := SnapshotResponse{
		UserID:     s.UserID,
		ReportType: s.ReportType,
		Payload:    json.RawMessage(s.Payload),
		ShareToken: s.ShareToken,
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "report retrieved successfully")
}

// GetSharedReportHandler handles GET /shared/:token. The owner's user ID is
// omitted: the token grants anonymous read access to the payload only.
func (h *ReportHandler) GetSharedReportHandler(c *gin.Context) {
	token := c.Param("token")

	s, err := h.materializer.GetSnapshotByToken(token)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetSharedReportHandler: error resolving token", map[string]any{"error": err.Error()})
		return
	}

	resp := SnapshotResponse{
		ReportType: s.ReportType,
		Payload:    json.RawMessage(s.Payload),
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "shared report retrieved successfully")
}
