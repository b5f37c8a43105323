package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bimkeeper/internal/store"
)

// persistPlanRun 持久化一次方案运行，返回运行 ID
func (h *Handler) persistPlanRun(snapshotID int64, kind string, options, result any) (string, error) {
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return "", err
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", err
	}

	run := store.PlanRun{
		ID:          uuid.NewString(),
		SnapshotID:  snapshotID,
		Kind:        kind,
		OptionsJSON: string(optionsJSON),
		ResultJSON:  string(resultJSON),
	}
	if err := h.store.CreatePlanRun(run); err != nil {
		return "", err
	}
	return run.ID, nil
}

// ListPlans 列出当前快照的方案运行记录
// GET /api/plans
func (h *Handler) ListPlans(c *gin.Context) {
	snapshotID, ok := h.currentSnapshotID(c)
	if !ok {
		return
	}

	runs, err := h.store.ListPlanRuns(snapshotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": runs})
}

// GetPlan 按 ID 读取方案运行记录（宿主插件拉取执行清单用）
// GET /api/plans/:id
func (h *Handler) GetPlan(c *gin.Context) {
	run, err := h.store.GetPlanRun(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrPlanRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "方案不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// options/result 原样展开为 JSON 对象，避免双重编码
	c.JSON(http.StatusOK, gin.H{
		"id":         run.ID,
		"snapshotId": run.SnapshotID,
		"kind":       run.Kind,
		"options":    json.RawMessage(run.OptionsJSON),
		"result":     json.RawMessage(run.ResultJSON),
		"createdAt":  run.CreatedAt,
	})
}
