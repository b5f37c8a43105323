package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bimkeeper/internal/planner"
)

// ParameterPlanRequest 参数清理方案请求
type ParameterPlanRequest struct {
	SharedOnly bool     `json:"sharedOnly"` // 只核查共享参数
	Selected   []string `json:"selected"`   // 为空表示全部参数
}

// PlanParameters 为当前快照生成未使用参数清理方案
// POST /api/plans/parameters
func (h *Handler) PlanParameters(c *gin.Context) {
	var req ParameterPlanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
			return
		}
	}

	snapshotID, ok := h.currentSnapshotID(c)
	if !ok {
		return
	}

	params, err := h.store.GetParameters(snapshotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan := planner.BuildParameterPlan(params, req.SharedOnly, req.Selected)

	kind := "parameters"
	if req.SharedOnly {
		kind = "shared_parameters"
	}
	planID, err := h.persistPlanRun(snapshotID, kind, req, plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"planId": planID, "plan": plan})
}
