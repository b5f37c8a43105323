package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bimkeeper/internal/planner"
)

// ViewPlanRequest 工作集三维视图方案请求
type ViewPlanRequest struct {
	Template        string `json:"template"`        // 为空表示不套用样板
	ReleaseOverride bool   `json:"releaseOverride"` // 确认释放样板的工作集可见性控制
}

// PlanViews 为当前快照生成工作集三维视图方案
// POST /api/plans/views
func (h *Handler) PlanViews(c *gin.Context) {
	var req ViewPlanRequest
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

	worksets, err := h.store.GetWorksets(snapshotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	views, err := h.store.GetViews(snapshotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan, err := planner.BuildViewPlan(worksets, views, req.Template, req.ReleaseOverride)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrNoWorksets):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "文档中没有可用的用户工作集"})
		case errors.Is(err, planner.ErrTemplateNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "指定的视图样板不存在"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	planID, err := h.persistPlanRun(snapshotID, "views", req, plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"planId": planID, "plan": plan})
}
