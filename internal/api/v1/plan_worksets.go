package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bimkeeper/internal/planner"
)

// WorksetPlanRequest 链接工作集方案请求
// 指针字段未给出时使用命名默认项
type WorksetPlanRequest struct {
	Prefix            *string `json:"prefix"`
	IncludeOriginator *bool   `json:"includeOriginator"`
	IncludeZone       *bool   `json:"includeZone"`
}

// PlanWorksets 为当前快照生成链接工作集整理方案
// POST /api/plans/worksets
func (h *Handler) PlanWorksets(c *gin.Context) {
	var req WorksetPlanRequest
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

	snap, err := h.store.GetSnapshot(snapshotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	links, err := h.store.GetLinks(snapshotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	worksets, err := h.store.GetWorksets(snapshotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	opts := h.namingDefaults()
	if req.Prefix != nil && *req.Prefix != "" {
		opts.Prefix = *req.Prefix
	}
	if req.IncludeOriginator != nil {
		opts.IncludeOriginator = *req.IncludeOriginator
	}
	if req.IncludeZone != nil {
		opts.IncludeZone = *req.IncludeZone
	}

	plan, err := planner.BuildWorksetPlan(snap.Document, links, worksets, opts)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrNoLinks):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "快照中没有 Revit 链接"})
		case errors.Is(err, planner.ErrWorksharingUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "文档未开启协作且无法开启，无法整理工作集"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	planID, err := h.persistPlanRun(snapshotID, "worksets", opts, plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"planId": planID, "plan": plan})
}
