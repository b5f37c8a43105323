package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bimkeeper/internal/planner"
)

// PlanImages 为当前快照生成图片清理方案
// POST /api/plans/images
func (h *Handler) PlanImages(c *gin.Context) {
	snapshotID, ok := h.currentSnapshotID(c)
	if !ok {
		return
	}

	images, err := h.store.GetImages(snapshotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan := planner.BuildImagePlan(images)

	planID, err := h.persistPlanRun(snapshotID, "images", struct{}{}, plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"planId": planID, "plan": plan})
}
