package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bimkeeper/internal/planner"
)

// GetCentralInfo 获取当前快照的中心模型信息
// GET /api/central
func (h *Handler) GetCentralInfo(c *gin.Context) {
	snapshotID, ok := h.currentSnapshotID(c)
	if !ok {
		return
	}

	snap, err := h.store.GetSnapshot(snapshotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, planner.BuildCentralInfo(snap.Document))
}
