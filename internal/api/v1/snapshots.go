package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bimkeeper/internal/model"
	"bimkeeper/internal/store"
)

type snapshotsResponse struct {
	Current int64             `json:"current"` // 当前快照 ID，0 表示未选择
	Items   []*model.Snapshot `json:"items"`
}

// ListSnapshots 获取已导入快照列表
// GET /api/snapshots
func (h *Handler) ListSnapshots(c *gin.Context) {
	items, err := h.store.ListSnapshots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	current, err := h.store.GetCurrentSnapshotID()
	if err != nil {
		current = 0
	}

	c.JSON(http.StatusOK, snapshotsResponse{Current: current, Items: items})
}

type selectSnapshotRequest struct {
	ID int64 `json:"id"`
}

// SelectSnapshot 切换当前操作的快照
// POST /api/snapshots/select
func (h *Handler) SelectSnapshot(c *gin.Context) {
	var req selectSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if _, err := h.store.GetSnapshot(req.ID); err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "快照不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SetCurrentSnapshotID(req.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current": req.ID})
}

// DeleteSnapshot 删除快照及其全部数据
// DELETE /api/snapshots/:id
func (h *Handler) DeleteSnapshot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法快照 ID"})
		return
	}

	if err := h.store.DeleteSnapshot(id); err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "快照不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 删除的是当前快照时清除选择
	if current, err := h.store.GetCurrentSnapshotID(); err == nil && current == id {
		_ = h.store.SetCurrentSnapshotID(0)
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
