package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized     bool   `json:"initialized"`     // 是否已有可操作的快照
	SnapshotCount   int    `json:"snapshotCount"`   // 已导入快照数
	CurrentSnapshot int64  `json:"currentSnapshot"` // 当前快照 ID，0 表示未选择
	DocumentTitle   string `json:"documentTitle"`   // 当前快照的文档名
	IsWorkshared    bool   `json:"isWorkshared"`    // 当前快照的协作状态
	LinkCount       int    `json:"linkCount"`       // 当前快照的链接数
	WorksetCount    int    `json:"worksetCount"`    // 当前快照的工作集数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{}

	snapshots, err := h.store.ListSnapshots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp.SnapshotCount = len(snapshots)

	id, err := h.store.GetCurrentSnapshotID()
	if err != nil || id == 0 {
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.CurrentSnapshot = id
	resp.Initialized = true

	snap, err := h.store.GetSnapshot(id)
	if err == nil {
		resp.DocumentTitle = snap.Document.Title
		resp.IsWorkshared = snap.Document.IsWorkshared
	}
	if links, err := h.store.GetLinks(id); err == nil {
		resp.LinkCount = len(links)
	}
	if worksets, err := h.store.GetWorksets(id); err == nil {
		resp.WorksetCount = len(worksets)
	}

	c.JSON(http.StatusOK, resp)
}
