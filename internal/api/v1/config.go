package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ConfigResponse 命名默认项响应
type ConfigResponse struct {
	LinkWorksetPrefix string `json:"linkWorksetPrefix"`
	IncludeOriginator bool   `json:"includeOriginator"`
	IncludeZone       bool   `json:"includeZone"`
}

// GetConfig 获取生效的命名默认项
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	opts := h.namingDefaults()
	c.JSON(http.StatusOK, ConfigResponse{
		LinkWorksetPrefix: opts.Prefix,
		IncludeOriginator: opts.IncludeOriginator,
		IncludeZone:       opts.IncludeZone,
	})
}

// UpdateConfigRequest 更新命名默认项请求，指针字段支持部分更新
type UpdateConfigRequest struct {
	LinkWorksetPrefix *string `json:"linkWorksetPrefix"`
	IncludeOriginator *bool   `json:"includeOriginator"`
	IncludeZone       *bool   `json:"includeZone"`
}

// UpdateConfig 更新命名默认项
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if req.LinkWorksetPrefix != nil {
		if *req.LinkWorksetPrefix == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "工作集前缀不能为空"})
			return
		}
		if err := h.store.SetConfigValue(namingPrefixKey, *req.LinkWorksetPrefix); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if req.IncludeOriginator != nil {
		if err := h.store.SetConfigValue(namingIncludeOriginatorKey, strconv.FormatBool(*req.IncludeOriginator)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if req.IncludeZone != nil {
		if err := h.store.SetConfigValue(namingIncludeZoneKey, strconv.FormatBool(*req.IncludeZone)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	h.GetConfig(c)
}
