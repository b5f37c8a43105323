package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bimkeeper/internal/config"
	"bimkeeper/internal/naming"
	"bimkeeper/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store     *store.Store
	naming    config.NamingConfig // 配置文件中的命名默认项，库内配置可覆盖
	downloads *exportDownloadStore
}

// NewHandler 创建 V1 API 处理器
func NewHandler(store *store.Store, naming config.NamingConfig) *Handler {
	return &Handler{
		store:     store,
		naming:    naming,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 快照导入与切换
	router.POST("/import", h.Import)
	router.GET("/snapshots", h.ListSnapshots)
	router.POST("/snapshots/select", h.SelectSnapshot)
	router.DELETE("/snapshots/:id", h.DeleteSnapshot)

	// 命名默认项配置
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 维护方案
	router.POST("/plans/worksets", h.PlanWorksets)
	router.POST("/plans/parameters", h.PlanParameters)
	router.POST("/plans/images", h.PlanImages)
	router.POST("/plans/views", h.PlanViews)
	router.GET("/plans", h.ListPlans)
	router.GET("/plans/:id", h.GetPlan)

	// 中心模型信息
	router.GET("/central", h.GetCentralInfo)

	// 报告导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}

// currentSnapshotID 读取当前快照 ID，未选择时回写 409
func (h *Handler) currentSnapshotID(c *gin.Context) (int64, bool) {
	id, err := h.store.GetCurrentSnapshotID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return 0, false
	}
	if id == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "尚未导入或选择快照"})
		return 0, false
	}
	return id, true
}

// 命名默认项在库中的键
const (
	namingPrefixKey            = "naming_prefix"
	namingIncludeOriginatorKey = "naming_include_originator"
	namingIncludeZoneKey       = "naming_include_zone"
)

// namingDefaults 合成生效的命名选项：库内配置优先，其次配置文件默认
func (h *Handler) namingDefaults() naming.Options {
	opts := naming.Options{
		Prefix:            h.naming.LinkWorksetPrefix,
		IncludeOriginator: h.naming.IncludeOriginator,
		IncludeZone:       h.naming.IncludeZone,
	}
	if v, err := h.store.GetConfigValue(namingPrefixKey); err == nil && v != "" {
		opts.Prefix = v
	}
	if v, err := h.store.GetConfigValue(namingIncludeOriginatorKey); err == nil && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.IncludeOriginator = b
		}
	}
	if v, err := h.store.GetConfigValue(namingIncludeZoneKey); err == nil && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.IncludeZone = b
		}
	}
	return opts
}
