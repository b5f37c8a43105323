package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"bimkeeper/internal/exporter"
	"bimkeeper/internal/store"
)

const downloadTTL = 10 * time.Minute

// ExportRequest 导出请求
// PlanIDs 为空时取当前快照每类方案的最新一次运行
type ExportRequest struct {
	PlanIDs []string `json:"planIds"`
}

// Export 生成报告工作簿与宿主执行清单，返回下载令牌
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
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

	runs, err := h.collectRuns(snapshotID, req.PlanIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(runs) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "没有可导出的方案，请先生成方案"})
		return
	}

	ex := exporter.NewExporter()
	workbook, err := ex.ExportReport(snap, runs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("生成报告失败: %v", err)})
		return
	}
	defer workbook.Close()

	stamp := time.Now().Format("20060102_150405")
	reportName := fmt.Sprintf("bimkeeper_report_%s.xlsx", stamp)
	reportPath := filepath.Join(os.TempDir(), reportName)
	if err := workbook.SaveAs(reportPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("保存报告失败: %v", err)})
		return
	}

	hostPlan := exporter.BuildHostActionPlan(snap, runs)
	planData, err := json.MarshalIndent(hostPlan, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	planName := fmt.Sprintf("bimkeeper_hostplan_%s.json", stamp)
	planPath := filepath.Join(os.TempDir(), planName)
	if err := os.WriteFile(planPath, planData, 0644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("保存执行清单失败: %v", err)})
		return
	}

	reportToken := h.downloads.put(reportPath, reportName,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", downloadTTL)
	planToken := h.downloads.put(planPath, planName, "application/json", downloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"reportToken": reportToken,
		"planToken":   planToken,
		"plans":       len(runs),
	})
}

// collectRuns 选定待导出的方案运行：指定 ID 或每类最新
func (h *Handler) collectRuns(snapshotID int64, planIDs []string) ([]store.PlanRun, error) {
	if len(planIDs) > 0 {
		runs := make([]store.PlanRun, 0, len(planIDs))
		for _, id := range planIDs {
			run, err := h.store.GetPlanRun(id)
			if err != nil {
				return nil, err
			}
			runs = append(runs, *run)
		}
		return runs, nil
	}

	all, err := h.store.ListPlanRuns(snapshotID)
	if err != nil {
		return nil, err
	}
	// 列表按时间倒序，每类第一条即最新
	seen := make(map[string]bool)
	var runs []store.PlanRun
	for _, run := range all {
		if seen[run.Kind] {
			continue
		}
		seen[run.Kind] = true
		runs = append(runs, run)
	}
	return runs, nil
}

// DownloadExport 按令牌下载导出文件
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载令牌无效或已过期"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "导出文件已不存在"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, item.filename))
	c.Header("Content-Type", item.contentType)
	c.File(item.filePath)
}
