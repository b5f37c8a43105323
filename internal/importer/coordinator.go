package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"bimkeeper/internal/model"
	"bimkeeper/internal/parser"
	"bimkeeper/internal/store"
)

// Coordinator 快照导入协调器
type Coordinator struct {
	store      *store.Store
	recognizer *parser.SheetRecognizer
}

// NewCoordinator 创建导入协调器
func NewCoordinator(store *store.Store) *Coordinator {
	return &Coordinator{
		store:      store,
		recognizer: parser.NewSheetRecognizer(),
	}
}

// ImportOptions 导入选项
type ImportOptions struct {
	FilePath       string
	Filename       string // 原始文件名，为空时取 FilePath 的 Base
	SelectSnapshot bool   // 导入成功后是否设为当前快照
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`    // start/info/warning/sheet_start/sheet_done/done/error
	Message   string      `json:"message"` // 事件消息
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// importContext 单次导入的累积状态，所有 Sheet 解析完后统一入库
type importContext struct {
	file         *excelize.File
	startTime    time.Time
	report       *parser.ImportReport
	progressChan chan ProgressEvent

	document *model.DocumentInfo
	links    []model.RevitLink
	worksets []model.Workset
	params   []model.ParameterDef
	values   map[string][]model.ParameterValue
	images   []model.ImageType
	views    []model.View3D
}

// Import 执行导入，返回进度通道
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// doImport 执行导入逻辑
func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	startTime := time.Now()

	filename := opts.Filename
	if filename == "" {
		filename = filepath.Base(opts.FilePath)
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "start",
		Message: "开始导入快照工作簿",
		Data: map[string]string{
			"filename": filename,
		},
		Timestamp: time.Now(),
	})

	var fileSize int64
	if info, err := os.Stat(opts.FilePath); err == nil {
		fileSize = info.Size()
	}
	logID, logErr := c.store.CreateImportLog(filename, fileSize)

	file, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		c.failImport(progressChan, logID, logErr, fmt.Sprintf("打开文件失败: %v", err))
		return
	}
	defer file.Close()

	ctx := &importContext{
		file:         file,
		startTime:    startTime,
		progressChan: progressChan,
		values:       map[string][]model.ParameterValue{},
		report: &parser.ImportReport{
			Filename: filename,
			Sheets:   []parser.ParseResult{},
		},
	}

	sheetList := file.GetSheetList()
	ctx.report.TotalSheets = len(sheetList)

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("发现 %d 个 Sheet", len(sheetList)),
		Data: map[string]interface{}{
			"total_sheets": len(sheetList),
		},
		Timestamp: time.Now(),
	})

	for _, sheetName := range sheetList {
		c.processSheet(ctx, sheetName)
	}

	if ctx.document == nil {
		c.failImport(progressChan, logID, logErr, "工作簿中未找到文档信息 Sheet")
		return
	}

	// 取值 Sheet 与定义 Sheet 顺序无关，入库前统一合并
	mergeParameterValues(ctx.params, ctx.values)

	snapshotID, err := c.persist(ctx, filename)
	if err != nil {
		c.failImport(progressChan, logID, logErr, fmt.Sprintf("写入数据库失败: %v", err))
		return
	}

	if opts.SelectSnapshot {
		if err := c.store.SetCurrentSnapshotID(snapshotID); err != nil {
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("设置当前快照失败: %v", err),
				Timestamp: time.Now(),
			})
		}
	}

	ctx.report.Duration = time.Since(startTime)

	if logErr == nil {
		r := ctx.report
		if err := c.store.UpdateImportLog(logID, r.TotalSheets, r.ImportedSheets, r.SkippedSheets,
			r.TotalRows, r.ImportedRows, r.ErrorRows, "success", ""); err != nil {
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("更新导入日志失败: %v", err),
				Timestamp: time.Now(),
			})
		}
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "done",
		Message: "导入完成",
		Data: map[string]interface{}{
			"snapshot_id": snapshotID,
			"report":      ctx.report,
		},
		Timestamp: time.Now(),
	})
}

// processSheet 处理单个 Sheet
func (c *Coordinator) processSheet(ctx *importContext, sheetName string) {
	sheetStartTime := time.Now()

	c.sendProgress(ctx.progressChan, ProgressEvent{
		Type:    "sheet_start",
		Message: fmt.Sprintf("正在解析 Sheet: %s", sheetName),
		Data: map[string]string{
			"sheet_name": sheetName,
		},
		Timestamp: time.Now(),
	})

	rows, err := ctx.file.GetRows(sheetName)
	if err != nil || len(rows) < 1 {
		c.recordSheetResult(ctx, parser.ParseResult{
			SheetName: sheetName,
			SheetType: parser.SheetTypeUnknown,
			Status:    "error",
			Errors:    []string{fmt.Sprintf("读取 Sheet 失败: %v", err)},
			Duration:  time.Since(sheetStartTime),
		})
		return
	}

	recognition := c.recognizer.Recognize(sheetName, rows[0])

	c.sendProgress(ctx.progressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("Sheet \"%s\" 识别为: %s (置信度: %.2f)", sheetName, recognition.SheetType, recognition.Confidence),
		Data: map[string]interface{}{
			"sheet_name": sheetName,
			"sheet_type": recognition.SheetType,
			"confidence": recognition.Confidence,
		},
		Timestamp: time.Now(),
	})

	var (
		count int
		errs  []string
	)
	switch recognition.SheetType {
	case parser.SheetTypeDocument:
		doc, err := parser.ParseDocumentSheet(rows)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			ctx.document = &doc
			count = 1
		}
	case parser.SheetTypeLinks:
		links, parseErrs := parser.ParseLinksSheet(rows)
		ctx.links = append(ctx.links, links...)
		count, errs = len(links), parseErrs
	case parser.SheetTypeWorksets:
		worksets, parseErrs := parser.ParseWorksetsSheet(rows)
		ctx.worksets = append(ctx.worksets, worksets...)
		count, errs = len(worksets), parseErrs
	case parser.SheetTypeParameters:
		params, parseErrs := parser.ParseParametersSheet(rows)
		ctx.params = append(ctx.params, params...)
		count, errs = len(params), parseErrs
	case parser.SheetTypeParameterValues:
		values, parseErrs := parser.ParseParameterValuesSheet(rows)
		for name, vals := range values {
			ctx.values[name] = append(ctx.values[name], vals...)
			count += len(vals)
		}
		errs = parseErrs
	case parser.SheetTypeImages:
		images, parseErrs := parser.ParseImagesSheet(rows)
		ctx.images = append(ctx.images, images...)
		count, errs = len(images), parseErrs
	case parser.SheetTypeViews:
		views, parseErrs := parser.ParseViewsSheet(rows)
		ctx.views = append(ctx.views, views...)
		count, errs = len(views), parseErrs
	default:
		c.recordSheetResult(ctx, parser.ParseResult{
			SheetName: sheetName,
			SheetType: parser.SheetTypeUnknown,
			Status:    "skipped",
			Errors:    []string{"无法识别 Sheet 类型"},
			Duration:  time.Since(sheetStartTime),
		})
		c.sendProgress(ctx.progressChan, ProgressEvent{
			Type:      "warning",
			Message:   fmt.Sprintf("无法识别 Sheet: %s (置信度过低)", sheetName),
			Timestamp: time.Now(),
		})
		return
	}

	status := "imported"
	if count == 0 && len(errs) > 0 {
		status = "error"
	}
	c.recordSheetResult(ctx, parser.ParseResult{
		SheetName:    sheetName,
		SheetType:    recognition.SheetType,
		Status:       status,
		ImportedRows: count,
		ErrorRows:    len(errs),
		Errors:       errs,
		Duration:     time.Since(sheetStartTime),
	})

	c.sendProgress(ctx.progressChan, ProgressEvent{
		Type:    "sheet_done",
		Message: fmt.Sprintf("Sheet \"%s\" 解析完成: %d 行", sheetName, count),
		Data: map[string]interface{}{
			"sheet_name":    sheetName,
			"imported_rows": count,
		},
		Timestamp: time.Now(),
	})
}

// persist 将解析结果写入数据库
func (c *Coordinator) persist(ctx *importContext, filename string) (int64, error) {
	snapshotID, err := c.store.CreateSnapshot(filename)
	if err != nil {
		return 0, err
	}
	if err := c.store.UpdateSnapshotDocument(snapshotID, *ctx.document); err != nil {
		return 0, err
	}
	if err := c.store.InsertLinks(snapshotID, ctx.links); err != nil {
		return 0, err
	}
	if err := c.store.InsertWorksets(snapshotID, ctx.worksets); err != nil {
		return 0, err
	}
	if err := c.store.InsertParameters(snapshotID, ctx.params); err != nil {
		return 0, err
	}
	if err := c.store.InsertImages(snapshotID, ctx.images); err != nil {
		return 0, err
	}
	if err := c.store.InsertViews(snapshotID, ctx.views); err != nil {
		return 0, err
	}
	return snapshotID, nil
}

// failImport 记录失败并发送错误事件
func (c *Coordinator) failImport(ch chan ProgressEvent, logID int64, logErr error, message string) {
	if logErr == nil {
		_ = c.store.UpdateImportLog(logID, 0, 0, 0, 0, 0, 0, "error", message)
	}
	c.sendProgress(ch, ProgressEvent{
		Type:      "error",
		Message:   message,
		Timestamp: time.Now(),
	})
}

// mergeParameterValues 把取值 Sheet 的记录挂到对应的参数定义上
func mergeParameterValues(params []model.ParameterDef, values map[string][]model.ParameterValue) {
	for i := range params {
		if vals, ok := values[params[i].Name]; ok {
			params[i].Values = append(params[i].Values, vals...)
		}
	}
}

// recordSheetResult 记录 Sheet 处理结果
func (c *Coordinator) recordSheetResult(ctx *importContext, result parser.ParseResult) {
	ctx.report.Sheets = append(ctx.report.Sheets, result)

	if result.Status == "imported" {
		ctx.report.ImportedSheets++
		ctx.report.ImportedRows += result.ImportedRows
	} else if result.Status == "skipped" {
		ctx.report.SkippedSheets++
	}

	if result.ErrorRows > 0 {
		ctx.report.ErrorRows += result.ErrorRows
	}

	ctx.report.TotalRows += result.ImportedRows + result.ErrorRows
}

// sendProgress 发送进度事件
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}
