package parser

import "time"

// SheetType 快照工作簿的 Sheet 类型
type SheetType string

const (
	SheetTypeDocument        SheetType = "document"
	SheetTypeLinks           SheetType = "links"
	SheetTypeWorksets        SheetType = "worksets"
	SheetTypeParameters      SheetType = "parameters"
	SheetTypeParameterValues SheetType = "parameter_values"
	SheetTypeImages          SheetType = "images"
	SheetTypeViews           SheetType = "views"
	SheetTypeUnknown         SheetType = "unknown"
)

// SheetRecognitionResult Sheet 识别结果
type SheetRecognitionResult struct {
	SheetName  string    `json:"sheetName"`
	SheetType  SheetType `json:"sheetType"`
	Confidence float64   `json:"confidence"` // 置信度 0-1
}

// ParseResult 单个 Sheet 的解析结果
type ParseResult struct {
	SheetName    string        `json:"sheetName"`
	SheetType    SheetType     `json:"sheetType"`
	Status       string        `json:"status"` // imported/skipped/error
	ImportedRows int           `json:"importedRows"`
	ErrorRows    int           `json:"errorRows"`
	Errors       []string      `json:"errors,omitempty"`
	Duration     time.Duration `json:"duration"`
}

// ImportReport 导入报告
type ImportReport struct {
	Filename       string        `json:"filename"`
	TotalSheets    int           `json:"totalSheets"`
	ImportedSheets int           `json:"importedSheets"`
	SkippedSheets  int           `json:"skippedSheets"`
	TotalRows      int           `json:"totalRows"`
	ImportedRows   int           `json:"importedRows"`
	ErrorRows      int           `json:"errorRows"`
	Duration       time.Duration `json:"duration"`
	Sheets         []ParseResult `json:"sheets"`
}
