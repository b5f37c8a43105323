package parser

import "strings"

// SheetRecognizer Sheet 类型识别器
// 宿主插件各版本导出的 Sheet 名与列名不完全一致，靠关键列打分识别
type SheetRecognizer struct{}

// NewSheetRecognizer 创建识别器
func NewSheetRecognizer() *SheetRecognizer {
	return &SheetRecognizer{}
}

// 各 Sheet 类型的关键列，备选写法以 | 分隔
var sheetKeyFields = []struct {
	sheetType SheetType
	nameHints []string
	keyFields []string
}{
	{
		sheetType: SheetTypeDocument,
		nameHints: []string{"document", "summary", "文档"},
		keyFields: []string{"title|document title", "workshared", "central guid|guid", "central path"},
	},
	{
		sheetType: SheetTypeLinks,
		nameHints: []string{"link", "链接"},
		keyFields: []string{"link name|link", "instance workset", "type workset"},
	},
	{
		sheetType: SheetTypeWorksets,
		nameHints: []string{"workset", "工作集"},
		keyFields: []string{"workset name|workset", "default", "editable"},
	},
	{
		sheetType: SheetTypeParameterValues,
		nameHints: []string{"value", "取值"},
		keyFields: []string{"parameter name|parameter", "category", "has value", "raw value|value"},
	},
	{
		sheetType: SheetTypeParameters,
		nameHints: []string{"parameter", "参数"},
		keyFields: []string{"parameter name|parameter", "shared", "storage type", "binding|instance", "categories"},
	},
	{
		sheetType: SheetTypeImages,
		nameHints: []string{"image", "图片"},
		keyFields: []string{"image name|image"},
	},
	{
		sheetType: SheetTypeViews,
		nameHints: []string{"view", "视图"},
		keyFields: []string{"view name|view", "template", "workset overrides|vg"},
	},
}

// Recognize 识别 Sheet 类型
// 按关键列命中率打分，Sheet 名命中加成 0.2，阈值 0.5
func (r *SheetRecognizer) Recognize(sheetName string, columnNames []string) SheetRecognitionResult {
	normalized := make([]string, len(columnNames))
	for i, col := range columnNames {
		normalized[i] = NormalizeColumnName(col)
	}
	lowerName := strings.ToLower(sheetName)

	best := SheetRecognitionResult{
		SheetName: sheetName,
		SheetType: SheetTypeUnknown,
	}

	for _, def := range sheetKeyFields {
		matchCount := 0
		for _, field := range def.keyFields {
			for _, col := range normalized {
				if MatchPattern(col, field) {
					matchCount++
					break
				}
			}
		}
		confidence := float64(matchCount) / float64(len(def.keyFields))
		if ContainsAny(lowerName, def.nameHints) {
			confidence += 0.2
		}
		if confidence >= 0.5 && confidence > best.Confidence {
			best.SheetType = def.sheetType
			best.Confidence = confidence
		}
	}

	return best
}
