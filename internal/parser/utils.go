package parser

import (
	"strconv"
	"strings"
)

// NormalizeColumnName 规范化列名：小写、去首尾空白、折叠内部空白
func NormalizeColumnName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.Join(strings.Fields(name), " ")
}

// MatchPattern 判断列名是否命中模式，模式以 | 分隔多个备选写法
func MatchPattern(text, pattern string) bool {
	for _, alt := range strings.Split(pattern, "|") {
		if alt != "" && strings.Contains(text, alt) {
			return true
		}
	}
	return false
}

// ContainsAny 文本是否包含任一关键词
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ParseBoolCell 解析布尔单元格
// 宿主导出可能用 Yes/No、True/False、1/0 或中文是/否
func ParseBoolCell(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1", "y", "是":
		return true
	}
	return false
}

// ParseIntCell 解析整数单元格，空白或非法时返回 0
func ParseIntCell(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// ParseInt64Cell 解析长整数单元格，空白或非法时返回 0
func ParseInt64Cell(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FindHeaderRow 在前几行中定位表头行：命中任一关键列即认定
// 返回 -1 表示没有找到
func FindHeaderRow(rows [][]string, keyPatterns []string) int {
	limit := len(rows)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			normalized := NormalizeColumnName(cell)
			for _, pattern := range keyPatterns {
				if MatchPattern(normalized, pattern) {
					return i
				}
			}
		}
	}
	return -1
}

// ColumnIndex 按模式在表头中定位列，未找到返回 -1
func ColumnIndex(header []string, pattern string) int {
	for i, cell := range header {
		if MatchPattern(NormalizeColumnName(cell), pattern) {
			return i
		}
	}
	return -1
}

// CellAt 安全取行内单元格，越界返回空串
func CellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
