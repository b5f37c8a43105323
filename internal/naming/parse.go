package naming

import (
	"regexp"
	"strings"
)

// 命名标准：七段短横线分隔，第七段为纯数字编号，其后可带不含短横线的自由后缀
// 例：GSK-HTL-RE-ZZ-M3-A-0001
var linkNamePattern = regexp.MustCompile(`^(\w+)-(\w+)-(\w+)-(\w+)-(\w+)-(\w+)-(\d+)([\w ]*)$`)

// 文档名只取前四段，用于提取当前文档的分区代码
var documentZonePattern = regexp.MustCompile(`^(\w+)-(\w+)-(\w+)-(\w+)`)

// ParseLinkName 按命名标准解析链接文件名
// 不符合标准时返回 Matched=false，各字段为零值
func ParseLinkName(name string) ParsedLinkName {
	m := linkNamePattern.FindStringSubmatch(name)
	if m == nil {
		return ParsedLinkName{}
	}
	return ParsedLinkName{
		Matched:      true,
		Organization: m[1],
		Originator:   m[2],
		Volume:       m[3],
		Zone:         m[4],
		Level:        m[5],
		Discipline:   m[6],
		Digits:       m[7],
		Description:  strings.TrimSpace(m[8]),
	}
}

// Kind 编号段首位数字与专业代码共同决定模型类别
// 仅建筑专业(A)区分内装/幕墙，其余专业不分类
func (p ParsedLinkName) Kind() ModelKind {
	if !p.Matched || p.Discipline != "A" || p.Digits == "" {
		return KindUnclassified
	}
	switch p.Digits[0] {
	case '1':
		return KindInternal
	case '2':
		return KindFacade
	}
	return KindUnclassified
}

// PartOrdinal 编号段末位数字，约定为同名模型的分部序号
// 无编号时返回 0
func (p ParsedLinkName) PartOrdinal() int {
	if p.Digits == "" {
		return 0
	}
	return int(p.Digits[len(p.Digits)-1] - '0')
}

// BaseName 去掉编号段与自由后缀后的文件名主干（保留末尾短横线）
// 用于相似名匹配：两个链接仅编号不同时主干一致
// 由已解析的各段重组，避免编号数字在前部段落中重复出现时误删
func (p ParsedLinkName) BaseName() string {
	if !p.Matched {
		return ""
	}
	return strings.Join([]string{
		p.Organization, p.Originator, p.Volume, p.Zone, p.Level, p.Discipline, "",
	}, "-")
}

// DocumentZone 从文档名中提取分区代码（第四段）
// 文档名不符合命名标准时返回空串
func DocumentZone(documentTitle string) string {
	m := documentZonePattern.FindStringSubmatch(documentTitle)
	if m == nil {
		return ""
	}
	return m[4]
}

// StripModelExtension 去掉链接名中的 .rvt 扩展名及其后的实例标注
// Revit 链接实例名形如 "XXX.rvt : 1"，只保留文件名部分
func StripModelExtension(name string) string {
	lower := strings.ToLower(name)
	if idx := strings.Index(lower, ".rvt"); idx >= 0 {
		return name[:idx]
	}
	return name
}
