package naming

import (
	"strconv"
	"strings"
)

// Resolve 为单个链接推导规范工作集名与实例名
// 纯函数：相同的 linkName、ctx 快照与 opts 恒返回相同结果，
// 上下文的累积（已用名追加）由调用方在两次调用之间完成
func Resolve(linkName string, ctx *Context, opts Options) Resolution {
	parsed := ParseLinkName(linkName)
	if !parsed.Matched {
		// 不符合命名标准：整名直接作为实例名与工作集名主体
		return Resolution{
			LinkName:     linkName,
			WorksetName:  opts.Prefix + linkName,
			InstanceName: linkName,
			BaseName:     linkName,
		}
	}

	originator := ""
	if parsed.Discipline != "A" || opts.IncludeOriginator {
		// 非建筑专业恒保留编制方段，便于区分外方模型
		originator = "-" + parsed.Originator
	}
	zone := ""
	if opts.IncludeZone && parsed.Zone != "ZZ" {
		zone = "-" + parsed.Zone
	}
	instanceName := parsed.Discipline + originator + zone

	baseName := parsed.BaseName()
	kind := parsed.Kind()
	ordinal := parsed.PartOrdinal()

	// 分部序号大于 1 本身即是需要消歧的强信号；
	// 序号为 1 时仅在存在同主干同类别的其它名称时消歧
	needSuffix := ordinal > 1
	if !needSuffix && hasSimilarName(linkName, baseName, kind, ctx) {
		needSuffix = true
	}

	suffix := ""
	if needSuffix {
		if kind != KindUnclassified {
			suffix = string(kind) + " " + strconv.Itoa(ordinal)
		} else {
			suffix = parsed.Digits
		}
	}

	worksetName := opts.Prefix + instanceName
	if suffix != "" {
		worksetName += "-" + suffix
	}

	return Resolution{
		LinkName:     linkName,
		Matched:      true,
		WorksetName:  worksetName,
		InstanceName: instanceName,
		Suffix:       suffix,
		Kind:         kind,
		BaseName:     baseName,
	}
}

// hasSimilarName 判断上下文中是否存在与当前链接同主干且同类别的其它名称
// 文档自身名称也参与匹配；无法解析的相似名视为同类别（宁可多消歧）
func hasSimilarName(linkName, baseName string, kind ModelKind, ctx *Context) bool {
	if ctx == nil {
		return false
	}
	selfSkipped := false
	matches := func(n string) bool {
		if n == linkName && !selfSkipped {
			selfSkipped = true
			return false
		}
		if !strings.HasPrefix(n, baseName) {
			return false
		}
		p := ParseLinkName(n)
		return !p.Matched || p.Kind() == kind
	}
	for _, n := range ctx.AllLinkNames {
		if matches(n) {
			return true
		}
	}
	return ctx.DocumentTitle != "" && matches(ctx.DocumentTitle)
}
