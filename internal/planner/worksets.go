package planner

import (
	"errors"
	"strings"

	"bimkeeper/internal/model"
	"bimkeeper/internal/naming"
)

var (
	// ErrNoLinks 快照中没有任何 Revit 链接
	ErrNoLinks = errors.New("no revit links in snapshot")
	// ErrWorksharingUnavailable 文档未开启协作且无法开启
	ErrWorksharingUnavailable = errors.New("document is not workshared and worksharing cannot be enabled")
)

// LinkAction 单个链接的工作集处理方式
type LinkAction string

const (
	ActionCreate LinkAction = "create" // 新建工作集并归入
	ActionReuse  LinkAction = "reuse"  // 复用既有或本次已规划的工作集
)

// LinkDecision 单个链接的处置结论
type LinkDecision struct {
	Link       string            `json:"link"`     // 原始实例名
	LinkName   string            `json:"linkName"` // 去扩展名后的文件名
	Resolution naming.Resolution `json:"resolution"`

	Action       LinkAction `json:"action"`
	ReuseWorkset string     `json:"reuseWorkset,omitempty"` // Action=reuse 时使用的工作集名

	// 链接实例/类型当前所在工作集与目标不符，需要宿主修正
	FixInstanceWorkset bool `json:"fixInstanceWorkset"`
	FixTypeWorkset     bool `json:"fixTypeWorkset"`
}

// UnusedWorkset 本次运行后不再被任何链接使用的链接工作集
type UnusedWorkset struct {
	Name     string `json:"name"`
	Editable bool   `json:"editable"` // 非可编辑工作集无法通过宿主 API 删除
}

// WorksetSummary 工作集规划汇总
type WorksetSummary struct {
	Links          int `json:"links"`
	Creates        int `json:"creates"`
	Reuses         int `json:"reuses"`
	InstanceFixes  int `json:"instanceFixes"`
	TypeFixes      int `json:"typeFixes"`
	UnusedEditable int `json:"unusedEditable"`
	UnusedLocked   int `json:"unusedLocked"`
}

// WorksetPlan 链接工作集整理方案
type WorksetPlan struct {
	DocumentTitle string         `json:"documentTitle"`
	DocumentZone  string         `json:"documentZone"`
	Options       naming.Options `json:"options"`

	// 文档尚未开启协作：宿主执行前需先开启，且既有工作集核查全部跳过
	WorksharingEnableRequired bool `json:"worksharingEnableRequired"`

	DefaultWorkset string          `json:"defaultWorkset"` // 删除工作集时元素的迁移目标
	Decisions      []LinkDecision  `json:"decisions"`
	UnusedWorksets []UnusedWorkset `json:"unusedWorksets"`
	Summary        WorksetSummary  `json:"summary"`
}

// BuildWorksetPlan 为快照中的全部链接推导工作集整理方案
// 逐链接顺序决策：后续链接的消歧取决于之前链接的结论，上下文在此累积
func BuildWorksetPlan(doc model.DocumentInfo, links []model.RevitLink, worksets []model.Workset, opts naming.Options) (*WorksetPlan, error) {
	if len(links) == 0 {
		return nil, ErrNoLinks
	}
	if !doc.IsWorkshared && !doc.CanEnableWorksharing {
		return nil, ErrWorksharingUnavailable
	}

	plan := &WorksetPlan{
		DocumentTitle:             doc.Title,
		DocumentZone:              naming.DocumentZone(doc.Title),
		Options:                   opts,
		WorksharingEnableRequired: !doc.IsWorkshared,
	}

	worksetByName := make(map[string]model.Workset, len(worksets))
	if !plan.WorksharingEnableRequired {
		for _, w := range worksets {
			worksetByName[w.Name] = w
			if w.IsDefault {
				plan.DefaultWorkset = w.Name
			}
		}
	}

	// 全部链接名先行收集：相似名匹配考虑整个运行，而非仅处理过的部分
	allNames := make([]string, 0, len(links))
	for _, link := range links {
		allNames = append(allNames, naming.StripModelExtension(link.Name))
	}
	existingNames := make([]string, 0, len(worksetByName))
	for name := range worksetByName {
		existingNames = append(existingNames, name)
	}
	ctx := &naming.Context{
		DocumentTitle:        doc.Title,
		AllLinkNames:         allNames,
		ExistingWorksetNames: existingNames,
	}

	usedNames := make(map[string]bool)    // 本次复用的既有工作集
	plannedNames := make(map[string]bool) // 本次规划新建的工作集

	for i, link := range links {
		res := naming.Resolve(allNames[i], ctx, opts)

		d := LinkDecision{
			Link:       link.Name,
			LinkName:   allNames[i],
			Resolution: res,
		}

		// 既有工作集按名称前缀匹配，命中即复用
		var existing []string
		for _, name := range existingNames {
			if strings.HasPrefix(name, res.WorksetName) {
				existing = append(existing, name)
			}
		}
		switch {
		case len(existing) > 0:
			d.Action = ActionReuse
			d.ReuseWorkset = pickFirst(existing)
			usedNames[d.ReuseWorkset] = true
			d.FixInstanceWorkset = !strings.HasPrefix(d.ReuseWorkset, link.InstanceWorkset)
			d.FixTypeWorkset = !strings.HasPrefix(d.ReuseWorkset, link.TypeWorkset)
		case plannedNames[res.WorksetName]:
			// 重复链接解析到同一个名字：第二个起复用本次规划的工作集
			d.Action = ActionReuse
			d.ReuseWorkset = res.WorksetName
		default:
			d.Action = ActionCreate
			plannedNames[res.WorksetName] = true
		}

		// 调用方职责：已定名字追加进上下文供后续链接参考
		ctx.PlannedWorksetNames = append(ctx.PlannedWorksetNames, res.WorksetName)

		plan.Decisions = append(plan.Decisions, d)
	}

	if !plan.WorksharingEnableRequired {
		plan.UnusedWorksets = collectUnusedWorksets(worksets, opts.Prefix, usedNames, plannedNames)
	}
	plan.Summary = summarize(plan)
	return plan, nil
}

// collectUnusedWorksets 找出带链接前缀但本次既未复用也未规划的工作集
// 历史上前缀有空格与短横线两种写法，两种都识别
func collectUnusedWorksets(worksets []model.Workset, prefix string, used, planned map[string]bool) []UnusedWorkset {
	trimmed := strings.TrimRight(prefix, "-")
	legacy := strings.ReplaceAll(trimmed, " ", "-")

	var unused []UnusedWorkset
	for _, w := range worksets {
		if !strings.HasPrefix(w.Name, trimmed) && !strings.HasPrefix(w.Name, legacy) {
			continue
		}
		if used[w.Name] || planned[w.Name] {
			continue
		}
		unused = append(unused, UnusedWorkset{Name: w.Name, Editable: w.IsEditable})
	}
	return unused
}

func pickFirst(names []string) string {
	// 多个工作集命中同一前缀时使用第一个
	first := names[0]
	for _, n := range names[1:] {
		if n < first {
			first = n
		}
	}
	return first
}

func summarize(plan *WorksetPlan) WorksetSummary {
	s := WorksetSummary{Links: len(plan.Decisions)}
	for _, d := range plan.Decisions {
		switch d.Action {
		case ActionCreate:
			s.Creates++
		case ActionReuse:
			s.Reuses++
		}
		if d.FixInstanceWorkset {
			s.InstanceFixes++
		}
		if d.FixTypeWorkset {
			s.TypeFixes++
		}
	}
	for _, u := range plan.UnusedWorksets {
		if u.Editable {
			s.UnusedEditable++
		} else {
			s.UnusedLocked++
		}
	}
	return s
}
