package planner

import (
	"errors"
	"sort"

	"bimkeeper/internal/model"
)

// ErrNoWorksets 文档中没有可用的用户工作集
var ErrNoWorksets = errors.New("no user worksets in snapshot")

// ErrTemplateNotFound 指定的视图样板在快照中不存在
var ErrTemplateNotFound = errors.New("view template not found in snapshot")

// ViewAction 单个工作集三维视图的处理方式
type ViewAction string

const (
	ViewCreate ViewAction = "create" // 新建等轴测三维视图
	ViewUpdate ViewAction = "update" // 同名视图已存在，仅刷新可见性与样板
)

// ViewDecision 单个工作集的视图处置结论
type ViewDecision struct {
	Workset string     `json:"workset"`
	Action  ViewAction `json:"action"`
}

// ViewPlan 工作集三维视图创建方案
// 每个视图只显示同名工作集，其余工作集全部隐藏
type ViewPlan struct {
	Template string `json:"template,omitempty"` // 为空表示不套用样板

	// 样板控制着工作集可见性覆盖，需先释放该设置才能按工作集设置可见性
	RequiresOverrideRelease bool `json:"requiresOverrideRelease"`
	// 用户已确认释放，或样板本就不控制该设置
	TemplateCompatible bool `json:"templateCompatible"`

	Decisions []ViewDecision `json:"decisions"`
	Created   int            `json:"created"`
	Updated   int            `json:"updated"`
}

// BuildViewPlan 为每个用户工作集规划一个同名三维视图
// releaseOverride 表示用户确认释放样板的工作集可见性控制
func BuildViewPlan(worksets []model.Workset, views []model.View3D, templateName string, releaseOverride bool) (*ViewPlan, error) {
	if len(worksets) == 0 || (len(worksets) == 1 && worksets[0].Name == "Workset1") {
		// 只有初始 Workset1 的文档视同没有工作集
		return nil, ErrNoWorksets
	}

	plan := &ViewPlan{Template: templateName, TemplateCompatible: true}

	if templateName != "" {
		var template *model.View3D
		for i := range views {
			if views[i].IsTemplate && views[i].Name == templateName {
				template = &views[i]
				break
			}
		}
		if template == nil {
			return nil, ErrTemplateNotFound
		}
		if template.WorksetVGControlled {
			plan.RequiresOverrideRelease = true
			if !releaseOverride {
				// 未经确认不得改动样板设置，方案空置等待用户决定
				plan.TemplateCompatible = false
				return plan, nil
			}
		}
	}

	existing := make(map[string]bool)
	for _, v := range views {
		if !v.IsTemplate {
			existing[v.Name] = true
		}
	}

	for _, w := range worksets {
		d := ViewDecision{Workset: w.Name, Action: ViewCreate}
		if existing[w.Name] {
			d.Action = ViewUpdate
		}
		plan.Decisions = append(plan.Decisions, d)
	}
	sort.Slice(plan.Decisions, func(i, j int) bool {
		return plan.Decisions[i].Workset < plan.Decisions[j].Workset
	})

	for _, d := range plan.Decisions {
		switch d.Action {
		case ViewCreate:
			plan.Created++
		case ViewUpdate:
			plan.Updated++
		}
	}
	return plan, nil
}
