package planner

import "bimkeeper/internal/model"

// ParameterCheck 单个参数的使用情况核查结论
type ParameterCheck struct {
	Name       string   `json:"name"`
	IsShared   bool     `json:"isShared"`
	GUID       string   `json:"guid,omitempty"`
	IsInstance bool     `json:"isInstance"`
	Categories []string `json:"categories"`
	InUse      bool     `json:"inUse"`
	Reason     string   `json:"reason,omitempty"`
}

// ParameterPlan 未使用参数清理方案
type ParameterPlan struct {
	SharedOnly bool             `json:"sharedOnly"`
	Checked    []ParameterCheck `json:"checked"`
	Unused     []string         `json:"unused"` // 可删除的参数名
}

// BuildParameterPlan 核查项目/共享参数是否被使用
// sharedOnly=true 时只核查共享参数；selected 非空时只核查选中的参数名
func BuildParameterPlan(params []model.ParameterDef, sharedOnly bool, selected []string) *ParameterPlan {
	selectedSet := make(map[string]bool, len(selected))
	for _, name := range selected {
		selectedSet[name] = true
	}

	plan := &ParameterPlan{SharedOnly: sharedOnly}
	for _, p := range params {
		if sharedOnly && !p.IsShared {
			continue
		}
		if len(selected) > 0 && !selectedSet[p.Name] {
			continue
		}
		inUse, reason := parameterInUse(p)
		check := ParameterCheck{
			Name:       p.Name,
			IsShared:   p.IsShared,
			GUID:       p.GUID,
			IsInstance: p.IsInstance,
			Categories: p.Categories,
			InUse:      inUse,
			Reason:     reason,
		}
		plan.Checked = append(plan.Checked, check)
		if !inUse {
			plan.Unused = append(plan.Unused, p.Name)
		}
	}
	return plan
}

// parameterInUse 判断参数是否被任一绑定元素使用
// 规则沿用维护约定：
//   - 没有绑定元素即可删除
//   - 取值读取出错的参数一律按已使用处理，宁可少删
//   - 是/否参数只要有值即为已使用
//   - 字符串空值不算使用；数值 0 算使用
func parameterInUse(p model.ParameterDef) (bool, string) {
	if len(p.Values) == 0 {
		return false, "无绑定元素"
	}
	for _, v := range p.Values {
		if v.ReadError {
			return true, "取值读取出错，按已使用处理"
		}
		if !v.HasValue {
			continue
		}
		if p.IsYesNo {
			return true, "是/否参数已有取值"
		}
		switch p.StorageType {
		case model.StorageString:
			if v.Raw != "" {
				return true, "存在非空文本取值"
			}
		case model.StorageInteger, model.StorageDouble, model.StorageElementID:
			return true, "存在取值"
		}
	}
	return false, ""
}
