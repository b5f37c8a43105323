package planner

import (
	"errors"
	"testing"

	"bimkeeper/internal/model"
	"bimkeeper/internal/naming"
)

func testOptions() naming.Options {
	return naming.Options{Prefix: "Z-Linked RVT-", IncludeOriginator: true, IncludeZone: true}
}

func worksharedDoc() model.DocumentInfo {
	return model.DocumentInfo{Title: "GSK-HTL-RE-ZZ-M3-A-0001", IsWorkshared: true}
}

func TestBuildWorksetPlan_NoLinks(t *testing.T) {
	t.Parallel()

	_, err := BuildWorksetPlan(worksharedDoc(), nil, nil, testOptions())
	if !errors.Is(err, ErrNoLinks) {
		t.Fatalf("err=%v", err)
	}
}

func TestBuildWorksetPlan_WorksharingUnavailable(t *testing.T) {
	t.Parallel()

	doc := model.DocumentInfo{Title: "GSK-HTL-RE-ZZ-M3-A-0001"}
	links := []model.RevitLink{{Name: "GSK-HTL-RE-ZZ-M3-S-0001.rvt"}}
	_, err := BuildWorksetPlan(doc, links, nil, testOptions())
	if !errors.Is(err, ErrWorksharingUnavailable) {
		t.Fatalf("err=%v", err)
	}
}

func TestBuildWorksetPlan_EnableRequired(t *testing.T) {
	t.Parallel()

	// 未开启协作但可开启：方案成立，既有工作集核查全部跳过
	doc := model.DocumentInfo{Title: "GSK-HTL-RE-ZZ-M3-A-0001", CanEnableWorksharing: true}
	links := []model.RevitLink{{Name: "GSK-HTL-RE-ZZ-M3-S-0001.rvt"}}
	worksets := []model.Workset{{Name: "Z-Linked RVT-S-HTL", IsEditable: true}}

	plan, err := BuildWorksetPlan(doc, links, worksets, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.WorksharingEnableRequired {
		t.Fatalf("expected enable required")
	}
	if plan.UnusedWorksets != nil {
		t.Fatalf("unused=%v", plan.UnusedWorksets)
	}
	if plan.DefaultWorkset != "" {
		t.Fatalf("default=%q", plan.DefaultWorkset)
	}
	if len(plan.Decisions) != 1 || plan.Decisions[0].Action != ActionCreate {
		t.Fatalf("decisions=%+v", plan.Decisions)
	}
}

func TestBuildWorksetPlan_ReuseAndCreate(t *testing.T) {
	t.Parallel()

	links := []model.RevitLink{
		{Name: "GSK-HTL-RE-ZZ-M3-S-0001.rvt", InstanceWorkset: "Z-Linked RVT-S-HTL", TypeWorkset: "Workset1"},
		{Name: "GSK-HTL-RE-ZZ-M3-M-0001.rvt", InstanceWorkset: "Workset1", TypeWorkset: "Workset1"},
	}
	worksets := []model.Workset{
		{Name: "Workset1", IsDefault: true, IsEditable: true},
		{Name: "Z-Linked RVT-S-HTL-RE", IsEditable: true},
		{Name: "Z-Linked-RVT-E-ARP", IsEditable: false}, // 旧前缀写法
		{Name: "Shared Levels and Grids", IsEditable: true},
	}

	plan, err := BuildWorksetPlan(worksharedDoc(), links, worksets, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.DefaultWorkset != "Workset1" {
		t.Fatalf("default=%q", plan.DefaultWorkset)
	}

	first := plan.Decisions[0]
	if first.Action != ActionReuse || first.ReuseWorkset != "Z-Linked RVT-S-HTL-RE" {
		t.Fatalf("first=%+v", first)
	}
	if first.FixInstanceWorkset {
		t.Fatalf("instance workset already matches: %+v", first)
	}
	if !first.FixTypeWorkset {
		t.Fatalf("type workset must be corrected: %+v", first)
	}

	second := plan.Decisions[1]
	if second.Action != ActionCreate {
		t.Fatalf("second=%+v", second)
	}
	if second.Resolution.WorksetName != "Z-Linked RVT-M-HTL" {
		t.Fatalf("workset=%q", second.Resolution.WorksetName)
	}

	// 旧前缀工作集未被复用，列为无主；不可编辑则标记为无法删除
	if len(plan.UnusedWorksets) != 1 {
		t.Fatalf("unused=%+v", plan.UnusedWorksets)
	}
	if plan.UnusedWorksets[0].Name != "Z-Linked-RVT-E-ARP" || plan.UnusedWorksets[0].Editable {
		t.Fatalf("unused=%+v", plan.UnusedWorksets[0])
	}

	want := WorksetSummary{Links: 2, Creates: 1, Reuses: 1, TypeFixes: 1, UnusedLocked: 1}
	if plan.Summary != want {
		t.Fatalf("summary=%+v want=%+v", plan.Summary, want)
	}
}

func TestBuildWorksetPlan_DuplicateInstancesSharePlannedWorkset(t *testing.T) {
	t.Parallel()

	// 同一链接文件的多个实例：第一个新建，其余复用本次规划的工作集
	links := []model.RevitLink{
		{Name: "GSK-HTL-RE-ZZ-M3-M-0001.rvt : 1"},
		{Name: "GSK-HTL-RE-ZZ-M3-M-0001.rvt : 2"},
	}

	plan, err := BuildWorksetPlan(worksharedDoc(), links, nil, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Decisions) != 2 {
		t.Fatalf("decisions=%d", len(plan.Decisions))
	}

	first, second := plan.Decisions[0], plan.Decisions[1]
	if first.LinkName != "GSK-HTL-RE-ZZ-M3-M-0001" {
		t.Fatalf("linkName=%q", first.LinkName)
	}
	// 两个实例名相同，相似名匹配触发消歧后缀
	if first.Resolution.WorksetName != "Z-Linked RVT-M-HTL-0001" {
		t.Fatalf("workset=%q", first.Resolution.WorksetName)
	}
	if first.Action != ActionCreate {
		t.Fatalf("first=%+v", first)
	}
	if second.Action != ActionReuse || second.ReuseWorkset != first.Resolution.WorksetName {
		t.Fatalf("second=%+v", second)
	}

	if plan.Summary.Creates != 1 || plan.Summary.Reuses != 1 {
		t.Fatalf("summary=%+v", plan.Summary)
	}
}
