package exporter

import (
	"encoding/json"
	"testing"
	"time"

	"bimkeeper/internal/model"
	"bimkeeper/internal/naming"
	"bimkeeper/internal/planner"
	"bimkeeper/internal/store"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestExportReport(t *testing.T) {
	t.Parallel()

	snap := &model.Snapshot{
		ID:       1,
		Filename: "snapshot.xlsx",
		Document: model.DocumentInfo{Title: "GSK-HTL-RE-ZZ-M3-A-0001", RevitVersion: 2024},
	}

	worksetPlan := &planner.WorksetPlan{
		DocumentTitle: snap.Document.Title,
		Decisions: []planner.LinkDecision{
			{
				Link:     "GSK-HTL-RE-ZZ-M3-S-0001.rvt",
				LinkName: "GSK-HTL-RE-ZZ-M3-S-0001",
				Resolution: naming.Resolution{
					Matched:      true,
					WorksetName:  "Z-Linked RVT-S-HTL",
					InstanceName: "S-HTL",
				},
				Action:         planner.ActionCreate,
				FixTypeWorkset: true,
			},
		},
		UnusedWorksets: []planner.UnusedWorkset{{Name: "Z-Linked-RVT-E-ARP", Editable: false}},
	}
	parameterPlan := &planner.ParameterPlan{
		Checked: []planner.ParameterCheck{
			{Name: "FireRating", InUse: true, Reason: "存在非空文本取值"},
			{Name: "Obsolete"},
		},
		Unused: []string{"Obsolete"},
	}

	runs := []store.PlanRun{
		{ID: "run-1", SnapshotID: 1, Kind: "worksets", OptionsJSON: "{}", ResultJSON: mustJSON(t, worksetPlan), CreatedAt: time.Now()},
		{ID: "run-2", SnapshotID: 1, Kind: "parameters", OptionsJSON: "{}", ResultJSON: mustJSON(t, parameterPlan), CreatedAt: time.Now()},
	}

	f, err := NewExporter().ExportReport(snap, runs)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	sheets := f.GetSheetList()
	want := map[string]bool{"汇总": true, "链接工作集": true, "参数核查": true}
	for _, s := range sheets {
		delete(want, s)
	}
	if len(want) != 0 {
		t.Fatalf("missing sheets %v, got %v", want, sheets)
	}

	title, err := f.GetCellValue("汇总", "B2")
	if err != nil || title != "GSK-HTL-RE-ZZ-M3-A-0001" {
		t.Fatalf("title=%q err=%v", title, err)
	}

	link, err := f.GetCellValue("链接工作集", "A2")
	if err != nil || link != "GSK-HTL-RE-ZZ-M3-S-0001.rvt" {
		t.Fatalf("link=%q err=%v", link, err)
	}
	action, _ := f.GetCellValue("链接工作集", "D2")
	if action != "新建" {
		t.Fatalf("action=%q", action)
	}

	param, _ := f.GetCellValue("参数核查", "A2")
	if param != "FireRating" {
		t.Fatalf("param=%q", param)
	}
	reason, _ := f.GetCellValue("参数核查", "F2")
	if reason != "存在非空文本取值" {
		t.Fatalf("reason=%q", reason)
	}
}

func TestExportReport_UnknownKind(t *testing.T) {
	t.Parallel()

	snap := &model.Snapshot{ID: 1, Document: model.DocumentInfo{Title: "GSK-HTL-RE-ZZ-M3-A-0001"}}
	runs := []store.PlanRun{{ID: "run-x", Kind: "nonsense", ResultJSON: "{}"}}
	if _, err := NewExporter().ExportReport(snap, runs); err == nil {
		t.Fatalf("expected error")
	}
}

func TestBuildHostActionPlan(t *testing.T) {
	t.Parallel()

	snap := &model.Snapshot{ID: 7, Document: model.DocumentInfo{Title: "GSK-HTL-RE-ZZ-M3-A-0001"}}
	runs := []store.PlanRun{
		{ID: "run-1", Kind: "images", OptionsJSON: "{}", ResultJSON: `{"names":["logo.png"],"count":1}`},
	}

	plan := BuildHostActionPlan(snap, runs)
	if plan.SnapshotID != 7 || len(plan.Plans) != 1 {
		t.Fatalf("plan=%+v", plan)
	}

	// 执行清单必须可整体序列化，result 不得双重编码
	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Plans []struct {
			Result struct {
				Count int `json:"count"`
			} `json:"result"`
		} `json:"plans"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Plans[0].Result.Count != 1 {
		t.Fatalf("decoded=%+v", decoded)
	}
}
