package exporter

import (
	"encoding/json"
	"time"

	"bimkeeper/internal/model"
	"bimkeeper/internal/store"
)

// HostActionPlan 宿主插件的执行清单
// 插件按 kind 反序列化 result 并在文档中落实方案
type HostActionPlan struct {
	SnapshotID    int64             `json:"snapshotId"`
	DocumentTitle string            `json:"documentTitle"`
	GeneratedAt   time.Time         `json:"generatedAt"`
	Plans         []HostPlanPayload `json:"plans"`
}

// HostPlanPayload 单个方案的执行载荷
type HostPlanPayload struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Options   json.RawMessage `json:"options"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}

// BuildHostActionPlan 汇编宿主执行清单
func BuildHostActionPlan(snap *model.Snapshot, runs []store.PlanRun) HostActionPlan {
	plan := HostActionPlan{
		SnapshotID:    snap.ID,
		DocumentTitle: snap.Document.Title,
		GeneratedAt:   time.Now(),
	}
	for _, run := range runs {
		plan.Plans = append(plan.Plans, HostPlanPayload{
			ID:        run.ID,
			Kind:      run.Kind,
			Options:   json.RawMessage(run.OptionsJSON),
			Result:    json.RawMessage(run.ResultJSON),
			CreatedAt: run.CreatedAt,
		})
	}
	return plan
}
