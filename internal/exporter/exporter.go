package exporter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"bimkeeper/internal/model"
	"bimkeeper/internal/planner"
	"bimkeeper/internal/store"
)

// Exporter 维护方案报告导出器
// 汇总表在前，每类方案一个 Sheet，供人工核对后交宿主插件执行
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportReport 生成方案报告工作簿
// runs 中同类方案应只保留一条（调用方取最新），顺序即 Sheet 顺序
func (e *Exporter) ExportReport(snap *model.Snapshot, runs []store.PlanRun) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.writeSummarySheet(f, snap, runs); err != nil {
		_ = f.Close()
		return nil, err
	}

	for _, run := range runs {
		var err error
		switch run.Kind {
		case "worksets":
			err = e.writeWorksetSheet(f, run)
		case "parameters", "shared_parameters":
			err = e.writeParameterSheet(f, run)
		case "images":
			err = e.writeImageSheet(f, run)
		case "views":
			err = e.writeViewSheet(f, run)
		default:
			err = fmt.Errorf("未知方案类型 %q", run.Kind)
		}
		if err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func (e *Exporter) writeSummarySheet(f *excelize.File, snap *model.Snapshot, runs []store.PlanRun) error {
	const sheet = "汇总"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"BIMKeeper 维护方案报告"},
		{"文档", snap.Document.Title},
		{"快照文件", snap.Filename},
		{"Revit 版本", snap.Document.RevitVersion},
		{"导出时间", time.Now().Format("2006-01-02 15:04:05")},
		{},
		{"方案", "运行 ID", "生成时间"},
	}
	for _, run := range runs {
		rows = append(rows, []interface{}{kindLabel(run.Kind), run.ID, run.CreatedAt.Format("2006-01-02 15:04:05")})
	}
	return writeRows(f, sheet, rows)
}

func (e *Exporter) writeWorksetSheet(f *excelize.File, run store.PlanRun) error {
	var plan planner.WorksetPlan
	if err := json.Unmarshal([]byte(run.ResultJSON), &plan); err != nil {
		return fmt.Errorf("解析工作集方案失败: %w", err)
	}

	const sheet = "链接工作集"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"链接", "实例名", "目标工作集", "处理方式", "修正实例工作集", "修正类型工作集"},
	}
	for _, d := range plan.Decisions {
		target := d.Resolution.WorksetName
		action := "新建"
		if d.Action == planner.ActionReuse {
			target = d.ReuseWorkset
			action = "复用"
		}
		rows = append(rows, []interface{}{
			d.Link, d.Resolution.InstanceName, target, action,
			boolLabel(d.FixInstanceWorkset), boolLabel(d.FixTypeWorkset),
		})
	}

	rows = append(rows, []interface{}{})
	rows = append(rows, []interface{}{"无主链接工作集", "可删除"})
	for _, u := range plan.UnusedWorksets {
		rows = append(rows, []interface{}{u.Name, boolLabel(u.Editable)})
	}
	if plan.WorksharingEnableRequired {
		rows = append(rows, []interface{}{})
		rows = append(rows, []interface{}{"前置条件", "执行前需先开启协作"})
	}
	return writeRows(f, sheet, rows)
}

func (e *Exporter) writeParameterSheet(f *excelize.File, run store.PlanRun) error {
	var plan planner.ParameterPlan
	if err := json.Unmarshal([]byte(run.ResultJSON), &plan); err != nil {
		return fmt.Errorf("解析参数方案失败: %w", err)
	}

	sheet := "参数核查"
	if run.Kind == "shared_parameters" {
		sheet = "共享参数核查"
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"参数名", "共享", "GUID", "实例绑定", "已使用", "判定依据"},
	}
	for _, p := range plan.Checked {
		rows = append(rows, []interface{}{
			p.Name, boolLabel(p.IsShared), p.GUID, boolLabel(p.IsInstance),
			boolLabel(p.InUse), p.Reason,
		})
	}
	return writeRows(f, sheet, rows)
}

func (e *Exporter) writeImageSheet(f *excelize.File, run store.PlanRun) error {
	var plan planner.ImagePlan
	if err := json.Unmarshal([]byte(run.ResultJSON), &plan); err != nil {
		return fmt.Errorf("解析图片方案失败: %w", err)
	}

	const sheet = "图片清理"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"图片类型"}}
	for _, name := range plan.Names {
		rows = append(rows, []interface{}{name})
	}
	return writeRows(f, sheet, rows)
}

func (e *Exporter) writeViewSheet(f *excelize.File, run store.PlanRun) error {
	var plan planner.ViewPlan
	if err := json.Unmarshal([]byte(run.ResultJSON), &plan); err != nil {
		return fmt.Errorf("解析视图方案失败: %w", err)
	}

	const sheet = "工作集视图"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"视图样板", plan.Template},
		{"需释放样板可见性控制", boolLabel(plan.RequiresOverrideRelease)},
		{},
		{"工作集", "处理方式"},
	}
	for _, d := range plan.Decisions {
		action := "新建视图"
		if d.Action == planner.ViewUpdate {
			action = "刷新视图"
		}
		rows = append(rows, []interface{}{d.Workset, action})
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func kindLabel(kind string) string {
	switch kind {
	case "worksets":
		return "链接工作集整理"
	case "parameters":
		return "项目参数清理"
	case "shared_parameters":
		return "共享参数清理"
	case "images":
		return "图片清理"
	case "views":
		return "工作集三维视图"
	}
	return kind
}

func boolLabel(b bool) string {
	if b {
		return "是"
	}
	return "否"
}
