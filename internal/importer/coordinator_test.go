package importer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"bimkeeper/internal/parser"
	"bimkeeper/internal/store"
)

// writeSnapshotWorkbook 生成一个最小可导入的快照工作簿
func writeSnapshotWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	writeRows := func(sheet string, rows [][]interface{}) {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("new sheet %s: %v", sheet, err)
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	writeRows("Document", [][]interface{}{
		{"Title", "Revit Version", "Is Workshared", "Can Enable Worksharing", "Central GUID", "Central Path", "Central Size"},
		{"GSK-HTL-RE-ZZ-M3-A-0001", "2024", "Yes", "No", "a1b2", "\\\\srv\\central.rvt", "1048576"},
	})
	writeRows("RVT Links", [][]interface{}{
		{"Link Name", "Instance Workset", "Type Workset"},
		{"GSK-HTL-RE-ZZ-M3-S-0001.rvt", "Workset1", "Workset1"},
		{"GSK-HTL-RE-ZZ-M3-M-0001.rvt", "Workset1", "Workset1"},
	})
	writeRows("Worksets", [][]interface{}{
		{"Workset Name", "Is Default", "Is Editable"},
		{"Workset1", "Yes", "Yes"},
		{"Z-Linked RVT-S-HTL-RE", "No", "Yes"},
	})
	writeRows("Project Parameters", [][]interface{}{
		{"Parameter Name", "Is Shared", "GUID", "Binding", "Storage Type", "Is YesNo", "Categories"},
		{"FireRating", "No", "", "Instance", "String", "No", "Walls"},
	})
	writeRows("Parameter Values", [][]interface{}{
		{"Parameter Name", "Category", "Has Value", "Raw Value", "Read Error"},
		{"FireRating", "Walls", "Yes", "60", "No"},
	})
	writeRows("备注", [][]interface{}{
		{"内容"},
		{"人工填写的说明，不参与导入"},
	})

	// excelize 默认创建 Sheet1，删掉以免算进未识别表
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("delete default sheet: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestImport_SnapshotWorkbook(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "snapshot.xlsx")
	writeSnapshotWorkbook(t, input)

	st, err := store.New(filepath.Join(dir, "bimkeeper.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	coordinator := NewCoordinator(st)
	ch := coordinator.Import(ImportOptions{
		FilePath:       input,
		SelectSnapshot: true,
	})

	var (
		report     *parser.ImportReport
		snapshotID int64
	)
	for evt := range ch {
		if evt.Type == "error" {
			t.Fatalf("import error event: %s", evt.Message)
		}
		if evt.Type == "done" {
			m, ok := evt.Data.(map[string]interface{})
			if !ok {
				t.Fatalf("unexpected done data type: %T", evt.Data)
			}
			report, _ = m["report"].(*parser.ImportReport)
			snapshotID, _ = m["snapshot_id"].(int64)
		}
	}

	if report == nil {
		t.Fatalf("missing done report")
	}
	if report.TotalSheets != 6 {
		t.Fatalf("unexpected total sheets: %d", report.TotalSheets)
	}
	if report.ImportedSheets != 5 {
		t.Fatalf("unexpected imported sheets: %d, sheets=%v", report.ImportedSheets, collectSheetStatuses(report))
	}
	if report.SkippedSheets != 1 {
		t.Fatalf("unexpected skipped sheets: %d, sheets=%v", report.SkippedSheets, collectSheetStatuses(report))
	}
	for _, s := range report.Sheets {
		if s.Status == "error" {
			t.Fatalf("sheet %s parse error: %v", s.SheetName, s.Errors)
		}
	}

	snap, err := st.GetSnapshot(snapshotID)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if snap.Document.Title != "GSK-HTL-RE-ZZ-M3-A-0001" || !snap.Document.IsWorkshared {
		t.Fatalf("document=%+v", snap.Document)
	}

	current, err := st.GetCurrentSnapshotID()
	if err != nil {
		t.Fatalf("current snapshot: %v", err)
	}
	if current != snapshotID {
		t.Fatalf("current=%d want %d", current, snapshotID)
	}

	links, err := st.GetLinks(snapshotID)
	if err != nil {
		t.Fatalf("get links: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("links=%d", len(links))
	}

	params, err := st.GetParameters(snapshotID)
	if err != nil {
		t.Fatalf("get parameters: %v", err)
	}
	if len(params) != 1 {
		t.Fatalf("params=%d", len(params))
	}
	if len(params[0].Values) != 1 || params[0].Values[0].Raw != "60" {
		t.Fatalf("values=%+v", params[0].Values)
	}

	var importLogCount int
	if err := st.DB().QueryRow("SELECT COUNT(*) FROM import_logs").Scan(&importLogCount); err != nil {
		t.Fatalf("count import_logs: %v", err)
	}
	if importLogCount != 1 {
		t.Fatalf("unexpected import_logs count: %d", importLogCount)
	}
}

func collectSheetStatuses(r *parser.ImportReport) map[string]string {
	out := make(map[string]string, len(r.Sheets))
	for _, s := range r.Sheets {
		out[s.SheetName] = s.Status
	}
	return out
}
