package parser

import (
	"testing"

	"bimkeeper/internal/model"
)

func TestParseDocumentSheet(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Title", "Revit Version", "Is Workshared", "Can Enable Worksharing", "Central GUID", "Central Path", "Central Size"},
		{"GSK-HTL-RE-ZZ-M3-A-0001", "2024", "Yes", "No", "f4a1…", "\\\\server\\central.rvt", "52428800"},
	}
	doc, err := ParseDocumentSheet(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "GSK-HTL-RE-ZZ-M3-A-0001" || doc.RevitVersion != 2024 {
		t.Fatalf("doc=%+v", doc)
	}
	if !doc.IsWorkshared || doc.CanEnableWorksharing {
		t.Fatalf("worksharing flags: %+v", doc)
	}
	if doc.CentralSizeBytes != 52428800 {
		t.Fatalf("size=%d", doc.CentralSizeBytes)
	}
}

func TestParseDocumentSheet_MissingData(t *testing.T) {
	t.Parallel()

	if _, err := ParseDocumentSheet([][]string{{"Title", "Is Workshared"}}); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := ParseDocumentSheet(nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseLinksSheet(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Link Name", "Instance Workset", "Type Workset"},
		{"GSK-HTL-RE-ZZ-M3-S-0001.rvt", "Workset1", "Workset1"},
		{"", "", ""},
		{"GSK-HTL-RE-ZZ-M3-S-0002.rvt : 1", "Z-Linked RVT-S-HTL-RE", "Workset1"},
	}
	links, errs := ParseLinksSheet(rows)
	if len(errs) != 0 {
		t.Fatalf("errs=%v", errs)
	}
	if len(links) != 2 {
		t.Fatalf("links=%d", len(links))
	}
	if links[1].InstanceWorkset != "Z-Linked RVT-S-HTL-RE" {
		t.Fatalf("link=%+v", links[1])
	}
}

func TestParseParametersSheet(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Parameter Name", "Is Shared", "GUID", "Binding", "Storage Type", "Is YesNo", "Categories"},
		{"FireRating", "No", "", "Instance", "String", "No", "Walls; Doors"},
		{"Checked", "Yes", "8aa2…", "Type", "Integer", "Yes", "Doors"},
		{"Broken", "No", "", "Instance", "What", "No", ""},
	}
	params, errs := ParseParametersSheet(rows)
	if len(params) != 2 {
		t.Fatalf("params=%d", len(params))
	}
	if len(errs) != 1 {
		t.Fatalf("errs=%v", errs)
	}
	p := params[0]
	if p.Name != "FireRating" || !p.IsInstance || p.StorageType != model.StorageString {
		t.Fatalf("param=%+v", p)
	}
	if len(p.Categories) != 2 || p.Categories[1] != "Doors" {
		t.Fatalf("categories=%v", p.Categories)
	}
	if !params[1].IsYesNo || params[1].IsInstance {
		t.Fatalf("param=%+v", params[1])
	}
}

func TestParseParameterValuesSheet(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Parameter Name", "Category", "Has Value", "Raw Value", "Read Error"},
		{"FireRating", "Walls", "Yes", "60", "No"},
		{"FireRating", "Doors", "No", "", "No"},
		{"Checked", "Doors", "Yes", "1", "No"},
	}
	values, errs := ParseParameterValuesSheet(rows)
	if len(errs) != 0 {
		t.Fatalf("errs=%v", errs)
	}
	if len(values["FireRating"]) != 2 || len(values["Checked"]) != 1 {
		t.Fatalf("values=%v", values)
	}
	if !values["FireRating"][0].HasValue || values["FireRating"][0].Raw != "60" {
		t.Fatalf("value=%+v", values["FireRating"][0])
	}
}

func TestParseViewsSheet(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"View Name", "Is Template", "Workset Overrides Controlled"},
		{"Z-Linked RVT-A-HTL", "No", "No"},
		{"HTL 3D Template", "Yes", "Yes"},
	}
	views, errs := ParseViewsSheet(rows)
	if len(errs) != 0 {
		t.Fatalf("errs=%v", errs)
	}
	if len(views) != 2 {
		t.Fatalf("views=%d", len(views))
	}
	if views[1].IsTemplate != true || views[1].WorksetVGControlled != true {
		t.Fatalf("view=%+v", views[1])
	}
}
