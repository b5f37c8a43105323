package parser

import "testing"

func TestRecognize_Links(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer()
	result := r.Recognize("RVT Links", []string{"Link Name", "Instance Workset", "Type Workset"})
	if result.SheetType != SheetTypeLinks {
		t.Fatalf("type=%q confidence=%.2f", result.SheetType, result.Confidence)
	}
	if result.Confidence < 1.0 {
		t.Fatalf("confidence=%.2f", result.Confidence)
	}
}

func TestRecognize_Worksets(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer()
	result := r.Recognize("Worksets", []string{"Workset Name", "Is Default", "Is Editable"})
	if result.SheetType != SheetTypeWorksets {
		t.Fatalf("type=%q", result.SheetType)
	}
}

func TestRecognize_ParametersVsValues(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer()

	defs := r.Recognize("Project Parameters", []string{
		"Parameter Name", "Is Shared", "GUID", "Binding", "Storage Type", "Is YesNo", "Categories",
	})
	if defs.SheetType != SheetTypeParameters {
		t.Fatalf("defs type=%q confidence=%.2f", defs.SheetType, defs.Confidence)
	}

	values := r.Recognize("Parameter Values", []string{
		"Parameter Name", "Category", "Has Value", "Raw Value", "Read Error",
	})
	if values.SheetType != SheetTypeParameterValues {
		t.Fatalf("values type=%q confidence=%.2f", values.SheetType, values.Confidence)
	}
}

func TestRecognize_Document(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer()
	result := r.Recognize("Document", []string{
		"Title", "Revit Version", "Is Workshared", "Can Enable Worksharing",
		"Central GUID", "Central Path", "Central Size",
	})
	if result.SheetType != SheetTypeDocument {
		t.Fatalf("type=%q", result.SheetType)
	}
}

func TestRecognize_Unknown(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer()
	result := r.Recognize("Sheet1", []string{"A", "B", "C"})
	if result.SheetType != SheetTypeUnknown {
		t.Fatalf("type=%q", result.SheetType)
	}
	if result.Confidence != 0 {
		t.Fatalf("confidence=%.2f", result.Confidence)
	}
}
