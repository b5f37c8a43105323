package naming

import "testing"

func TestParseLinkName_Standard(t *testing.T) {
	t.Parallel()

	p := ParseLinkName("GSK-HTL-RE-ZZ-M3-A-0001")
	if !p.Matched {
		t.Fatalf("expected matched")
	}
	if p.Organization != "GSK" || p.Originator != "HTL" || p.Zone != "ZZ" {
		t.Fatalf("unexpected head tokens: %s %s %s", p.Organization, p.Originator, p.Zone)
	}
	if p.Volume != "RE" || p.Level != "M3" {
		t.Fatalf("unexpected placeholder tokens: %s %s", p.Volume, p.Level)
	}
	if p.Discipline != "A" || p.Digits != "0001" || p.Description != "" {
		t.Fatalf("unexpected tail tokens: %s %s %q", p.Discipline, p.Digits, p.Description)
	}
}

func TestParseLinkName_WithDescription(t *testing.T) {
	t.Parallel()

	p := ParseLinkName("GSK-HTL-RE-ZZ-M3-A-0002 Existing")
	if !p.Matched {
		t.Fatalf("expected matched")
	}
	if p.Digits != "0002" {
		t.Fatalf("digits=%q", p.Digits)
	}
	if p.Description != "Existing" {
		t.Fatalf("description=%q", p.Description)
	}
	// 空后缀与无后缀行为一致
	q := ParseLinkName("GSK-HTL-RE-ZZ-M3-A-0002")
	if q.Description != "" || q.Digits != p.Digits {
		t.Fatalf("empty description mismatch: %+v vs %+v", q, p)
	}
}

func TestParseLinkName_NoMatch(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"",
		"randomfile",
		"GSK-HTL-RE",
		"GSK-HTL-RE-ZZ-M3-A-0001-Extra", // 后缀不允许短横线
		"GSK-HTL-RE-ZZ-M3-A",            // 缺编号段
	} {
		if p := ParseLinkName(name); p.Matched {
			t.Fatalf("%q: expected no match, got %+v", name, p)
		}
	}
}

func TestParsedLinkName_Kind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want ModelKind
	}{
		{"GSK-HTL-RE-ZZ-M3-A-100001", KindInternal},
		{"GSK-HTL-RE-ZZ-M3-A-200001", KindFacade},
		{"GSK-HTL-RE-ZZ-M3-A-0001", KindUnclassified},
		{"GSK-HTL-RE-ZZ-M3-S-100001", KindUnclassified}, // 仅建筑专业分类
	}
	for _, c := range cases {
		if got := ParseLinkName(c.name).Kind(); got != c.want {
			t.Fatalf("%s: kind want=%q got=%q", c.name, c.want, got)
		}
	}
}

func TestParsedLinkName_PartOrdinal(t *testing.T) {
	t.Parallel()

	if got := ParseLinkName("GSK-HTL-RE-ZZ-M3-A-0002").PartOrdinal(); got != 2 {
		t.Fatalf("ordinal want=2 got=%d", got)
	}
	if got := ParseLinkName("GSK-HTL-RE-ZZ-M3-A-100001").PartOrdinal(); got != 1 {
		t.Fatalf("ordinal want=1 got=%d", got)
	}
	if got := (ParsedLinkName{}).PartOrdinal(); got != 0 {
		t.Fatalf("ordinal want=0 got=%d", got)
	}
}

func TestParsedLinkName_BaseName(t *testing.T) {
	t.Parallel()

	if got := ParseLinkName("GSK-HTL-RE-ZZ-M3-A-0001").BaseName(); got != "GSK-HTL-RE-ZZ-M3-A-" {
		t.Fatalf("base=%q", got)
	}
	// 编号段数字出现在前部段落时不得误删（如 M3 中的 3）
	if got := ParseLinkName("GSK-HTL-RE-ZZ-M3-A-3").BaseName(); got != "GSK-HTL-RE-ZZ-M3-A-" {
		t.Fatalf("base=%q", got)
	}
	if got := ParseLinkName("GSK-HTL-RE-ZZ-M3-A-0002 Existing").BaseName(); got != "GSK-HTL-RE-ZZ-M3-A-" {
		t.Fatalf("base=%q", got)
	}
	if got := (ParsedLinkName{}).BaseName(); got != "" {
		t.Fatalf("base=%q", got)
	}
}

func TestDocumentZone(t *testing.T) {
	t.Parallel()

	if got := DocumentZone("GSK-HTL-RE-S2-M3-A-0001"); got != "S2" {
		t.Fatalf("zone=%q", got)
	}
	if got := DocumentZone("randomfile"); got != "" {
		t.Fatalf("zone=%q", got)
	}
	if got := DocumentZone("GSK-HTL-RE"); got != "" {
		t.Fatalf("zone=%q", got)
	}
}

func TestStripModelExtension(t *testing.T) {
	t.Parallel()

	if got := StripModelExtension("GSK-HTL-RE-ZZ-M3-A-0001.rvt"); got != "GSK-HTL-RE-ZZ-M3-A-0001" {
		t.Fatalf("got=%q", got)
	}
	if got := StripModelExtension("GSK-HTL-RE-ZZ-M3-A-0001.rvt : 1"); got != "GSK-HTL-RE-ZZ-M3-A-0001" {
		t.Fatalf("got=%q", got)
	}
	if got := StripModelExtension("no-extension"); got != "no-extension" {
		t.Fatalf("got=%q", got)
	}
}
