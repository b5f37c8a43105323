package parser

import (
	"fmt"
	"strings"

	"bimkeeper/internal/model"
)

// ParseDocumentSheet 解析文档概要 Sheet：表头行加单条数据行
func ParseDocumentSheet(rows [][]string) (model.DocumentInfo, error) {
	headerIdx := FindHeaderRow(rows, []string{"title", "workshared"})
	if headerIdx < 0 || headerIdx+1 >= len(rows) {
		return model.DocumentInfo{}, fmt.Errorf("document sheet has no data row")
	}
	header := rows[headerIdx]
	row := rows[headerIdx+1]

	doc := model.DocumentInfo{
		Title:                CellAt(row, ColumnIndex(header, "title|document title")),
		RevitVersion:         ParseIntCell(CellAt(row, ColumnIndex(header, "revit version|version"))),
		IsWorkshared:         ParseBoolCell(CellAt(row, ColumnIndex(header, "is workshared|workshared"))),
		CanEnableWorksharing: ParseBoolCell(CellAt(row, ColumnIndex(header, "can enable worksharing|can enable"))),
		CentralGUID:          CellAt(row, ColumnIndex(header, "central guid|guid")),
		CentralPath:          CellAt(row, ColumnIndex(header, "central path|path")),
		CentralSizeBytes:     ParseInt64Cell(CellAt(row, ColumnIndex(header, "central size|size"))),
	}
	if doc.Title == "" {
		return doc, fmt.Errorf("document sheet is missing title")
	}
	return doc, nil
}

// ParseLinksSheet 解析链接实例 Sheet
func ParseLinksSheet(rows [][]string) ([]model.RevitLink, []string) {
	headerIdx := FindHeaderRow(rows, []string{"link name|link"})
	if headerIdx < 0 {
		return nil, []string{"links sheet has no header row"}
	}
	header := rows[headerIdx]
	nameIdx := ColumnIndex(header, "link name|link")
	instanceIdx := ColumnIndex(header, "instance workset")
	typeIdx := ColumnIndex(header, "type workset")

	var links []model.RevitLink
	var errs []string
	for i, row := range rows[headerIdx+1:] {
		name := CellAt(row, nameIdx)
		if name == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(name), ".rvt") {
			errs = append(errs, fmt.Sprintf("row %d: link name %q has no .rvt extension", headerIdx+i+2, name))
		}
		links = append(links, model.RevitLink{
			Name:            name,
			InstanceWorkset: CellAt(row, instanceIdx),
			TypeWorkset:     CellAt(row, typeIdx),
		})
	}
	return links, errs
}

// ParseWorksetsSheet 解析用户工作集 Sheet
func ParseWorksetsSheet(rows [][]string) ([]model.Workset, []string) {
	headerIdx := FindHeaderRow(rows, []string{"workset name|workset"})
	if headerIdx < 0 {
		return nil, []string{"worksets sheet has no header row"}
	}
	header := rows[headerIdx]
	nameIdx := ColumnIndex(header, "workset name|workset")
	defaultIdx := ColumnIndex(header, "is default|default")
	editableIdx := ColumnIndex(header, "is editable|editable")

	var worksets []model.Workset
	for _, row := range rows[headerIdx+1:] {
		name := CellAt(row, nameIdx)
		if name == "" {
			continue
		}
		worksets = append(worksets, model.Workset{
			Name:       name,
			IsDefault:  ParseBoolCell(CellAt(row, defaultIdx)),
			IsEditable: ParseBoolCell(CellAt(row, editableIdx)),
		})
	}
	return worksets, nil
}

// ParseParametersSheet 解析参数定义 Sheet
// 取值采样在独立 Sheet 中，由导入协调器按参数名并回
func ParseParametersSheet(rows [][]string) ([]model.ParameterDef, []string) {
	headerIdx := FindHeaderRow(rows, []string{"parameter name|parameter"})
	if headerIdx < 0 {
		return nil, []string{"parameters sheet has no header row"}
	}
	header := rows[headerIdx]
	nameIdx := ColumnIndex(header, "parameter name|parameter")
	sharedIdx := ColumnIndex(header, "is shared|shared")
	guidIdx := ColumnIndex(header, "guid")
	instanceIdx := ColumnIndex(header, "is instance|instance|binding")
	storageIdx := ColumnIndex(header, "storage type|storage")
	yesNoIdx := ColumnIndex(header, "is yes no|yes no|yesno")
	categoriesIdx := ColumnIndex(header, "categories|category")

	var params []model.ParameterDef
	var errs []string
	for i, row := range rows[headerIdx+1:] {
		name := CellAt(row, nameIdx)
		if name == "" {
			continue
		}
		storage, err := parseStorageType(CellAt(row, storageIdx))
		if err != nil {
			errs = append(errs, fmt.Sprintf("row %d: %v", headerIdx+i+2, err))
			continue
		}
		params = append(params, model.ParameterDef{
			Name:        name,
			IsShared:    ParseBoolCell(CellAt(row, sharedIdx)),
			GUID:        CellAt(row, guidIdx),
			IsInstance:  parseBinding(CellAt(row, instanceIdx)),
			StorageType: storage,
			IsYesNo:     ParseBoolCell(CellAt(row, yesNoIdx)),
			Categories:  splitCategories(CellAt(row, categoriesIdx)),
		})
	}
	return params, errs
}

// ParseParameterValuesSheet 解析参数取值采样 Sheet，按参数名归组
func ParseParameterValuesSheet(rows [][]string) (map[string][]model.ParameterValue, []string) {
	headerIdx := FindHeaderRow(rows, []string{"parameter name|parameter"})
	if headerIdx < 0 {
		return nil, []string{"parameter values sheet has no header row"}
	}
	header := rows[headerIdx]
	nameIdx := ColumnIndex(header, "parameter name|parameter")
	categoryIdx := ColumnIndex(header, "category")
	hasValueIdx := ColumnIndex(header, "has value")
	rawIdx := ColumnIndex(header, "raw value|value")
	errorIdx := ColumnIndex(header, "read error|error")

	values := make(map[string][]model.ParameterValue)
	for _, row := range rows[headerIdx+1:] {
		name := CellAt(row, nameIdx)
		if name == "" {
			continue
		}
		values[name] = append(values[name], model.ParameterValue{
			Category:  CellAt(row, categoryIdx),
			HasValue:  ParseBoolCell(CellAt(row, hasValueIdx)),
			Raw:       CellAt(row, rawIdx),
			ReadError: ParseBoolCell(CellAt(row, errorIdx)),
		})
	}
	return values, nil
}

// ParseImagesSheet 解析图片类型 Sheet
func ParseImagesSheet(rows [][]string) ([]model.ImageType, []string) {
	headerIdx := FindHeaderRow(rows, []string{"image name|image"})
	if headerIdx < 0 {
		return nil, []string{"images sheet has no header row"}
	}
	nameIdx := ColumnIndex(rows[headerIdx], "image name|image")

	var images []model.ImageType
	for _, row := range rows[headerIdx+1:] {
		name := CellAt(row, nameIdx)
		if name == "" {
			continue
		}
		images = append(images, model.ImageType{Name: name})
	}
	return images, nil
}

// ParseViewsSheet 解析三维视图 Sheet
func ParseViewsSheet(rows [][]string) ([]model.View3D, []string) {
	headerIdx := FindHeaderRow(rows, []string{"view name|view"})
	if headerIdx < 0 {
		return nil, []string{"views sheet has no header row"}
	}
	header := rows[headerIdx]
	nameIdx := ColumnIndex(header, "view name|view")
	templateIdx := ColumnIndex(header, "is template|template")
	controlledIdx := ColumnIndex(header, "workset overrides controlled|workset overrides|vg")

	var views []model.View3D
	for _, row := range rows[headerIdx+1:] {
		name := CellAt(row, nameIdx)
		if name == "" {
			continue
		}
		views = append(views, model.View3D{
			Name:                name,
			IsTemplate:          ParseBoolCell(CellAt(row, templateIdx)),
			WorksetVGControlled: ParseBoolCell(CellAt(row, controlledIdx)),
		})
	}
	return views, nil
}

// parseStorageType 宿主导出的存储类型写法宽松，大小写不敏感
func parseStorageType(raw string) (model.StorageType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "string", "text":
		return model.StorageString, nil
	case "integer", "int":
		return model.StorageInteger, nil
	case "double", "number":
		return model.StorageDouble, nil
	case "elementid", "element id":
		return model.StorageElementID, nil
	case "", "none":
		return model.StorageNone, nil
	}
	return model.StorageNone, fmt.Errorf("unknown storage type %q", raw)
}

// parseBinding 绑定列既可能是 Instance/Type 文本，也可能是布尔
func parseBinding(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "instance":
		return true
	case "type":
		return false
	}
	return ParseBoolCell(raw)
}

func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	var categories []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			categories = append(categories, p)
		}
	}
	return categories
}
