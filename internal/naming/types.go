package naming

// ModelKind 链接模型类别
// 编号段首位数字按命名标准约定模型类别：1 开头为内装模型，2 开头为幕墙模型
type ModelKind string

const (
	KindInternal     ModelKind = "Internal"
	KindFacade       ModelKind = "Facade"
	KindUnclassified ModelKind = ""
)

// ParsedLinkName 链接文件名解析结果
// Matched=false 表示文件名不符合命名标准，属于正常输入而非错误
type ParsedLinkName struct {
	Matched bool `json:"matched"`

	Organization string `json:"organization"` // 第一段，如 GSK
	Originator   string `json:"originator"`   // 第二段，编制方代码，如 HTL
	Volume       string `json:"volume"`       // 第三段，解析后不参与输出
	Zone         string `json:"zone"`         // 第四段，分区代码，ZZ 表示全区
	Level        string `json:"level"`        // 第五段，解析后不参与输出
	Discipline   string `json:"discipline"`   // 第六段，专业代码，如 A
	Digits       string `json:"digits"`       // 第七段，纯数字编号
	Description  string `json:"description"`  // 编号后的自由文本后缀，可为空
}

// Options 工作集命名选项
// IncludeOriginator/IncludeZone 对应运行前的两个是/否确认项
type Options struct {
	Prefix            string `json:"prefix"`            // 链接工作集前缀，如 "Z-Linked RVT-"
	IncludeOriginator bool   `json:"includeOriginator"` // 专业为 A 时是否保留编制方段
	IncludeZone       bool   `json:"includeZone"`       // 是否保留分区段（ZZ 恒被省略）
}

// Context 一次运行内跨链接累积的消歧上下文
// 由调用方在两次 Resolve 之间维护，Resolve 本身只读不写
type Context struct {
	DocumentTitle        string   `json:"documentTitle"`        // 当前文档名，参与相似名匹配
	AllLinkNames         []string `json:"allLinkNames"`         // 本次运行全部链接名（已去扩展名）
	ExistingWorksetNames []string `json:"existingWorksetNames"` // 文档中已有的工作集名
	PlannedWorksetNames  []string `json:"plannedWorksetNames"`  // 本次运行已决定使用的工作集名
}

// Resolution 单个链接的解析结论
type Resolution struct {
	LinkName     string    `json:"linkName"`
	Matched      bool      `json:"matched"`
	WorksetName  string    `json:"worksetName"`
	InstanceName string    `json:"instanceName"`
	Suffix       string    `json:"suffix"` // 消歧后缀，可为空
	Kind         ModelKind `json:"kind"`
	BaseName     string    `json:"baseName"`
}
