package model

import "time"

// Snapshot 一次文档快照导入的元信息
type Snapshot struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"createdAt"`

	Document DocumentInfo `json:"document"`
}

// DocumentInfo 文档概要信息
// 由宿主插件在导出快照时写入 Document 表
type DocumentInfo struct {
	Title                string `json:"title"`
	RevitVersion         int    `json:"revitVersion"`
	IsWorkshared         bool   `json:"isWorkshared"`
	CanEnableWorksharing bool   `json:"canEnableWorksharing"`
	CentralGUID          string `json:"centralGuid"`  // 非中心模型为空
	CentralPath          string `json:"centralPath"`  // 用户可见路径
	CentralSizeBytes     int64  `json:"centralSizeBytes"`
}

// RevitLink 链接实例
type RevitLink struct {
	ID              int64  `json:"id"`
	SnapshotID      int64  `json:"snapshotId"`
	Name            string `json:"name"`            // 原始实例名，含 .rvt 及实例标注
	InstanceWorkset string `json:"instanceWorkset"` // 链接实例当前所在工作集
	TypeWorkset     string `json:"typeWorkset"`     // 链接类型当前所在工作集
}

// Workset 用户工作集
type Workset struct {
	ID         int64  `json:"id"`
	SnapshotID int64  `json:"snapshotId"`
	Name       string `json:"name"`
	IsDefault  bool   `json:"isDefault"`
	IsEditable bool   `json:"isEditable"` // 非可编辑工作集无法通过宿主 API 删除
}

// StorageType 参数存储类型，与宿主 API 的枚举一一对应
type StorageType string

const (
	StorageString    StorageType = "string"
	StorageInteger   StorageType = "integer"
	StorageDouble    StorageType = "double"
	StorageElementID StorageType = "elementId"
	StorageNone      StorageType = "none"
)

// ParameterDef 项目/共享参数定义及其绑定
type ParameterDef struct {
	ID          int64       `json:"id"`
	SnapshotID  int64       `json:"snapshotId"`
	Name        string      `json:"name"`
	IsShared    bool        `json:"isShared"`
	GUID        string      `json:"guid"` // 仅共享参数
	IsInstance  bool        `json:"isInstance"`
	StorageType StorageType `json:"storageType"`
	IsYesNo     bool        `json:"isYesNo"`
	Categories  []string    `json:"categories"` // 绑定的类别名

	Values []ParameterValue `json:"values"` // 各绑定类别元素的取值采样
}

// ParameterValue 某个元素上该参数的取值采样
type ParameterValue struct {
	Category  string `json:"category"`
	HasValue  bool   `json:"hasValue"`
	Raw       string `json:"raw"`       // 按存储类型序列化的原始值
	ReadError bool   `json:"readError"` // 宿主读取该值时出错
}

// ImageType 光栅图片类型
type ImageType struct {
	ID         int64  `json:"id"`
	SnapshotID int64  `json:"snapshotId"`
	Name       string `json:"name"`
}

// View3D 三维视图或三维视图样板
type View3D struct {
	ID         int64  `json:"id"`
	SnapshotID int64  `json:"snapshotId"`
	Name       string `json:"name"`
	IsTemplate bool   `json:"isTemplate"`
	// 样板是否控制工作集可见性覆盖；被控制时无法为视图单独设置工作集可见性
	WorksetVGControlled bool `json:"worksetVgControlled"`
}
