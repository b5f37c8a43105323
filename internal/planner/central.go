package planner

import (
	"fmt"

	"bimkeeper/internal/model"
	"bimkeeper/internal/util"
)

// CentralInfo 中心模型信息
type CentralInfo struct {
	IsCentral bool   `json:"isCentral"`
	GUID      string `json:"guid,omitempty"`
	Path      string `json:"path,omitempty"`
	SizeLabel string `json:"sizeLabel,omitempty"`
	Message   string `json:"message"` // 面向用户的汇总文案
}

// BuildCentralInfo 汇总中心模型 GUID、路径与文件大小
// 非中心模型不是错误，照常返回说明文案
func BuildCentralInfo(doc model.DocumentInfo) CentralInfo {
	info := CentralInfo{}

	if doc.CentralGUID != "" {
		info.IsCentral = true
		info.GUID = doc.CentralGUID
		info.Message = "中心模型 GUID：" + doc.CentralGUID
	} else {
		info.Message = "该模型不是存放于 Revit Server 或云端的中心模型，没有 GUID。"
	}

	if doc.CentralPath != "" {
		info.Path = doc.CentralPath
		if doc.CentralSizeBytes > 0 {
			info.SizeLabel = util.FormatFileSizeMB(doc.CentralSizeBytes)
		} else {
			// 快照未带文件大小时尝试本机读取，失败时给出错误文案而非报错
			info.SizeLabel = util.FileSizeLabel(doc.CentralPath)
		}
		info.Message += fmt.Sprintf("\n\n中心模型路径：%s\n模型大小：%s", info.Path, info.SizeLabel)
	}

	return info
}
