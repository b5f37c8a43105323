package util

import (
	"fmt"
	"os"
)

// FormatFileSizeMB 以 MB 为单位格式化文件大小
func FormatFileSizeMB(sizeBytes int64) string {
	sizeMB := float64(sizeBytes) / 1024.0 / 1024.0
	return fmt.Sprintf("%.2f MB", sizeMB)
}

// FileSizeLabel 读取文件大小并格式化
// 读取失败时返回错误文案而不是报错，文件不可达属于常态
func FileSizeLabel(path string) string {
	fi, err := os.Stat(path)
	if err != nil {
		return "Error: " + err.Error()
	}
	return FormatFileSizeMB(fi.Size())
}
