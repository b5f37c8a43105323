package planner

import "bimkeeper/internal/model"

// ImagePlan 光栅图片清理方案：全部图片类型一并删除
type ImagePlan struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// BuildImagePlan 收集快照中的全部图片类型
func BuildImagePlan(images []model.ImageType) *ImagePlan {
	plan := &ImagePlan{}
	for _, img := range images {
		plan.Names = append(plan.Names, img.Name)
	}
	plan.Count = len(plan.Names)
	return plan
}
