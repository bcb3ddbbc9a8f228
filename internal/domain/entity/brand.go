// Package entity 提供领域实体定义
package entity

import "time"

// Brand 品牌身份
//
// 由仪表盘侧维护，本服务只读。Description 是品牌的自由文本介绍，
// 在缺少品牌手册时充当指南的兜底来源。
type Brand struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BrandKit 品牌风格手册片段
//
// 与 Brand 独立维护，可能不存在。存在时其字段在合并时优先于品牌身份。
type BrandKit struct {
	ID          string    `json:"id"`
	BrandID     string    `json:"brand_id"`
	Industry    string    `json:"industry,omitempty"`
	Guidelines  string    `json:"guidelines,omitempty"`
	Constraints string    `json:"constraints,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BrandContext 单次请求内合并后的品牌上下文
//
// 每次请求重新构建，请求结束后丢弃，绝不跨请求缓存。
type BrandContext struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Website     string `json:"website,omitempty"`
	Guidelines  string `json:"guidelines,omitempty"`
	Constraints string `json:"constraints,omitempty"`
}

// MergeBrandContext 合并品牌身份与风格手册片段
//
// 两个来源都允许缺失；重叠字段以手册片段为准。两者皆缺失时返回 nil。
func MergeBrandContext(brand *Brand, kit *BrandKit) *BrandContext {
	if brand == nil && kit == nil {
		return nil
	}

	bc := &BrandContext{}

	if brand != nil {
		bc.Name = brand.Name
		bc.Industry = brand.Industry
		bc.Website = brand.Website
		bc.Guidelines = brand.Description
	}

	if kit != nil {
		if kit.Industry != "" {
			bc.Industry = kit.Industry
		}
		if kit.Guidelines != "" {
			bc.Guidelines = kit.Guidelines
		}
		if kit.Constraints != "" {
			bc.Constraints = kit.Constraints
		}
	}

	return bc
}
