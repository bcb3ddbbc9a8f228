// Package repository 提供领域仓储接口定义
package repository

import (
	"context"

	"brandflow-ai-api/internal/domain/entity"
)

// BrandRepository 品牌身份仓储（只读）
//
// 记录不存在时返回 (nil, nil)，只有数据源故障才返回错误。
type BrandRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
}

// BrandKitRepository 品牌风格手册仓储（只读）
type BrandKitRepository interface {
	GetByBrandID(ctx context.Context, brandID string) (*entity.BrandKit, error)
}
