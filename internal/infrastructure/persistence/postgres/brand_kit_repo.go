package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"brandflow-ai-api/internal/domain/entity"
)

// BrandKitRepository 品牌风格手册仓储实现
type BrandKitRepository struct {
	client *Client
}

// NewBrandKitRepository 创建品牌风格手册仓储
func NewBrandKitRepository(client *Client) *BrandKitRepository {
	return &BrandKitRepository{client: client}
}

// GetByBrandID 根据品牌 ID 获取风格手册；记录不存在时返回 (nil, nil)
//
// 一个品牌最多一份手册，取最近更新的一行以容忍历史脏数据。
func (r *BrandKitRepository) GetByBrandID(ctx context.Context, brandID string) (*entity.BrandKit, error) {
	ctx, span := tracer.Start(ctx, "postgres.BrandKitRepository.GetByBrandID")
	defer span.End()

	query := `
		SELECT id, brand_id, industry, guidelines, constraints, created_at, updated_at
		FROM brand_kits
		WHERE brand_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var kit entity.BrandKit
	var industry, guidelines, constraints sql.NullString

	err := r.client.db.QueryRowContext(ctx, query, brandID).Scan(
		&kit.ID, &kit.BrandID,
		&industry, &guidelines, &constraints,
		&kit.CreatedAt, &kit.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get brand kit: %w", err)
	}

	if industry.Valid {
		kit.Industry = industry.String
	}
	if guidelines.Valid {
		kit.Guidelines = guidelines.String
	}
	if constraints.Valid {
		kit.Constraints = constraints.String
	}

	return &kit, nil
}
