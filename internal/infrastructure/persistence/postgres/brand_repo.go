// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"brandflow-ai-api/internal/domain/entity"
)

// BrandRepository 品牌身份仓储实现
type BrandRepository struct {
	client *Client
}

// NewBrandRepository 创建品牌仓储
func NewBrandRepository(client *Client) *BrandRepository {
	return &BrandRepository{client: client}
}

// GetByID 根据 ID 获取品牌身份；记录不存在时返回 (nil, nil)
func (r *BrandRepository) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	ctx, span := tracer.Start(ctx, "postgres.BrandRepository.GetByID")
	defer span.End()

	query := `
		SELECT id, org_id, name, industry, website, description, created_at, updated_at
		FROM brands
		WHERE id = $1
	`

	var brand entity.Brand
	var website, description sql.NullString

	err := r.client.db.QueryRowContext(ctx, query, id).Scan(
		&brand.ID, &brand.OrgID, &brand.Name, &brand.Industry,
		&website, &description,
		&brand.CreatedAt, &brand.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	if website.Valid {
		brand.Website = website.String
	}
	if description.Valid {
		brand.Description = description.String
	}

	return &brand, nil
}
