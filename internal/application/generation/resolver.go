package generation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"brandflow-ai-api/internal/domain/entity"
	"brandflow-ai-api/internal/domain/repository"
	apperrors "brandflow-ai-api/pkg/errors"
	"brandflow-ai-api/pkg/logger"
	"brandflow-ai-api/pkg/metrics"
	"brandflow-ai-api/pkg/tracer"
)

// ContextResolver 按 brandId 解析品牌上下文
//
// 身份与风格手册是两次互不依赖的主键点查，并发发起后合并。
// 任一记录缺失不算失败（部分上下文有效），数据源故障才向上传播。
type ContextResolver struct {
	brands repository.BrandRepository
	kits   repository.BrandKitRepository
}

// NewContextResolver 创建品牌上下文解析器
func NewContextResolver(brands repository.BrandRepository, kits repository.BrandKitRepository) *ContextResolver {
	return &ContextResolver{brands: brands, kits: kits}
}

// Resolve 解析品牌上下文；brandID 为空时直接返回 (nil, nil)
func (r *ContextResolver) Resolve(ctx context.Context, brandID string) (*entity.BrandContext, error) {
	if brandID == "" {
		metrics.BrandContextLookupTotal.WithLabelValues("skipped").Inc()
		return nil, nil
	}

	ctx, span := tracer.Start(ctx, "generation.ResolveBrandContext")
	defer span.End()

	var (
		brand *entity.Brand
		kit   *entity.BrandKit
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		brand, err = r.brands.GetByID(gctx, brandID)
		return err
	})
	g.Go(func() error {
		var err error
		kit, err = r.kits.GetByBrandID(gctx, brandID)
		return err
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		metrics.BrandContextLookupTotal.WithLabelValues("error").Inc()
		return nil, apperrors.Wrap(err, apperrors.KindProviderUnavailable, "failed to load brand context")
	}

	bc := entity.MergeBrandContext(brand, kit)
	switch {
	case bc == nil:
		metrics.BrandContextLookupTotal.WithLabelValues("miss").Inc()
		logger.Debug(ctx, "brand context not found", "brand_id", brandID)
	case brand == nil || kit == nil:
		metrics.BrandContextLookupTotal.WithLabelValues("partial").Inc()
	default:
		metrics.BrandContextLookupTotal.WithLabelValues("hit").Inc()
	}

	return bc, nil
}
