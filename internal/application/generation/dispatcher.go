package generation

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apperrors "brandflow-ai-api/pkg/errors"
	"brandflow-ai-api/pkg/logger"
	"brandflow-ai-api/pkg/metrics"
	"brandflow-ai-api/pkg/tracer"
)

// defaultProviderTimeout 上游模型调用的兜底超时
const defaultProviderTimeout = 60 * time.Second

// ProviderClient 上游文本生成服务的端口
//
// 实现方负责把传输层结果归类为 pkg/errors 的五类错误之一。
type ProviderClient interface {
	Complete(ctx context.Context, prompt PromptPair) (string, error)
}

// Outcome 调度成功的终态
//
// Result 可能是模型按约定形状输出的对象，也可能是 rawContent 兜底形态，
// 两者对调用方都是合法终态。
type Outcome struct {
	Operation   Operation
	Result      map[string]any
	GeneratedAt time.Time
}

// Dispatcher 内容生成调度器
//
// 每个请求严格单向经过五个阶段，恰好发起一次模型调用，无重试无循环。
// 不持有任何跨请求可变状态。
type Dispatcher struct {
	resolver *ContextResolver
	client   ProviderClient
	timeout  time.Duration
}

// NewDispatcher 创建调度器；timeout <= 0 时使用兜底超时
func NewDispatcher(resolver *ContextResolver, client ProviderClient, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &Dispatcher{
		resolver: resolver,
		client:   client,
		timeout:  timeout,
	}
}

// Dispatch 执行调度流水线
//
// 失败一律返回 *apperrors.AppError，由接口层翻译为对外错误信封。
// 校验失败的请求不会触达模型服务。
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) (*Outcome, error) {
	ctx, span := tracer.Start(ctx, "generation.Dispatch")
	defer span.End()

	start := time.Now()
	// 标签值只接受已知操作字面量：请求携带的任意字符串若直接进标签，
	// 调用方就能无限制铸造新的时间序列
	op := "invalid"
	if req != nil && req.Operation.Valid() {
		op = string(req.Operation)
	}
	span.SetAttributes(attribute.String("generation.operation", op))

	outcome, err := d.dispatch(ctx, req)
	// 失败耗时（尤其是超时）同样要进直方图
	metrics.GenerationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		appErr := apperrors.AsAppError(err)
		span.RecordError(appErr)
		metrics.GenerationTotal.WithLabelValues(op, string(appErr.Kind)).Inc()
		return nil, appErr
	}

	metrics.GenerationTotal.WithLabelValues(op, "success").Inc()
	return outcome, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, req *Request) (*Outcome, error) {
	// Validated
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	ctx = logger.WithContext(ctx, logger.OperationKey, string(req.Operation))

	// ContextResolved
	brand, err := d.resolver.Resolve(ctx, req.BrandID)
	if err != nil {
		return nil, err
	}

	// PromptBuilt
	strategy, ok := StrategyFor(req.Operation)
	if !ok {
		// 校验已挡住未知操作；触发这里说明策略表和操作表不一致
		return nil, apperrors.New(apperrors.KindUnknown, "no strategy registered for operation").
			WithDetail(string(req.Operation))
	}
	prompt := strategy(req, brand)

	// ProviderInvoked：超时在这里统一施加，调用方断开时 ctx 同步取消出站调用
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	raw, err := d.client.Complete(callCtx, prompt)
	if err != nil {
		logger.Warn(ctx, "provider call failed",
			"kind", string(apperrors.AsAppError(err).Kind),
		)
		return nil, err
	}

	// Extracted：提取失败不是错误，降级为原文兜底
	result := Extract(raw)
	if IsFallback(result) {
		metrics.GenerationFallbackTotal.WithLabelValues(string(req.Operation)).Inc()
		logger.Info(ctx, "provider output degraded to raw content", "raw_len", len(raw))
	}

	return &Outcome{
		Operation:   req.Operation,
		Result:      result,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
