// Package cart 借书车用例
// 所有写操作都在事务内执行,失败时整体回滚
package cart

import (
	"context"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "library/application/cart"

// observe 记录span和操作计数
func observe(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "cart."+op)
	err := fn(ctx)
	tracing.EndSpan(span, err)

	result := "success"
	if err != nil {
		result = string(apperrors.KindOf(err))
	}
	metrics.IncCounterVec(metrics.CartOperationsTotal, map[string]string{"operation": op, "result": result})
	return err
}
