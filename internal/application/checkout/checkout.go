package checkout

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/cart"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const (
	tracerName     = "library/application/checkout"
	publishTimeout = 3 * time.Second
)

// CheckoutUseCase 结账:把借书车里的书全部借出
//
// 防超卖流程(同一事务内):
//  1. 按姓名找到读者
//  2. 读取车内条目,为空直接失败
//  3. 逐本 SELECT ... FOR UPDATE 锁定图书行,校验上架且有余量
//  4. UPDATE ... WHERE book_count > 0 扣减一册,影响0行同样视为不可借
//  5. 写借阅记录,清空车内条目
//
// 任一步失败整体回滚。两个并发结账争最后一册时,后到者在行锁上等待,
// 拿到锁时看到的册数已经是0。
type CheckoutUseCase struct {
	userRepo    user.Repository
	cartRepo    cart.Repository
	catalogRepo catalog.Repository
	loanRepo    loan.Repository
	publisher   loan.EventPublisher
	txManager   *rdb.TxManager
	now         func() time.Time
}

// NewCheckoutUseCase 创建结账用例
func NewCheckoutUseCase(
	userRepo user.Repository,
	cartRepo cart.Repository,
	catalogRepo catalog.Repository,
	loanRepo loan.Repository,
	publisher loan.EventPublisher,
	txManager *rdb.TxManager,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		userRepo:    userRepo,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		loanRepo:    loanRepo,
		publisher:   publisher,
		txManager:   txManager,
		now:         time.Now,
	}
}

// CheckoutRequest 结账请求
type CheckoutRequest struct {
	UserName string
	CartID   uint
}

// CheckoutResponse 结账结果
type CheckoutResponse struct {
	CartID     uint   `json:"cartID"`
	UserID     uint   `json:"userID"`
	Books      int    `json:"books"`
	BookIDs    []uint `json:"bookIDs"`
	BorrowDate string `json:"borrowDate"`
}

// Execute 执行结账
func (uc *CheckoutUseCase) Execute(ctx context.Context, req CheckoutRequest) (resp *CheckoutResponse, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, "checkout")
	span.SetAttributes(
		attribute.Int64("cart.id", int64(req.CartID)),
		attribute.String("user.name", req.UserName),
	)
	defer func() {
		tracing.EndSpan(span, err)
		metrics.ObserveHistogram(metrics.CheckoutDuration, time.Since(start).Seconds())
		metrics.IncCounterVec(metrics.CheckoutsTotal, map[string]string{"result": resultLabel(err)})
	}()

	var evt *loan.CheckoutCompleted
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.FindByName(txCtx, req.UserName)
		if err != nil {
			return err
		}

		items, err := uc.cartRepo.ListItems(txCtx, req.CartID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return cart.ErrCartEmpty.WithMessage("借书车(ID=%d)为空或不存在", req.CartID)
		}

		borrowedAt := uc.now()
		bookIDs := make([]uint, 0, len(items))
		for _, item := range items {
			if err := uc.lend(txCtx, u.ID, item, borrowedAt); err != nil {
				return err
			}
			bookIDs = append(bookIDs, item.BookID)
		}

		if _, err := uc.cartRepo.ClearItems(txCtx, req.CartID); err != nil {
			return err
		}

		evt = &loan.CheckoutCompleted{
			CartID:     req.CartID,
			UserID:     u.ID,
			UserName:   u.Name,
			BookIDs:    bookIDs,
			BorrowedAt: borrowedAt,
		}
		return nil
	})
	if err != nil {
		zap.L().Info("结账失败",
			zap.Uint("cart_id", req.CartID),
			zap.String("user_name", req.UserName),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.AddCounter(metrics.BooksCheckedOutTotal, float64(len(evt.BookIDs)))
	zap.L().Info("结账成功",
		zap.Uint("cart_id", evt.CartID),
		zap.Uint("user_id", evt.UserID),
		zap.Int("books", len(evt.BookIDs)),
		zap.String("trace_id", tracing.ExtractTraceID(ctx)),
	)
	uc.publish(ctx, evt)

	return &CheckoutResponse{
		CartID:     evt.CartID,
		UserID:     evt.UserID,
		Books:      len(evt.BookIDs),
		BookIDs:    evt.BookIDs,
		BorrowDate: evt.BorrowedAt.Format(time.RFC3339),
	}, nil
}

// lend 锁定图书、扣减一册并写借阅记录
func (uc *CheckoutUseCase) lend(ctx context.Context, userID uint, item *cart.Item, borrowedAt time.Time) error {
	b, err := uc.catalogRepo.LockBookByID(ctx, item.BookID)
	if errors.Is(err, catalog.ErrBookNotFound) {
		return catalog.ErrBookUnavailable.WithMessage("图书《%s》(ID=%d)已不在馆藏中", item.BookName, item.BookID)
	}
	if err != nil {
		return err
	}

	if err := b.Lend(); err != nil {
		return err
	}
	if err := uc.catalogRepo.DecrementBookCount(ctx, b.ID); err != nil {
		return err
	}
	return uc.loanRepo.Create(ctx, loan.NewTransaction(userID, b.ID, borrowedAt))
}

// publish 事务已提交,发布失败只记日志
func (uc *CheckoutUseCase) publish(ctx context.Context, evt *loan.CheckoutCompleted) {
	if uc.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := uc.publisher.PublishCheckoutCompleted(ctx, evt); err != nil {
		zap.L().Warn("结账事件发布失败", zap.Uint("cart_id", evt.CartID), zap.Error(err))
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, cart.ErrCartEmpty):
		return "empty_cart"
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return "not_found"
	case apperrors.KindUnavailable:
		return "unavailable"
	}
	return "error"
}
