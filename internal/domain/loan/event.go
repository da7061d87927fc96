package loan

import (
	"context"
	"time"
)

// CheckoutCompletedKey 结账完成事件的routing key
const CheckoutCompletedKey = "checkout.completed"

// CheckoutCompleted 结账提交后发布的事件
type CheckoutCompleted struct {
	CartID     uint      `json:"cartID"`
	UserID     uint      `json:"userID"`
	UserName   string    `json:"userName"`
	BookIDs    []uint    `json:"bookIDs"`
	BorrowedAt time.Time `json:"borrowedAt"`
}

// EventPublisher 事件发布
// 发布失败不影响已提交的结账,调用方只记录日志
type EventPublisher interface {
	PublishCheckoutCompleted(ctx context.Context, evt *CheckoutCompleted) error
}
