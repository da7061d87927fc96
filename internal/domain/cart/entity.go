package cart

import "time"

// Cart 借书车,每个用户至多一个
// 结账后车本身保留,只清空条目
type Cart struct {
	ID        uint
	UserID    uint
	CreatedAt time.Time
}

// NewCart 为用户创建借书车
func NewCart(userID uint) *Cart {
	return &Cart{UserID: userID, CreatedAt: time.Now()}
}

// Item 车内条目,(CartID, BookID)唯一
// BookName是加入时的书名快照
type Item struct {
	CartID   uint
	BookID   uint
	BookName string
	AddedAt  time.Time
}

// NewItem 创建条目并记录书名快照
func NewItem(cartID, bookID uint, title string) *Item {
	return &Item{
		CartID:   cartID,
		BookID:   bookID,
		BookName: title,
		AddedAt:  time.Now(),
	}
}
