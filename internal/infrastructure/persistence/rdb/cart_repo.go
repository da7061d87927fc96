package rdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/cart"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// cartRepository 借书车仓储
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建借书车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// Create carts.user_id有唯一索引,并发建车时输的一方同样得到ErrCartExists
func (r *cartRepository) Create(ctx context.Context, c *cart.Cart) error {
	model := &CartModel{UserID: c.UserID, CreatedAt: c.CreatedAt}
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return cart.ErrCartExists
		}
		return apperrors.Store(err, "创建借书车失败")
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	return nil
}

func (r *cartRepository) FindByID(ctx context.Context, id uint) (*cart.Cart, error) {
	var model CartModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, cart.ErrCartNotFound.WithMessage("借书车(ID=%d)不存在", id)
		}
		return nil, apperrors.Store(err, "查询借书车失败")
	}
	return toCartEntity(&model), nil
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	var model CartModel
	if err := dbFrom(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Store(err, "查询借书车失败")
	}
	return toCartEntity(&model), nil
}

// AddItem (cart_id, book_id)是主键,重复加入返回ErrItemExists
func (r *cartRepository) AddItem(ctx context.Context, item *cart.Item) error {
	model := &CartItemModel{
		CartID:   item.CartID,
		BookID:   item.BookID,
		BookName: item.BookName,
		AddedAt:  item.AddedAt,
	}
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		switch {
		case isDuplicateError(err):
			return cart.ErrItemExists
		case isForeignKeyError(err):
			return apperrors.WrapCode(err, apperrors.ErrCodeInvalidReference, "借书车或图书不存在")
		}
		return apperrors.Store(err, "加入借书车失败")
	}
	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, cartID, bookID uint) error {
	result := dbFrom(ctx, r.db).
		Where("cart_id = ? AND book_id = ?", cartID, bookID).
		Delete(&CartItemModel{})
	if result.Error != nil {
		return apperrors.Store(result.Error, "移出借书车失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound.WithMessage("借书车(ID=%d)中没有图书(ID=%d)", cartID, bookID)
	}
	return nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID uint) ([]*cart.Item, error) {
	var models []CartItemModel
	err := dbFrom(ctx, r.db).
		Where("cart_id = ?", cartID).
		Order("added_at, book_id").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Store(err, "查询借书车条目失败")
	}

	items := make([]*cart.Item, len(models))
	for i, m := range models {
		items[i] = &cart.Item{CartID: m.CartID, BookID: m.BookID, BookName: m.BookName, AddedAt: m.AddedAt}
	}
	return items, nil
}

// Titles 图书被删除后退回加入时的书名快照
func (r *cartRepository) Titles(ctx context.Context, cartID uint) ([]string, error) {
	titles := []string{}
	err := dbFrom(ctx, r.db).Model(&CartItemModel{}).
		Joins("LEFT JOIN books ON books.id = cart_items.book_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.added_at, cart_items.book_id").
		Pluck("COALESCE(books.title, cart_items.book_name)", &titles).Error
	if err != nil {
		return nil, apperrors.Store(err, "查询借书车失败")
	}
	return titles, nil
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID uint) (int64, error) {
	result := dbFrom(ctx, r.db).Where("cart_id = ?", cartID).Delete(&CartItemModel{})
	if result.Error != nil {
		return 0, apperrors.Store(result.Error, "清空借书车失败")
	}
	return result.RowsAffected, nil
}

func toCartEntity(m *CartModel) *cart.Cart {
	return &cart.Cart{ID: m.ID, UserID: m.UserID, CreatedAt: m.CreatedAt}
}
