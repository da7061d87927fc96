package rdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/catalog"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// catalogRepository 图书目录仓储
// 负责领域实体与GORM模型之间的转换,以及把驱动错误翻译成业务错误
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建图书目录仓储
func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListBooks(ctx context.Context) ([]*catalog.Book, error) {
	var models []BookModel
	if err := dbFrom(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Store(err, "查询图书列表失败")
	}

	books := make([]*catalog.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

func (r *catalogRepository) FindBookByID(ctx context.Context, id uint) (*catalog.Book, error) {
	var model BookModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		return nil, bookLookupError(err, id)
	}
	return toBookEntity(&model), nil
}

// FindBookByTitle 同名图书只应有一行,防御性地取ID最小者
func (r *catalogRepository) FindBookByTitle(ctx context.Context, title string) (*catalog.Book, error) {
	var model BookModel
	err := dbFrom(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("title = ?", title).
		Order("id").
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, apperrors.Store(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// LockBookByID SELECT ... FOR UPDATE
// SQLite方言会忽略锁子句,由单写者串行保证
func (r *catalogRepository) LockBookByID(ctx context.Context, id uint) (*catalog.Book, error) {
	var model BookModel
	err := dbFrom(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		return nil, bookLookupError(err, id)
	}
	return toBookEntity(&model), nil
}

func (r *catalogRepository) CreateBook(ctx context.Context, b *catalog.Book) error {
	model := toBookModel(b)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if isForeignKeyError(err) {
			return catalog.ErrPublisherNotFound
		}
		return apperrors.Store(err, "创建图书失败")
	}
	b.ID = model.ID
	return nil
}

func (r *catalogRepository) IncrementBookCount(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Model(&BookModel{}).
		Where("id = ?", id).
		UpdateColumn("book_count", gorm.Expr("book_count + ?", 1))
	if result.Error != nil {
		return apperrors.Store(result.Error, "更新册数失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrBookNotFound
	}
	return nil
}

// DecrementBookCount UPDATE books SET book_count = book_count - 1 WHERE id = ? AND book_count > 0
func (r *catalogRepository) DecrementBookCount(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Model(&BookModel{}).
		Where("id = ? AND book_count > 0", id).
		UpdateColumn("book_count", gorm.Expr("book_count - ?", 1))
	if result.Error != nil {
		return apperrors.Store(result.Error, "扣减册数失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrBookUnavailable.WithMessage("图书(ID=%d)已无可借册数", id)
	}
	return nil
}

// DeleteBook 先删关联行和车内条目,再删图书;调用方负责事务
func (r *catalogRepository) DeleteBook(ctx context.Context, id uint) error {
	db := dbFrom(ctx, r.db)
	for _, model := range []interface{}{&BookAuthorModel{}, &BookGenreModel{}, &CartItemModel{}} {
		if err := db.Where("book_id = ?", id).Delete(model).Error; err != nil {
			return apperrors.Store(err, "删除图书关联失败")
		}
	}

	result := db.Delete(&BookModel{}, id)
	if result.Error != nil {
		if isForeignKeyError(result.Error) {
			return catalog.ErrBookHasLoans
		}
		return apperrors.Store(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrBookNotFound
	}
	return nil
}

func (r *catalogRepository) HasLoans(ctx context.Context, bookID uint) (bool, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&TransactionModel{}).
		Where("book_id = ?", bookID).
		Count(&n).Error
	if err != nil {
		return false, apperrors.Store(err, "查询借阅记录失败")
	}
	return n > 0, nil
}

func (r *catalogRepository) FindPublisherByID(ctx context.Context, id uint) (*catalog.Publisher, error) {
	var model PublisherModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, catalog.ErrPublisherNotFound.WithMessage("出版社(ID=%d)不存在", id)
		}
		return nil, apperrors.Store(err, "查询出版社失败")
	}
	return &catalog.Publisher{ID: model.ID, Name: model.Name, Contact: model.Contact}, nil
}

func (r *catalogRepository) AuthorNames(ctx context.Context, bookID uint) ([]string, error) {
	names := []string{}
	err := dbFrom(ctx, r.db).Model(&AuthorModel{}).
		Joins("JOIN book_authors ON book_authors.author_id = authors.id").
		Where("book_authors.book_id = ?", bookID).
		Order("authors.id").
		Pluck("authors.name", &names).Error
	if err != nil {
		return nil, apperrors.Store(err, "查询作者失败")
	}
	return names, nil
}

func (r *catalogRepository) GenreNames(ctx context.Context, bookID uint) ([]string, error) {
	names := []string{}
	err := dbFrom(ctx, r.db).Model(&GenreModel{}).
		Joins("JOIN book_genres ON book_genres.genre_id = genres.id").
		Where("book_genres.book_id = ?", bookID).
		Order("genres.id").
		Pluck("genres.name", &names).Error
	if err != nil {
		return nil, apperrors.Store(err, "查询类型失败")
	}
	return names, nil
}

func bookLookupError(err error, id uint) error {
	if isNotFound(err) {
		return catalog.ErrBookNotFound.WithMessage("图书(ID=%d)不存在", id)
	}
	return apperrors.Store(err, "查询图书失败")
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *catalog.Book {
	return &catalog.Book{
		ID:                 m.ID,
		Title:              m.Title,
		PublicationDate:    m.PublicationDate,
		PublisherID:        m.PublisherID,
		AvailabilityStatus: m.AvailabilityStatus,
		BookCount:          m.BookCount,
	}
}

func toBookModel(b *catalog.Book) *BookModel {
	return &BookModel{
		ID:                 b.ID,
		Title:              b.Title,
		PublicationDate:    b.PublicationDate,
		PublisherID:        b.PublisherID,
		AvailabilityStatus: b.AvailabilityStatus,
		BookCount:          b.BookCount,
	}
}
