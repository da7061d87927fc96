package rdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/catalog"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// seedRepository 种子数据写入
// 以名称/书名作为自然键,已存在的行原样保留
type seedRepository struct {
	db *gorm.DB
}

// NewSeedRepository 创建种子数据仓储
func NewSeedRepository(db *gorm.DB) catalog.SeedRepository {
	return &seedRepository{db: db}
}

func (r *seedRepository) Populate(ctx context.Context, seed *catalog.Seed) (int, error) {
	db := dbFrom(ctx, r.db)
	created := 0
	insert := func(model interface{}, query string, key string) error {
		ok, err := createIfAbsent(db, model, query, key)
		if err != nil {
			return apperrors.Store(err, "写入种子数据失败")
		}
		if ok {
			created++
		}
		return nil
	}

	for _, a := range seed.Authors {
		if err := insert(&AuthorModel{Name: a.Name, Bio: a.Bio}, "name = ?", a.Name); err != nil {
			return created, err
		}
	}
	for _, g := range seed.Genres {
		if err := insert(&GenreModel{Name: g.Name}, "name = ?", g.Name); err != nil {
			return created, err
		}
	}
	for _, p := range seed.Publishers {
		if err := insert(&PublisherModel{Name: p.Name, Contact: p.Contact}, "name = ?", p.Name); err != nil {
			return created, err
		}
	}

	publishers, err := idsByName(db, &PublisherModel{}, "name")
	if err != nil {
		return created, err
	}
	for _, b := range seed.Books {
		model := &BookModel{
			Title:              b.Title,
			PublicationDate:    b.PublicationDate,
			AvailabilityStatus: true,
			BookCount:          1,
		}
		if id, ok := publishers[b.Publisher]; ok {
			model.PublisherID = &id
		}
		if err := insert(model, "title = ?", b.Title); err != nil {
			return created, err
		}
	}
	return created, nil
}

func (r *seedRepository) Associate(ctx context.Context, seed *catalog.Seed) (int, error) {
	db := dbFrom(ctx, r.db)

	books, err := idsByName(db, &BookModel{}, "title")
	if err != nil {
		return 0, err
	}
	authors, err := idsByName(db, &AuthorModel{}, "name")
	if err != nil {
		return 0, err
	}
	genres, err := idsByName(db, &GenreModel{}, "name")
	if err != nil {
		return 0, err
	}

	linked := 0
	link := func(model interface{}) error {
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(model)
		if result.Error != nil {
			return apperrors.Store(result.Error, "写入图书关联失败")
		}
		linked += int(result.RowsAffected)
		return nil
	}

	for _, b := range seed.Books {
		bookID, ok := books[b.Title]
		if !ok {
			return linked, catalog.ErrSeedMissing.WithMessage("图书《%s》不存在,请先执行populate_db", b.Title)
		}
		for _, name := range b.Authors {
			authorID, ok := authors[name]
			if !ok {
				return linked, catalog.ErrSeedMissing.WithMessage("作者%s不存在,请先执行populate_db", name)
			}
			if err := link(&BookAuthorModel{BookID: bookID, AuthorID: authorID}); err != nil {
				return linked, err
			}
		}
		for _, name := range b.Genres {
			genreID, ok := genres[name]
			if !ok {
				return linked, catalog.ErrSeedMissing.WithMessage("类型%s不存在,请先执行populate_db", name)
			}
			if err := link(&BookGenreModel{BookID: bookID, GenreID: genreID}); err != nil {
				return linked, err
			}
		}
	}
	return linked, nil
}

// createIfAbsent 按条件查不到时插入model
func createIfAbsent(db *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return false, err
	}
	return true, nil
}

// idsByName 自然键 → ID,重名取ID最小者
func idsByName(db *gorm.DB, model interface{}, column string) (map[string]uint, error) {
	var rows []struct {
		ID         uint
		NaturalKey string
	}
	err := db.Model(model).
		Select("id, " + column + " AS natural_key").
		Order("id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Store(err, "查询种子数据失败")
	}

	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		if _, ok := ids[row.NaturalKey]; !ok {
			ids[row.NaturalKey] = row.ID
		}
	}
	return ids, nil
}
