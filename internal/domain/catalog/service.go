package catalog

import (
	"context"
	"errors"
	"strings"
)

// AddResult 入库结果
type AddResult struct {
	Book    *Book
	Created bool // false表示同名图书册数+1
}

// Service 图书领域服务
type Service interface {
	// AddBook 同名图书累加册数,否则新建;出版社必须存在
	AddBook(ctx context.Context, title, publicationDate string, publisherID uint, available bool) (*AddResult, error)

	// RemoveBook 有借阅记录的图书不能删除
	RemoveBook(ctx context.Context, id uint) error

	// GetBookDetail 图书及作者、类型名称
	GetBookDetail(ctx context.Context, id uint) (*BookDetail, error)

	// ListBooks 全部图书
	ListBooks(ctx context.Context) ([]*Book, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddBook(ctx context.Context, title, publicationDate string, publisherID uint, available bool) (*AddResult, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(publicationDate) == "" || publisherID == 0 {
		return nil, ErrMissingFields
	}

	if _, err := s.repo.FindPublisherByID(ctx, publisherID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindBookByTitle(ctx, title)
	switch {
	case err == nil:
		if err := s.repo.IncrementBookCount(ctx, existing.ID); err != nil {
			return nil, err
		}
		existing.BookCount++
		return &AddResult{Book: existing, Created: false}, nil
	case !errors.Is(err, ErrBookNotFound):
		return nil, err
	}

	book := NewBook(title, publicationDate, publisherID, available)
	if err := s.repo.CreateBook(ctx, book); err != nil {
		return nil, err
	}
	return &AddResult{Book: book, Created: true}, nil
}

func (s *service) RemoveBook(ctx context.Context, id uint) error {
	if _, err := s.repo.LockBookByID(ctx, id); err != nil {
		return err
	}

	hasLoans, err := s.repo.HasLoans(ctx, id)
	if err != nil {
		return err
	}
	if hasLoans {
		return ErrBookHasLoans
	}

	return s.repo.DeleteBook(ctx, id)
}

func (s *service) GetBookDetail(ctx context.Context, id uint) (*BookDetail, error) {
	book, err := s.repo.FindBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	authors, err := s.repo.AuthorNames(ctx, id)
	if err != nil {
		return nil, err
	}
	genres, err := s.repo.GenreNames(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BookDetail{Book: book, Authors: authors, Genres: genres}, nil
}

func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.ListBooks(ctx)
}
