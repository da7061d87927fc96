package user

import (
	"context"
	"errors"
	"strings"
)

// Service 用户领域服务
type Service interface {
	Register(ctx context.Context, name, contactDetails string) (*User, error)

	Update(ctx context.Context, id uint, name, contactDetails string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 注册读者
// 先查重再插入;并发下的重复由唯一索引兜底,仓储同样返回ErrContactDuplicate
func (s *service) Register(ctx context.Context, name, contactDetails string) (*User, error) {
	u := NewUser(name, contactDetails)
	if u.Name == "" || u.ContactDetails == "" {
		return nil, ErrMissingFields
	}

	if err := s.ensureContactFree(ctx, u.ContactDetails, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update 修改读者信息
func (s *service) Update(ctx context.Context, id uint, name, contactDetails string) (*User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(contactDetails) == "" {
		return nil, ErrMissingFields
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Rename(name, contactDetails)
	if err := s.ensureContactFree(ctx, u.ContactDetails, u.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ensureContactFree 联系方式未被owner以外的用户占用
func (s *service) ensureContactFree(ctx context.Context, contact string, owner uint) error {
	existing, err := s.repo.FindByContact(ctx, contact)
	if errors.Is(err, ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != owner {
		return ErrContactDuplicate
	}
	return nil
}
