package rdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/user"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// userRepository 读者仓储
// contact_details的唯一性由UNIQUE索引兜底,冲突翻译为ErrContactDuplicate
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建读者仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := toUserModel(u)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrContactDuplicate
		}
		return apperrors.Store(err, "创建用户失败")
	}
	u.ID = model.ID
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, user.ErrUserNotFound.WithMessage("用户(ID=%d)不存在", id)
		}
		return nil, apperrors.Store(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// FindByName 姓名不唯一,取ID最小者
func (r *userRepository) FindByName(ctx context.Context, name string) (*user.User, error) {
	var model UserModel
	err := dbFrom(ctx, r.db).Where("name = ?", name).Order("id").First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, user.ErrUserNotFound.WithMessage("用户%q不存在", name)
		}
		return nil, apperrors.Store(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

func (r *userRepository) FindByContact(ctx context.Context, contact string) (*user.User, error) {
	var model UserModel
	err := dbFrom(ctx, r.db).Where("contact_details = ?", contact).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Store(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// Update 只更新姓名和联系方式
// MySQL在值未变化时RowsAffected为0,因此不以此判断记录是否存在
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	err := dbFrom(ctx, r.db).Model(&UserModel{ID: u.ID}).
		Updates(map[string]interface{}{
			"name":            u.Name,
			"contact_details": u.ContactDetails,
		}).Error
	if err != nil {
		if isDuplicateError(err) {
			return user.ErrContactDuplicate
		}
		return apperrors.Store(err, "更新用户失败")
	}
	return nil
}

func toUserEntity(m *UserModel) *user.User {
	return &user.User{
		ID:               m.ID,
		Name:             m.Name,
		ContactDetails:   m.ContactDetails,
		BorrowingHistory: m.BorrowingHistory,
		Preferences:      m.Preferences,
	}
}

func toUserModel(u *user.User) *UserModel {
	return &UserModel{
		ID:               u.ID,
		Name:             u.Name,
		ContactDetails:   u.ContactDetails,
		BorrowingHistory: u.BorrowingHistory,
		Preferences:      u.Preferences,
	}
}
