package cart

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

var (
	// ErrCartNotFound 借书车不存在
	ErrCartNotFound = apperrors.New(apperrors.ErrCodeCartNotFound, "借书车不存在")

	// ErrCartExists 用户已有借书车
	ErrCartExists = apperrors.New(apperrors.ErrCodeCartExists, "该用户已有借书车")

	// ErrItemNotFound 车内没有这本书
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "借书车中没有这本书")

	// ErrItemExists 同一本书重复加入
	ErrItemExists = apperrors.New(apperrors.ErrCodeItemInCart, "这本书已在借书车中")

	// ErrCartEmpty 借书车为空或不存在
	ErrCartEmpty = apperrors.New(apperrors.ErrCodeEmptyCart, "借书车为空或不存在")
)
