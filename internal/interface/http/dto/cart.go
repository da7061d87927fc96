package dto

// CreateCartRequest 创建借书车请求
type CreateCartRequest struct {
	UserID uint `form:"userID" json:"userID" binding:"required" example:"1"`
}

// CartItemRequest 加入/移出借书车请求
type CartItemRequest struct {
	CartID uint `form:"cartID" json:"cartID" binding:"required" example:"1"`
	BookID uint `form:"bookID" json:"bookID" binding:"required" example:"1"`
}

// ViewCartQuery 查看借书车,cartID来自query
type ViewCartQuery struct {
	CartID uint `form:"cartID" binding:"required" example:"1"`
}

// CheckoutRequest 结账请求
// 按姓名找读者,同名时取ID最小者
type CheckoutRequest struct {
	UserName string `form:"userName" json:"userName" binding:"required,max=255" example:"Alice"`
	CartID   uint   `form:"cartID" json:"cartID" binding:"required" example:"1"`
}
