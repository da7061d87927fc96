package dto

// RegisterUserRequest 读者注册请求
type RegisterUserRequest struct {
	Name           string `form:"name" json:"name" binding:"required,max=255" example:"Alice"`
	ContactDetails string `form:"contactDetails" json:"contactDetails" binding:"required,max=255" example:"alice@example.com"`
}

// UpdateUserRequest 读者信息修改请求
type UpdateUserRequest struct {
	UserID         uint   `form:"userID" json:"userID" binding:"required" example:"1"`
	UserName       string `form:"userName" json:"userName" binding:"required,max=255" example:"Alice"`
	ContactDetails string `form:"contactDetails" json:"contactDetails" binding:"required,max=255" example:"alice@example.org"`
}

// UserIDURI /users/:id 路径参数
type UserIDURI struct {
	ID uint `uri:"id" binding:"required"`
}
