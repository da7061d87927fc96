package dto

// 请求体支持 application/x-www-form-urlencoded、multipart/form-data 和 JSON,
// 字段名一致。form tag同时用于query参数。

// AddBookRequest 图书入库请求
// AvailabilityStatus用指针区分"未传"和false
type AddBookRequest struct {
	Title              string `form:"title" json:"title" binding:"required,max=255" example:"The Hunger Games"`
	PublicationDate    string `form:"publicationDate" json:"publicationDate" binding:"required,datetime=2006-01-02" example:"2008-09-14"`
	PublisherID        uint   `form:"publisherID" json:"publisherID" binding:"required" example:"4"`
	AvailabilityStatus *bool  `form:"availabilityStatus" json:"availabilityStatus" binding:"required" example:"true"`
}

// RemoveBookRequest 删除图书请求
type RemoveBookRequest struct {
	BookID uint `form:"bookID" json:"bookID" binding:"required" example:"1"`
}

// BookIDURI /books/:id 路径参数
type BookIDURI struct {
	ID uint `uri:"id" binding:"required"`
}
