package rdb

import "time"

// GORM模型只在infrastructure层使用,领域实体不依赖GORM
// 关联字段(Publisher、User、Book...)只用来生成外键,写入时一律Omit(clause.Associations)

// AuthorModel 作者
type AuthorModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null;index;comment:姓名"`
	Bio  string `gorm:"type:text;comment:简介"`
}

func (AuthorModel) TableName() string { return "authors" }

// GenreModel 类型
type GenreModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;index;comment:类型名"`
}

func (GenreModel) TableName() string { return "genres" }

// PublisherModel 出版社
type PublisherModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:255;not null;index;comment:名称"`
	Contact string `gorm:"size:255;comment:联系方式"`
}

func (PublisherModel) TableName() string { return "publishers" }

// BookModel 图书
// book_count由CHECK约束和带条件的扣减共同保证不为负
type BookModel struct {
	ID                 uint            `gorm:"primaryKey"`
	Title              string          `gorm:"size:255;not null;index;comment:书名"`
	PublicationDate    string          `gorm:"size:10;index;comment:出版日期YYYY-MM-DD"`
	PublisherID        *uint           `gorm:"index;comment:出版社ID"`
	Publisher          *PublisherModel `gorm:"foreignKey:PublisherID"`
	AvailabilityStatus bool            `gorm:"not null;comment:是否上架"`
	BookCount          int             `gorm:"not null;check:chk_books_book_count,book_count >= 0;comment:可借册数"`
}

func (BookModel) TableName() string { return "books" }

// UserModel 读者
type UserModel struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:255;not null;index;comment:姓名"`
	ContactDetails   string `gorm:"size:255;not null;uniqueIndex;comment:联系方式"`
	BorrowingHistory string `gorm:"type:text;comment:借阅历史(自由文本)"`
	Preferences      string `gorm:"type:text;comment:偏好(自由文本)"`
}

func (UserModel) TableName() string { return "users" }

// TransactionModel 借阅记录,只增不改
type TransactionModel struct {
	ID         uint       `gorm:"primaryKey"`
	UserID     uint       `gorm:"not null;index;comment:读者ID"`
	User       *UserModel `gorm:"foreignKey:UserID"`
	BookID     uint       `gorm:"not null;index;comment:图书ID"`
	Book       *BookModel `gorm:"foreignKey:BookID"`
	BorrowDate time.Time  `gorm:"not null;index;comment:借出时间"`
	ReturnDate *time.Time `gorm:"comment:归还时间,为空表示未还"`
}

func (TransactionModel) TableName() string { return "transactions" }

// BookAuthorModel 图书-作者
type BookAuthorModel struct {
	BookID   uint         `gorm:"primaryKey;autoIncrement:false"`
	AuthorID uint         `gorm:"primaryKey;autoIncrement:false;index"`
	Book     *BookModel   `gorm:"foreignKey:BookID"`
	Author   *AuthorModel `gorm:"foreignKey:AuthorID"`
}

func (BookAuthorModel) TableName() string { return "book_authors" }

// BookGenreModel 图书-类型
type BookGenreModel struct {
	BookID  uint        `gorm:"primaryKey;autoIncrement:false"`
	GenreID uint        `gorm:"primaryKey;autoIncrement:false;index"`
	Book    *BookModel  `gorm:"foreignKey:BookID"`
	Genre   *GenreModel `gorm:"foreignKey:GenreID"`
}

func (BookGenreModel) TableName() string { return "book_genres" }

// CartModel 借书车,每个读者至多一个
type CartModel struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;uniqueIndex;comment:读者ID"`
	User      *UserModel `gorm:"foreignKey:UserID"`
	CreatedAt time.Time  `gorm:"comment:创建时间"`
}

func (CartModel) TableName() string { return "carts" }

// CartItemModel 车内条目
type CartItemModel struct {
	CartID   uint       `gorm:"primaryKey;autoIncrement:false"`
	BookID   uint       `gorm:"primaryKey;autoIncrement:false;index"`
	Cart     *CartModel `gorm:"foreignKey:CartID"`
	Book     *BookModel `gorm:"foreignKey:BookID"`
	BookName string     `gorm:"size:255;not null;comment:加入时的书名"`
	AddedAt  time.Time  `gorm:"not null;comment:加入时间"`
}

func (CartItemModel) TableName() string { return "cart_items" }
