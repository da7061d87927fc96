package catalog

import "strings"

// Book 图书实体(聚合根)
// 设计说明:
// 1. 同名图书只保留一行,再次入库时累加BookCount
// 2. BookCount是可借册数,任何时刻不得为负
// 3. AvailabilityStatus是管理员设置的上架开关,与册数无关
type Book struct {
	ID                 uint
	Title              string
	PublicationDate    string // YYYY-MM-DD,原样保存
	PublisherID        *uint  // 可为空
	AvailabilityStatus bool
	BookCount          int
}

// NewBook 创建新图书,初始册数为1
func NewBook(title, publicationDate string, publisherID uint, available bool) *Book {
	pid := publisherID
	return &Book{
		Title:              strings.TrimSpace(title),
		PublicationDate:    strings.TrimSpace(publicationDate),
		PublisherID:        &pid,
		AvailabilityStatus: available,
		BookCount:          1,
	}
}

// CanLend 上架且有余量
func (b *Book) CanLend() bool {
	return b.AvailabilityStatus && b.BookCount > 0
}

// Lend 借出一册
func (b *Book) Lend() error {
	if !b.CanLend() {
		return ErrBookUnavailable.WithMessage("图书《%s》(ID=%d)不可借", b.Title, b.ID)
	}
	b.BookCount--
	return nil
}

// Author 作者
type Author struct {
	ID   uint
	Name string
	Bio  string
}

// Genre 类型
type Genre struct {
	ID   uint
	Name string
}

// Publisher 出版社
type Publisher struct {
	ID      uint
	Name    string
	Contact string
}

// BookDetail 图书详情(含作者、类型名称)
type BookDetail struct {
	Book    *Book
	Authors []string
	Genres  []string
}
