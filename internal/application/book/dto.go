package book

import "github.com/xiebiao/library/internal/domain/catalog"

// BookItem 图书DTO
type BookItem struct {
	ID                 uint   `json:"id"`
	Title              string `json:"title"`
	PublicationDate    string `json:"publicationDate"`
	PublisherID        *uint  `json:"publisherID"`
	AvailabilityStatus bool   `json:"availabilityStatus"`
	BookCount          int    `json:"bookCount"`
}

func toBookItem(b *catalog.Book) BookItem {
	return BookItem{
		ID:                 b.ID,
		Title:              b.Title,
		PublicationDate:    b.PublicationDate,
		PublisherID:        b.PublisherID,
		AvailabilityStatus: b.AvailabilityStatus,
		BookCount:          b.BookCount,
	}
}
