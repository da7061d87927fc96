package catalog

import "context"

// SeedBook 种子图书,出版社、作者、类型均以名称引用
type SeedBook struct {
	Title           string
	PublicationDate string
	Publisher       string
	Authors         []string
	Genres          []string
}

// Seed 初始目录数据
type Seed struct {
	Authors    []Author
	Genres     []Genre
	Publishers []Publisher
	Books      []SeedBook
}

// SeedRepository 种子数据写入
// 记录按自然键(名称/书名)匹配,重复执行不会产生重复行
type SeedRepository interface {
	// Populate 写入作者、类型、出版社、图书,返回新插入的行数
	Populate(ctx context.Context, seed *Seed) (int, error)

	// Associate 建立图书与作者、类型的关联,返回新建的关联数
	// 引用的图书/作者/类型不存在时返回ErrSeedMissing
	Associate(ctx context.Context, seed *Seed) (int, error)
}

// DefaultSeed 馆藏初始数据
func DefaultSeed() *Seed {
	const (
		rowling = "J.K. Rowling"
		martin  = "George R.R. Martin"
		riordan = "Rick Riordan"
		collins = "Suzanne Collins"
		zusak   = "Markus Zusak"

		fantasy    = "Fantasy"
		adventure  = "Adventure"
		dystopian  = "Dystopian"
		historical = "Historical Fiction"

		bloomsbury = "Bloomsbury"
		bantam     = "Bantam Books"
		hyperion   = "Disney Hyperion"
		scholastic = "Scholastic"
		picador    = "Picador"
	)

	book := func(title, date, publisher string, authors, genres []string) SeedBook {
		return SeedBook{Title: title, PublicationDate: date, Publisher: publisher, Authors: authors, Genres: genres}
	}
	potter := func(title, date string) SeedBook {
		return book(title, date, bloomsbury, []string{rowling}, []string{fantasy})
	}
	thrones := func(title, date string) SeedBook {
		return book(title, date, bantam, []string{martin}, []string{fantasy})
	}
	olympians := func(title, date string) SeedBook {
		return book(title, date, hyperion, []string{riordan}, []string{fantasy, adventure})
	}
	hunger := func(title, date string) SeedBook {
		return book(title, date, scholastic, []string{collins}, []string{adventure, dystopian})
	}

	return &Seed{
		Authors: []Author{
			{Name: rowling, Bio: "British author known for the Harry Potter series."},
			{Name: martin, Bio: "American novelist known for the A Song of Ice and Fire series."},
			{Name: riordan, Bio: "American author known for the Percy Jackson & the Olympians series."},
			{Name: collins, Bio: "American author known for The Hunger Games series."},
			{Name: zusak, Bio: "Australian author known for The Book Thief."},
		},
		Genres: []Genre{
			{Name: fantasy},
			{Name: adventure},
			{Name: dystopian},
			{Name: historical},
		},
		Publishers: []Publisher{
			{Name: bloomsbury, Contact: "London, UK"},
			{Name: bantam, Contact: "New York, USA"},
			{Name: hyperion, Contact: "New York, USA"},
			{Name: scholastic, Contact: "Pennsylvania, USA"},
			{Name: picador, Contact: "London, UK"},
		},
		Books: []SeedBook{
			potter("Harry Potter and the Philosopher's Stone", "1997-06-26"),
			potter("Harry Potter and the Chamber of Secrets", "1998-07-02"),
			potter("Harry Potter and the Prisoner of Azkaban", "1999-07-08"),
			potter("Harry Potter and the Goblet of Fire", "2000-07-08"),
			potter("Harry Potter and the Order of the Phoenix", "2003-06-21"),
			potter("Harry Potter and the Half-Blood Prince", "2005-07-16"),
			potter("Harry Potter and the Deathly Hallows", "2007-07-21"),
			thrones("A Game of Thrones", "1996-08-01"),
			thrones("A Clash of Kings", "1998-11-16"),
			thrones("A Storm of Swords", "2000-08-08"),
			thrones("A Feast for Crows", "2005-10-17"),
			thrones("A Dance with Dragons", "2011-07-12"),
			olympians("The Lightning Thief", "2005-06-28"),
			olympians("The Sea of Monsters", "2006-04-03"),
			olympians("The Titan's Curse", "2007-05-01"),
			olympians("The Battle of the Labyrinth", "2008-05-06"),
			olympians("The Last Olympian", "2009-05-05"),
			hunger("The Hunger Games", "2008-09-14"),
			hunger("Catching Fire", "2009-09-01"),
			hunger("Mockingjay", "2010-08-24"),
			book("The Book Thief", "2005-03-14", picador, []string{zusak}, []string{historical}),
		},
	}
}
