package integration

import (
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookEnvelope 入库与详情接口都把图书放在book字段
type bookEnvelope struct {
	Book struct {
		ID        uint `json:"id"`
		BookCount int  `json:"bookCount"`
	} `json:"book"`
}

// TestBorrowFlow 读者从建车到借出的完整流程
func TestBorrowFlow(t *testing.T) {
	s := NewServer(t)
	s.Seed()

	aliceID := s.RegisterUser("Alice", "alice@example.com")
	cartID := s.CreateCart(aliceID)
	s.AddToCart(cartID, 1)
	s.AddToCart(cartID, 18)

	t.Run("查看借书车", func(t *testing.T) {
		resp := s.Get("/view_cart?cartID=" + itoa(cartID))
		require.Equal(t, http.StatusOK, resp.Status, resp.Error)

		var view struct {
			Books []string `json:"books"`
		}
		Decode(t, resp, &view)
		assert.Equal(t, []string{"Harry Potter and the Philosopher's Stone", "The Hunger Games"}, view.Books)
	})

	t.Run("结账", func(t *testing.T) {
		resp := s.PostForm("/checkout", url.Values{"userName": {"Alice"}, "cartID": {itoa(cartID)}})
		require.Equal(t, http.StatusOK, resp.Status, resp.Error)

		var out struct {
			Books   int    `json:"books"`
			BookIDs []uint `json:"bookIDs"`
		}
		Decode(t, resp, &out)
		assert.Equal(t, 2, out.Books)
		assert.ElementsMatch(t, []uint{1, 18}, out.BookIDs)
	})

	t.Run("结账后借书车为空", func(t *testing.T) {
		resp := s.Get("/view_cart?cartID=" + itoa(cartID))
		require.Equal(t, http.StatusOK, resp.Status)
		var view struct {
			Books []string `json:"books"`
		}
		Decode(t, resp, &view)
		assert.Empty(t, view.Books)

		resp = s.PostForm("/checkout", url.Values{"userName": {"Alice"}, "cartID": {itoa(cartID)}})
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.Equal(t, apperrors.ErrCodeEmptyCart, resp.Code)
	})

	t.Run("册数扣减", func(t *testing.T) {
		resp := s.Get("/books/1")
		require.Equal(t, http.StatusOK, resp.Status)
		var detail bookEnvelope
		Decode(t, resp, &detail)
		assert.Zero(t, detail.Book.BookCount)
	})

	t.Run("借阅记录", func(t *testing.T) {
		resp := s.Get("/users/" + itoa(aliceID) + "/transactions")
		require.Equal(t, http.StatusOK, resp.Status, resp.Error)

		var history struct {
			Loans []struct {
				BookID     uint    `json:"bookID"`
				ReturnDate *string `json:"returnDate"`
			} `json:"loans"`
			Outstanding int `json:"outstanding"`
		}
		Decode(t, resp, &history)
		require.Len(t, history.Loans, 2)
		assert.Equal(t, 2, history.Outstanding)
		for _, l := range history.Loans {
			assert.Nil(t, l.ReturnDate)
		}
	})

	t.Run("借阅排行", func(t *testing.T) {
		resp := s.Get("/reports/advanced")
		require.Equal(t, http.StatusOK, resp.Status, resp.Error)

		var report struct {
			Rows []struct {
				UserName  string `json:"userName"`
				BookTitle string `json:"bookTitle"`
				LoanCount int64  `json:"loanCount"`
			} `json:"rows"`
		}
		Decode(t, resp, &report)
		require.Len(t, report.Rows, 2)
		for _, r := range report.Rows {
			assert.Equal(t, "Alice", r.UserName)
			assert.Equal(t, int64(1), r.LoanCount)
		}
	})

	t.Run("有借阅记录的图书不能下架", func(t *testing.T) {
		resp := s.PostForm("/books/remove", url.Values{"bookID": {"1"}})
		assert.Equal(t, http.StatusConflict, resp.Status)
		assert.Equal(t, apperrors.ErrCodeBookHasLoans, resp.Code)
	})
}

// TestConcurrentCheckout_LastCopy 两位读者同时结账最后一册,只有一人成功
func TestConcurrentCheckout_LastCopy(t *testing.T) {
	s := NewServer(t)
	s.Seed()

	resp := s.PostForm("/books/add", url.Values{
		"title":              {"The Only Copy"},
		"publicationDate":    {"2020-01-01"},
		"publisherID":        {"1"},
		"availabilityStatus": {"true"},
	})
	require.Equal(t, http.StatusCreated, resp.Status, resp.Error)
	var added bookEnvelope
	Decode(t, resp, &added)
	book := added.Book
	require.Equal(t, 1, book.BookCount)

	type reader struct {
		name   string
		cartID uint
	}
	readers := []reader{{name: "Alice"}, {name: "Bob"}}
	for i := range readers {
		id := s.RegisterUser(readers[i].name, readers[i].name+"@example.com")
		readers[i].cartID = s.CreateCart(id)
		s.AddToCart(readers[i].cartID, book.ID)
	}

	var (
		wg      sync.WaitGroup
		results = make([]*Response, len(readers))
	)
	for i, r := range readers {
		wg.Add(1)
		go func(i int, r reader) {
			defer wg.Done()
			results[i] = s.PostForm("/checkout", url.Values{"userName": {r.name}, "cartID": {itoa(r.cartID)}})
		}(i, r)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, r := range results {
		switch r.Status {
		case http.StatusOK:
			succeeded++
		case http.StatusBadRequest:
			assert.Equal(t, apperrors.ErrCodeBookUnavailable, r.Code)
			rejected++
		default:
			t.Fatalf("意外的状态码 %d: %s", r.Status, r.Error)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	resp = s.Get("/books/" + itoa(book.ID))
	require.Equal(t, http.StatusOK, resp.Status)
	var detail bookEnvelope
	Decode(t, resp, &detail)
	assert.Zero(t, detail.Book.BookCount, "册数不得为负")

	// 失败的一方整体回滚,书仍在车里
	var remaining int
	for _, r := range readers {
		resp := s.Get("/view_cart?cartID=" + itoa(r.cartID))
		var view struct {
			Books []string `json:"books"`
		}
		Decode(t, resp, &view)
		remaining += len(view.Books)
	}
	assert.Equal(t, 1, remaining)
}
