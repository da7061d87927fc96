package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/application/checkout"
	"github.com/xiebiao/library/internal/domain/cart"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb/rdbtest"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishCheckoutCompleted(ctx context.Context, evt *loan.CheckoutCompleted) error {
	return m.Called(ctx, evt).Error(0)
}

// failingLoanRepo 第failOn次写入时失败
type failingLoanRepo struct {
	loan.Repository
	failOn int
	calls  int
}

func (r *failingLoanRepo) Create(ctx context.Context, t *loan.Transaction) error {
	r.calls++
	if r.calls == r.failOn {
		return apperrors.Store(errors.New("disk full"), "写入借阅记录失败")
	}
	return r.Repository.Create(ctx, t)
}

type fixture struct {
	db  *gorm.DB
	pub *mockPublisher
}

func newFixture(t *testing.T) *fixture {
	return &fixture{db: rdbtest.NewDB(t), pub: &mockPublisher{}}
}

func (f *fixture) useCase(loanRepo loan.Repository) *checkout.CheckoutUseCase {
	if loanRepo == nil {
		loanRepo = rdb.NewLoanRepository(f.db)
	}
	return checkout.NewCheckoutUseCase(
		rdb.NewUserRepository(f.db),
		rdb.NewCartRepository(f.db),
		rdb.NewCatalogRepository(f.db),
		loanRepo,
		f.pub,
		rdb.NewTxManager(f.db),
	)
}

func (f *fixture) user(t *testing.T, name, contact string) uint {
	t.Helper()
	u := user.NewUser(name, contact)
	require.NoError(t, rdb.NewUserRepository(f.db).Create(context.Background(), u))
	return u.ID
}

func (f *fixture) book(t *testing.T, title string, count int, available bool) uint {
	t.Helper()
	b := &rdb.BookModel{Title: title, PublicationDate: "2008-09-14", AvailabilityStatus: available, BookCount: count}
	require.NoError(t, f.db.Create(b).Error)
	return b.ID
}

func (f *fixture) cart(t *testing.T, userID uint, bookIDs ...uint) uint {
	t.Helper()
	repo := rdb.NewCartRepository(f.db)
	c := cart.NewCart(userID)
	require.NoError(t, repo.Create(context.Background(), c))
	for i, id := range bookIDs {
		item := &cart.Item{CartID: c.ID, BookID: id, BookName: "snapshot", AddedAt: time.Now().Add(time.Duration(i) * time.Millisecond)}
		require.NoError(t, repo.AddItem(context.Background(), item))
	}
	return c.ID
}

func (f *fixture) count(t *testing.T, bookID uint) int {
	t.Helper()
	var b rdb.BookModel
	require.NoError(t, f.db.First(&b, bookID).Error)
	return b.BookCount
}

func (f *fixture) rows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func TestCheckout_AliceBorrowsLastCopy(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "Alice", "alice@example.com")
	bookID := f.book(t, "The Hunger Games", 1, true)
	cartID := f.cart(t, alice, bookID)
	f.pub.On("PublishCheckoutCompleted", mock.Anything, mock.MatchedBy(func(evt *loan.CheckoutCompleted) bool {
		return evt.CartID == cartID && evt.UserID == alice && len(evt.BookIDs) == 1
	})).Return(nil).Once()

	resp, err := f.useCase(nil).Execute(context.Background(), checkout.CheckoutRequest{UserName: "Alice", CartID: cartID})
	require.NoError(t, err)
	assert.Equal(t, cartID, resp.CartID)
	assert.Equal(t, alice, resp.UserID)
	assert.Equal(t, 1, resp.Books)
	assert.Equal(t, []uint{bookID}, resp.BookIDs)

	assert.Equal(t, 0, f.count(t, bookID))
	assert.Zero(t, f.rows(t, &rdb.CartItemModel{}))
	assert.Equal(t, int64(1), f.rows(t, &rdb.CartModel{}), "借书车本身保留")

	var txs []rdb.TransactionModel
	require.NoError(t, f.db.Find(&txs).Error)
	require.Len(t, txs, 1)
	assert.Equal(t, alice, txs[0].UserID)
	assert.Equal(t, bookID, txs[0].BookID)
	assert.Nil(t, txs[0].ReturnDate)
	assert.False(t, txs[0].BorrowDate.IsZero())

	f.pub.AssertExpectations(t)
}

func TestCheckout_SecondItemUnavailableRollsBackFirst(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "Alice", "alice@example.com")
	first := f.book(t, "Catching Fire", 2, true)
	second := f.book(t, "Mockingjay", 0, true)
	cartID := f.cart(t, alice, first, second)

	_, err := f.useCase(nil).Execute(context.Background(), checkout.CheckoutRequest{UserName: "Alice", CartID: cartID})
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrBookUnavailable)
	assert.Equal(t, 400, apperrors.HTTPStatus(err))

	assert.Equal(t, 2, f.count(t, first))
	assert.Equal(t, 0, f.count(t, second))
	assert.Zero(t, f.rows(t, &rdb.TransactionModel{}))
	assert.Equal(t, int64(2), f.rows(t, &rdb.CartItemModel{}))
	f.pub.AssertNotCalled(t, "PublishCheckoutCompleted", mock.Anything, mock.Anything)
}

func TestCheckout_ShelvedBookIsUnavailable(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "Alice", "alice@example.com")
	bookID := f.book(t, "The Book Thief", 3, false)
	cartID := f.cart(t, alice, bookID)

	_, err := f.useCase(nil).Execute(context.Background(), checkout.CheckoutRequest{UserName: "Alice", CartID: cartID})
	assert.ErrorIs(t, err, catalog.ErrBookUnavailable)
	assert.Equal(t, 3, f.count(t, bookID))
}

func TestCheckout_LoanWriteFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "Alice", "alice@example.com")
	first := f.book(t, "The Lightning Thief", 1, true)
	second := f.book(t, "The Sea of Monsters", 1, true)
	cartID := f.cart(t, alice, first, second)

	loans := &failingLoanRepo{Repository: rdb.NewLoanRepository(f.db), failOn: 2}
	_, err := f.useCase(loans).Execute(context.Background(), checkout.CheckoutRequest{UserName: "Alice", CartID: cartID})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindStore, apperrors.KindOf(err))
	assert.Equal(t, 2, loans.calls)

	assert.Equal(t, 1, f.count(t, first))
	assert.Equal(t, 1, f.count(t, second))
	assert.Zero(t, f.rows(t, &rdb.TransactionModel{}))
	assert.Equal(t, int64(2), f.rows(t, &rdb.CartItemModel{}))
}

func TestCheckout_EmptyOrMissingCart(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "Alice", "alice@example.com")
	bookID := f.book(t, "A Game of Thrones", 1, true)
	emptyCart := f.cart(t, alice)

	for _, cartID := range []uint{emptyCart, emptyCart + 100} {
		_, err := f.useCase(nil).Execute(context.Background(), checkout.CheckoutRequest{UserName: "Alice", CartID: cartID})
		assert.ErrorIs(t, err, cart.ErrCartEmpty)
		assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
	}
	assert.Equal(t, 1, f.count(t, bookID))
	assert.Zero(t, f.rows(t, &rdb.TransactionModel{}))
}

func TestCheckout_UnknownUser(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "Alice", "alice@example.com")
	bookID := f.book(t, "A Game of Thrones", 1, true)
	cartID := f.cart(t, alice, bookID)

	_, err := f.useCase(nil).Execute(context.Background(), checkout.CheckoutRequest{UserName: "Mallory", CartID: cartID})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Equal(t, 404, apperrors.HTTPStatus(err))
	assert.Equal(t, 1, f.count(t, bookID))
	assert.Equal(t, int64(1), f.rows(t, &rdb.CartItemModel{}))
}

func TestCheckout_PublishFailureDoesNotFailCheckout(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "Alice", "alice@example.com")
	bookID := f.book(t, "A Feast for Crows", 1, true)
	cartID := f.cart(t, alice, bookID)
	f.pub.On("PublishCheckoutCompleted", mock.Anything, mock.Anything).Return(errors.New("mq down")).Once()

	resp, err := f.useCase(nil).Execute(context.Background(), checkout.CheckoutRequest{UserName: "Alice", CartID: cartID})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Books)
	assert.Equal(t, 0, f.count(t, bookID))
	f.pub.AssertExpectations(t)
}

func TestCheckout_ConcurrentLastCopy(t *testing.T) {
	f := newFixture(t)
	bookID := f.book(t, "A Dance with Dragons", 1, true)
	carts := map[string]uint{
		"Alice": f.cart(t, f.user(t, "Alice", "alice@example.com"), bookID),
		"Bob":   f.cart(t, f.user(t, "Bob", "bob@example.com"), bookID),
	}
	f.pub.On("PublishCheckoutCompleted", mock.Anything, mock.Anything).Return(nil)
	uc := f.useCase(nil)

	var wg sync.WaitGroup
	errs := make(chan error, len(carts))
	for name, cartID := range carts {
		wg.Add(1)
		go func(name string, cartID uint) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), checkout.CheckoutRequest{UserName: name, CartID: cartID})
			errs <- err
		}(name, cartID)
	}
	wg.Wait()
	close(errs)

	var ok, unavailable int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, catalog.ErrBookUnavailable):
			unavailable++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, unavailable)
	assert.Equal(t, 0, f.count(t, bookID))
	assert.Equal(t, int64(1), f.rows(t, &rdb.TransactionModel{}))
}
