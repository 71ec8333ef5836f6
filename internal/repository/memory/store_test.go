package memory

import (
	"context"
	"testing"

	"github.com/avc/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Users(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	client := domain.NewClient(domain.Profile{ID: 1, Name: "Alibek"})

	t.Run("Create and get", func(t *testing.T) {
		require.NoError(t, store.CreateUser(ctx, client))

		user, err := store.GetUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Alibek", user.Name)
		assert.Equal(t, domain.RoleClient, user.Role)
	})

	t.Run("User already exists", func(t *testing.T) {
		err := store.CreateUser(ctx, client)
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("Returned user is a copy", func(t *testing.T) {
		user, err := store.GetUser(ctx, 1)
		require.NoError(t, err)
		user.LoyaltyPoints = 500

		stored, err := store.GetUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stored.LoyaltyPoints)
	})

	t.Run("Update", func(t *testing.T) {
		user, err := store.GetUser(ctx, 1)
		require.NoError(t, err)
		user.LoyaltyPoints = 500
		require.NoError(t, store.UpdateUser(ctx, user))

		stored, err := store.GetUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(500), stored.LoyaltyPoints)
	})

	t.Run("User not found", func(t *testing.T) {
		_, err := store.GetUser(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		err = store.UpdateUser(ctx, &domain.User{Profile: domain.Profile{ID: 999}})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestStore_Products(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	product, err := domain.NewProduct(domain.ProductLineElectronics, 101, "MacBook", decimal.NewFromInt(500000))
	require.NoError(t, err)

	require.NoError(t, store.CreateProduct(ctx, product))
	assert.ErrorIs(t, store.CreateProduct(ctx, product), domain.ErrProductExists)

	got, err := store.GetProduct(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "MacBook", got.Title)

	got.Stock = 3
	require.NoError(t, store.UpdateProduct(ctx, got))
	got, err = store.GetProduct(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	require.NoError(t, store.DeleteProduct(ctx, 101))
	_, err = store.GetProduct(ctx, 101)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, store.DeleteProduct(ctx, 101), domain.ErrProductNotFound)
	assert.ErrorIs(t, store.UpdateProduct(ctx, got), domain.ErrProductNotFound)
}

func TestStore_PromoCodes(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	promo := &domain.PromoCode{Code: "SALE10", DiscountPercent: decimal.NewFromInt(10)}

	require.NoError(t, store.CreatePromoCode(ctx, promo))
	assert.ErrorIs(t, store.CreatePromoCode(ctx, promo), domain.ErrPromoExists)

	got, err := store.GetPromoCode(ctx, "SALE10")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(got.DiscountPercent))

	_, err = store.GetPromoCode(ctx, "NOPE")
	assert.ErrorIs(t, err, domain.ErrPromoNotFound)
}

func TestStore_Orders(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	order := domain.NewOrder(1, 1)

	require.NoError(t, store.CreateOrder(ctx, order))
	assert.ErrorIs(t, store.CreateOrder(ctx, order), domain.ErrOrderExists)

	t.Run("Stored order is isolated from the caller", func(t *testing.T) {
		order.AddProduct(&domain.Product{ID: 101, Price: decimal.NewFromInt(10)}, domain.Discard)

		got, err := store.GetOrder(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, got.ProductIDs)
	})

	t.Run("Update", func(t *testing.T) {
		require.NoError(t, store.UpdateOrder(ctx, order))

		got, err := store.GetOrder(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{101}, got.ProductIDs)
	})

	t.Run("Order not found", func(t *testing.T) {
		_, err := store.GetOrder(ctx, 2)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.ErrorIs(t, store.UpdateOrder(ctx, domain.NewOrder(2, 1)), domain.ErrOrderNotFound)
	})
}

func TestStore_GetPendingDeliveries(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	paid := domain.NewOrder(1, 1)
	paid.Status = domain.OrderStatusPaid
	paid.SetDelivery(domain.NewDelivery(11, "a", 1), nil)

	placed := domain.NewOrder(2, 1)
	placed.Status = domain.OrderStatusPlaced
	placed.SetDelivery(domain.NewDelivery(12, "b", 1), nil)

	done := domain.NewOrder(3, 1)
	done.Status = domain.OrderStatusPaid
	done.SetDelivery(domain.NewDelivery(13, "c", 1), nil)

	sent := domain.NewOrder(4, 1)
	sent.Status = domain.OrderStatusPaid
	sent.SetDelivery(domain.NewDelivery(10, "d", 1), nil)

	for _, o := range []*domain.Order{paid, placed, done, sent} {
		require.NoError(t, store.CreateOrder(ctx, o))
	}
	require.NoError(t, store.CreateDelivery(ctx, domain.NewDelivery(11, "a", 1)))
	require.NoError(t, store.CreateDelivery(ctx, domain.NewDelivery(12, "b", 1)))
	completed := domain.NewDelivery(13, "c", 1)
	completed.Status = domain.DeliveryStatusCompleted
	require.NoError(t, store.CreateDelivery(ctx, completed))
	inTransit := domain.NewDelivery(10, "d", 1)
	inTransit.Status = domain.DeliveryStatusSent
	require.NoError(t, store.CreateDelivery(ctx, inTransit))

	pending, err := store.GetPendingDeliveries(ctx)
	require.NoError(t, err)

	require.Len(t, pending, 2)
	assert.Equal(t, int64(10), pending[0].ID)
	assert.Equal(t, int64(11), pending[1].ID)
}

func TestStore_PaymentsCouriersReviews(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	payment := domain.NewPayment(1, domain.PaymentTypeCard, decimal.NewFromInt(450000))
	require.NoError(t, store.CreatePayment(ctx, payment))
	assert.ErrorIs(t, store.CreatePayment(ctx, payment), domain.ErrPaymentExists)
	payment.Status = domain.PaymentStatusPaid
	require.NoError(t, store.UpdatePayment(ctx, payment))
	got, err := store.GetPayment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, got.Status)
	_, err = store.GetPayment(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

	courier := &domain.Courier{ID: 11, Name: "Daniyar", Phone: "8777"}
	require.NoError(t, store.CreateCourier(ctx, courier))
	assert.ErrorIs(t, store.CreateCourier(ctx, courier), domain.ErrCourierExists)
	_, err = store.GetCourier(ctx, 12)
	assert.ErrorIs(t, err, domain.ErrCourierNotFound)

	require.NoError(t, store.CreateReview(ctx, domain.NewReview(2, 4, "ok", 1, 101)))
	require.NoError(t, store.CreateReview(ctx, domain.NewReview(1, 5, "great", 1, 101)))
	require.NoError(t, store.CreateReview(ctx, domain.NewReview(3, 1, "bad", 1, 102)))
	assert.ErrorIs(t, store.CreateReview(ctx, domain.NewReview(3, 1, "bad", 1, 102)), domain.ErrReviewExists)

	reviews, err := store.GetReviewsByProduct(ctx, 101)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, int64(1), reviews[0].ID)
	assert.Equal(t, int64(2), reviews[1].ID)
}
