package domain

import (
	"testing"

	"github.com/avc/storefront-demo/internal/narration"
	"github.com/stretchr/testify/assert"
)

var alibek = Profile{ID: 1, Name: "Alibek", Email: "ali@mail.com", Address: "Almaty", Phone: "7777"}

func TestUser_Client(t *testing.T) {
	rec := narration.NewRecorder()
	client := NewClient(alibek)

	client.Register(rec)
	client.Login(rec)

	assert.Equal(t, RoleClient, client.Role)
	assert.True(t, client.IsClient())
	assert.Equal(t, []string{"Alibek registered.", "Alibek logged in."}, rec.Lines())

	t.Run("Loyalty points accumulate", func(t *testing.T) {
		assert.NoError(t, client.AddLoyaltyPoints(100))
		assert.NoError(t, client.AddLoyaltyPoints(50))
		assert.Equal(t, int64(150), client.LoyaltyPoints)
	})

	t.Run("Client cannot log admin actions", func(t *testing.T) {
		assert.ErrorIs(t, client.LogAction("delete product", rec), ErrNotAdmin)
	})
}

func TestUser_Admin(t *testing.T) {
	rec := narration.NewRecorder()
	admin := NewAdmin(Profile{ID: 2, Name: "Aigerim"})

	err := admin.LogAction("product 101 created", rec)

	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.Equal(t, []string{"Admin log: product 101 created"}, rec.Lines())
	assert.ErrorIs(t, admin.AddLoyaltyPoints(10), ErrNotClient)
}

func TestUser_UpdateData(t *testing.T) {
	rec := narration.NewRecorder()
	client := NewClient(alibek)

	client.UpdateData(Profile{ID: 99, Name: "Alibek", Email: "alibek@mail.com", Address: "Astana"}, rec)

	assert.Equal(t, int64(1), client.ID)
	assert.Equal(t, "Astana", client.Address)
	assert.Equal(t, []string{"User data updated."}, rec.Lines())
}

func TestReview_LeaveReview(t *testing.T) {
	rec := narration.NewRecorder()
	review := NewReview(1, 5, "great", 1, 101)

	review.LeaveReview("MacBook", rec)

	assert.Equal(t, []string{"Review left for product: MacBook"}, rec.Lines())
}
