package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/phillip/topup-intake-go/models"
)

func TestMemoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// insertion order deliberately differs from creation order
	for _, offset := range []int{2, 0, 3, 1} {
		_, err := mem.Insert(ctx, Suggestions, models.Suggestion{
			Name:      "s",
			Contact:   "c",
			Message:   "m",
			CreatedAt: base.Add(time.Duration(offset) * time.Minute),
		})
		require.NoError(t, err)
	}

	var got []models.Suggestion
	require.NoError(t, mem.ListNewestFirst(ctx, Suggestions, &got))
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].CreatedAt.After(got[i].CreatedAt), "entry %d out of order", i)
	}
	for _, s := range got {
		assert.False(t, s.ID.IsZero())
	}
}

func TestMemoryListEmptyCollection(t *testing.T) {
	var got []models.Order
	require.NoError(t, NewMemory().ListNewestFirst(context.Background(), Orders, &got))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemoryListRejectsNonSlice(t *testing.T) {
	var got models.Order
	err := NewMemory().ListNewestFirst(context.Background(), Orders, &got)
	require.Error(t, err)
}

func TestMemorySetFields(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	id, err := mem.Insert(ctx, Inquiries, models.Inquiry{
		Email:     "a@b.com",
		Message:   "hi",
		Status:    models.InquiryStatusPending,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, mem.SetFields(ctx, Inquiries, id, bson.M{"status": models.InquiryStatusReplied}))

	var got []models.Inquiry
	require.NoError(t, mem.ListNewestFirst(ctx, Inquiries, &got))
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID.Hex())
	assert.Equal(t, models.InquiryStatusReplied, got[0].Status)
	assert.Equal(t, "hi", got[0].Message)
}

func TestMemoryMissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	missing := primitive.NewObjectID().Hex()

	assert.NoError(t, mem.SetFields(ctx, Orders, missing, bson.M{"status": "paid"}))
	assert.NoError(t, mem.Delete(ctx, Orders, missing))
}

func TestMemoryMalformedID(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	assert.ErrorIs(t, mem.SetFields(ctx, Orders, "not-an-id", bson.M{"status": "paid"}), ErrInvalidID)
	assert.ErrorIs(t, mem.Delete(ctx, Orders, "not-an-id"), ErrInvalidID)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	keep, err := mem.Insert(ctx, Orders, models.Order{Name: "keep", CreatedAt: time.Now()})
	require.NoError(t, err)
	drop, err := mem.Insert(ctx, Orders, models.Order{Name: "drop", CreatedAt: time.Now()})
	require.NoError(t, err)

	require.NoError(t, mem.Delete(ctx, Orders, drop))

	var got []models.Order
	require.NoError(t, mem.ListNewestFirst(ctx, Orders, &got))
	require.Len(t, got, 1)
	assert.Equal(t, keep, got[0].ID.Hex())
}

func TestMemoryConcurrentSetFieldsAndList(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	id, err := mem.Insert(ctx, Orders, models.Order{Name: "n", Status: models.OrderStatusUnpaid, CreatedAt: time.Now()})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			assert.NoError(t, mem.SetFields(ctx, Orders, id, bson.M{"status": "paid"}))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			var got []models.Order
			assert.NoError(t, mem.ListNewestFirst(ctx, Orders, &got))
			assert.Len(t, got, 1)
		}
	}()
	wg.Wait()

	var got []models.Order
	require.NoError(t, mem.ListNewestFirst(ctx, Orders, &got))
	assert.Equal(t, "paid", got[0].Status)
}
