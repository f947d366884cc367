package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mintline/mintline/pkg/types"
)

func TestEmitDeliversToSubscribers(t *testing.T) {
	m := NewManager(nil)

	var got []any
	m.Subscribe(types.EventItemCreated, func(payload any) {
		got = append(got, payload)
	})

	created := types.ItemCreated{ItemID: 1, Seller: "alice"}
	m.Emit(types.EventItemCreated, created)

	assert.Len(t, got, 1)
	assert.Equal(t, created, got[0])
}

func TestEmitSkipsOtherTypes(t *testing.T) {
	m := NewManager(nil)

	var calls int
	m.Subscribe(types.EventItemSold, func(any) { calls++ })

	m.Emit(types.EventItemCreated, types.ItemCreated{ItemID: 1})
	assert.Zero(t, calls)

	m.Emit(types.EventItemSold, types.ItemSold{ItemID: 1})
	assert.Equal(t, 1, calls)
}

func TestEmitOrderIsSubscriptionOrder(t *testing.T) {
	m := NewManager(nil)

	var order []int
	m.Subscribe(types.EventFeeUpdated, func(any) { order = append(order, 1) })
	m.Subscribe(types.EventFeeUpdated, func(any) { order = append(order, 2) })

	m.Emit(types.EventFeeUpdated, types.FeeUpdated{})
	assert.Equal(t, []int{1, 2}, order)
}

func TestEmitWithNoSubscribersIsHarmless(t *testing.T) {
	m := NewManager(nil)
	m.Emit(types.EventFeesWithdrawn, types.FeesWithdrawn{})
}
