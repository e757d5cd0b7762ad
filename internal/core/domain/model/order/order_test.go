package order_test

import (
	"testing"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem(t *testing.T) order.Item {
	t.Helper()
	item, err := order.NewItem("STL-12", "Steel Rod", "7214", "Nos", 10, 250, 1.5, 0.002)
	require.NoError(t, err)
	return item
}

func validOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"PO-1001",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"Acme Forgings",
		kernel.NewLocation("Mumbai"),
		nil,
		[]order.Item{validItem(t)},
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	orderDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		drop := kernel.NewLocation("Patna Yard")

		o, err := order.NewOrder(id, "PO-1001", orderDate, "Acme Forgings",
			kernel.NewLocation("Mumbai"), &drop, []order.Item{validItem(t)})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "PO-1001", o.PONumber())
		assert.Equal(t, "Acme Forgings", o.SupplierName())
		assert.Equal(t, "Mumbai", o.Origin().Name())
		require.NotNil(t, o.DropLocation())
		assert.Equal(t, "Patna Yard", o.DropLocation().Name())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 0, o.DateChangeCount())
		assert.Nil(t, o.ExpectedDeliveryDate())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "PO-1001", orderDate, "Acme Forgings",
			kernel.NewLocation("Mumbai"), nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty po number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", orderDate, "Acme Forgings",
			kernel.NewLocation("Mumbai"), nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "po number")
	})

	t.Run("should fail with zero order date", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "PO-1001", time.Time{}, "Acme Forgings",
			kernel.NewLocation("Mumbai"), nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order date")
	})

	t.Run("should fail with empty supplier name", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "PO-1001", orderDate, "",
			kernel.NewLocation("Mumbai"), nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "supplier name")
	})

	t.Run("should fail with unconstructed origin", func(t *testing.T) {
		var origin kernel.Location

		_, err := order.NewOrder(kernel.NewUUID(), "PO-1001", orderDate, "Acme Forgings",
			origin, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Location must be created")
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		var item order.Item

		_, err := order.NewOrder(kernel.NewUUID(), "PO-1001", orderDate, "Acme Forgings",
			kernel.NewLocation("Mumbai"), nil, []order.Item{item})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Item must be created")
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should accept zero weight and cbm", func(t *testing.T) {
		item, err := order.NewItem("X", "Unweighed part", "", "Nos", 5, 10, 0, 0)

		require.NoError(t, err)
		assert.Zero(t, item.WeightPerUnit())
		assert.Zero(t, item.CBMPerUnit())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := order.NewItem("X", "Part", "", "Nos", -1, 10, 1, 0.01)
		require.Error(t, err)
	})

	t.Run("should reject negative rate", func(t *testing.T) {
		_, err := order.NewItem("X", "Part", "", "Nos", 1, -10, 1, 0.01)
		require.Error(t, err)
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := order.NewItem("X", "Part", "", "Nos", 1, 10, -1, 0.01)
		require.Error(t, err)
	})

	t.Run("should reject negative cbm", func(t *testing.T) {
		_, err := order.NewItem("X", "Part", "", "Nos", 1, 10, 1, -0.01)
		require.Error(t, err)
	})
}

func TestOrder_ChangeDeliveryDate(t *testing.T) {
	newDate := func(day int) time.Time {
		return time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC)
	}

	t.Run("three successful changes then the fourth cancels", func(t *testing.T) {
		o := validOrder(t)

		for i := 1; i <= order.DefaultDateChangeLimit; i++ {
			res, err := o.ChangeDeliveryDate(newDate(i), order.DefaultDateChangeLimit)

			require.NoError(t, err)
			assert.False(t, res.Cancelled)
			assert.Equal(t, i, res.NewCount)
			assert.Equal(t, order.DefaultDateChangeLimit-i, res.Remaining)
			require.NotNil(t, o.ExpectedDeliveryDate())
			assert.Equal(t, newDate(i), *o.ExpectedDeliveryDate())
		}

		res, err := o.ChangeDeliveryDate(newDate(20), order.DefaultDateChangeLimit)

		require.NoError(t, err)
		assert.True(t, res.Cancelled)
		assert.Equal(t, 4, res.NewCount)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, 4, o.DateChangeCount())
		// The breaching request's date is discarded.
		assert.Equal(t, newDate(3), *o.ExpectedDeliveryDate())
	})

	t.Run("terminal order accepts no further changes", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Consolidate())
		require.NoError(t, o.Dispatch())

		_, err := o.ChangeDeliveryDate(newDate(1), order.DefaultDateChangeLimit)

		require.Error(t, err)
		assert.Equal(t, order.Dispatched, o.Status())
	})

	t.Run("rejects zero date", func(t *testing.T) {
		o := validOrder(t)

		_, err := o.ChangeDeliveryDate(time.Time{}, order.DefaultDateChangeLimit)

		require.Error(t, err)
		assert.Equal(t, 0, o.DateChangeCount())
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		o := validOrder(t)

		_, err := o.ChangeDeliveryDate(newDate(1), -1)

		require.Error(t, err)
	})

	t.Run("zero limit cancels on first request", func(t *testing.T) {
		o := validOrder(t)

		res, err := o.ChangeDeliveryDate(newDate(1), 0)

		require.NoError(t, err)
		assert.True(t, res.Cancelled)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.ExpectedDeliveryDate())
	})
}

func TestOrder_Consolidate(t *testing.T) {
	t.Run("pending order consolidates", func(t *testing.T) {
		o := validOrder(t)

		require.NoError(t, o.Consolidate())
		assert.Equal(t, order.Consolidated, o.Status())
	})

	t.Run("consolidated order cannot consolidate twice", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Consolidate())

		require.Error(t, o.Consolidate())
	})
}

func TestOrder_Dispatch(t *testing.T) {
	t.Run("consolidated order dispatches", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Consolidate())

		require.NoError(t, o.Dispatch())
		assert.Equal(t, order.Dispatched, o.Status())
	})

	t.Run("pending order cannot dispatch", func(t *testing.T) {
		o := validOrder(t)

		require.Error(t, o.Dispatch())
	})
}

func TestOrder_RefreshFromSource(t *testing.T) {
	t.Run("pending order refreshes header and items", func(t *testing.T) {
		o := validOrder(t)
		item, err := order.NewItem("NEW", "New part", "", "Nos", 2, 99, 3, 0.05)
		require.NoError(t, err)

		err = o.RefreshFromSource(
			time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			"Acme Forgings Ltd",
			kernel.NewLocation("Pune"),
			[]order.Item{item},
		)

		require.NoError(t, err)
		assert.Equal(t, "Acme Forgings Ltd", o.SupplierName())
		assert.Equal(t, "Pune", o.Origin().Name())
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, "NEW", o.Items()[0].ItemCode())
	})

	t.Run("consolidated order is never rewritten", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Consolidate())

		err := o.RefreshFromSource(
			time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			"Other", kernel.NewLocation("Pune"), nil)

		require.Error(t, err)
		assert.Equal(t, "Acme Forgings", o.SupplierName())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores full persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		delivery := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(id, "PO-2002",
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), &delivery, 2,
			"Acme Forgings", kernel.NewLocation("Delhi"), nil,
			[]order.Item{validItem(t)}, order.Consolidated)

		require.NoError(t, err)
		assert.Equal(t, order.Consolidated, o.Status())
		assert.Equal(t, 2, o.DateChangeCount())
		require.NotNil(t, o.ExpectedDeliveryDate())
		assert.Equal(t, delivery, *o.ExpectedDeliveryDate())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "PO-2002",
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), nil, 0,
			"Acme Forgings", kernel.NewLocation("Delhi"), nil, nil, order.Unknown)

		require.Error(t, err)
	})

	t.Run("rejects negative change count", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "PO-2002",
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), nil, -1,
			"Acme Forgings", kernel.NewLocation("Delhi"), nil, nil, order.Pending)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil and zero-value orders fail validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}
