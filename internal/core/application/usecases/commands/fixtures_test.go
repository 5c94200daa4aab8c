package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func mustUser(t *testing.T, s string) kernel.UserID {
	t.Helper()
	id, err := kernel.NewUserID(s)
	require.NoError(t, err)
	return id
}

func testProduct(t *testing.T) order.Product {
	t.Helper()
	p, err := order.NewProduct("product-1", "Samsung A14", "https://img/a14.jpg", 10000)
	require.NoError(t, err)
	return p
}

func testPayment(t *testing.T) order.PaymentInfo {
	t.Helper()
	p, err := order.NewPaymentInfo(order.PaymentMethodOrange, "+2250708000000", "Kouadio Y.")
	require.NoError(t, err)
	return p
}

// orderIn builds an order of buyer-1 / seller-1 driven to status through the
// regular transitions starting at t0, and returns it as if loaded from
// storage at version 1 (no pending events).
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	buyer := mustUser(t, "buyer-1")
	seller := mustUser(t, "seller-1")

	o, err := order.NewOrder(kernel.NewUUID(), buyer, seller, testProduct(t), testPayment(t), 1000,
		decimal.NewFromInt(5), order.DeliveryTypeDelivery, t0)
	require.NoError(t, err)

	switch status {
	case order.Initiated:
	case order.Cancelled:
		require.NoError(t, o.Cancel(buyer, t0))
	default:
		require.NoError(t, o.SubmitProof(buyer, "https://img/proof.jpg", "TX-1", t0))
		if status == order.Confirmed || status == order.Delivered {
			require.NoError(t, o.ConfirmReceipt(seller, t0.Add(time.Hour)))
		}
		if status == order.Delivered {
			require.NoError(t, o.ConfirmDelivery(buyer, t0.Add(2*time.Hour)))
		}
		if status == order.Disputed {
			require.NoError(t, o.Dispute(buyer, "no answer", t0.Add(time.Hour)))
		}
	}

	snapshot := o.Snapshot()
	snapshot.Version = 1
	restored, err := order.RestoreOrder(snapshot)
	require.NoError(t, err)
	require.Equal(t, status, restored.Status())
	return restored
}
