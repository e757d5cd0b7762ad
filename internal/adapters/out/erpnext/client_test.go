package erpnext_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/adapters/out/erpnext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey    = "key123"
	testAPISecret = "secret456"
)

// newTestServer serves the frappe list and detail endpoints from canned JSON
// keyed by document name.
func newTestServer(t *testing.T, listJSON string, details map[string]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token "+testAPIKey+":"+testAPISecret, r.Header.Get("Authorization"))

		if r.URL.Path == "/api/resource/Purchase Order" {
			_, _ = w.Write([]byte(listJSON))
			return
		}

		for name, detailJSON := range details {
			if r.URL.Path == "/api/resource/Purchase Order/"+name {
				_, _ = w.Write([]byte(detailJSON))
				return
			}
		}

		w.WriteHeader(http.StatusNotFound)
	}))
}

func TestNewClient_Valid(t *testing.T) {
	client, err := erpnext.NewClient("http://erp.local", testAPIKey, testAPISecret)

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_MissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		key     string
		secret  string
	}{
		{"empty base URL", "", testAPIKey, testAPISecret},
		{"empty API key", "http://erp.local", "", testAPISecret},
		{"empty API secret", "http://erp.local", testAPIKey, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := erpnext.NewClient(tt.baseURL, tt.key, tt.secret)

			require.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestFetchPurchaseOrders_MapsDocuments(t *testing.T) {
	listJSON := `{"data": [{"name": "PUR-ORD-2025-00001"}]}`
	detailJSON := `{"data": {
		"name": "PUR-ORD-2025-00001",
		"transaction_date": "2025-06-01",
		"supplier": "Tata Steel",
		"ship_to_name": "Mumbai",
		"set_warehouse": "Hajipur Stores",
		"items": [
			{
				"item_code": "STL-ROD-12",
				"item_name": "Steel Rod 12mm",
				"gst_hsn_code": "7214",
				"uom": "Nos",
				"qty": 100,
				"pending_qty": 40,
				"rate": 120.5,
				"weight_per_unit": 2.5,
				"cbm_per_unit": 0.02
			}
		]
	}}`

	server := newTestServer(t, listJSON, map[string]string{"PUR-ORD-2025-00001": detailJSON})
	defer server.Close()

	client, err := erpnext.NewClient(server.URL, testAPIKey, testAPISecret)
	require.NoError(t, err)

	orders, err := client.FetchPurchaseOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)

	fetched := orders[0]
	assert.Equal(t, "PUR-ORD-2025-00001", fetched.PONumber)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), fetched.OrderDate)
	assert.Equal(t, "Tata Steel", fetched.SupplierName)
	assert.Equal(t, "Mumbai", fetched.Origin)
	assert.Equal(t, "Hajipur Stores", fetched.DropLocation)

	require.Len(t, fetched.Items, 1)
	line := fetched.Items[0]
	assert.Equal(t, "STL-ROD-12", line.ItemCode)
	assert.Equal(t, "Steel Rod 12mm", line.ItemName)
	assert.Equal(t, "7214", line.HSNCode)
	assert.Equal(t, "Nos", line.UOM)
	assert.Equal(t, 40, line.Quantity, "pending quantity wins over ordered quantity")
	assert.InDelta(t, 120.5, line.Rate, 0.0001)
	assert.InDelta(t, 2.5, line.WeightPerUnit, 0.0001)
	assert.InDelta(t, 0.02, line.CBMPerUnit, 0.0001)
}

func TestFetchPurchaseOrders_BlankShipTo_FallsBackToFactoryRegion(t *testing.T) {
	listJSON := `{"data": [{"name": "PUR-ORD-2025-00002"}]}`
	detailJSON := `{"data": {
		"name": "PUR-ORD-2025-00002",
		"transaction_date": "2025-06-02",
		"supplier": "Local Bricks Co",
		"items": [{"item_code": "BRK-01", "item_name": "Brick", "uom": "Nos", "qty": 10}]
	}}`

	server := newTestServer(t, listJSON, map[string]string{"PUR-ORD-2025-00002": detailJSON})
	defer server.Close()

	client, err := erpnext.NewClient(server.URL, testAPIKey, testAPISecret)
	require.NoError(t, err)

	orders, err := client.FetchPurchaseOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Bihar", orders[0].Origin)
	assert.Empty(t, orders[0].DropLocation)
}

func TestFetchPurchaseOrders_FullyReceivedLines_Skipped(t *testing.T) {
	listJSON := `{"data": [{"name": "PUR-ORD-2025-00003"}]}`
	detailJSON := `{"data": {
		"name": "PUR-ORD-2025-00003",
		"transaction_date": "2025-06-03",
		"supplier": "Tata Steel",
		"ship_to_name": "Mumbai",
		"items": [
			{"item_code": "STL-ROD-12", "item_name": "Steel Rod 12mm", "uom": "Nos", "qty": 0, "pending_qty": 0},
			{"item_code": "STL-ROD-16", "item_name": "Steel Rod 16mm", "uom": "Nos", "qty": 20, "pending_qty": 0}
		]
	}}`

	server := newTestServer(t, listJSON, map[string]string{"PUR-ORD-2025-00003": detailJSON})
	defer server.Close()

	client, err := erpnext.NewClient(server.URL, testAPIKey, testAPISecret)
	require.NoError(t, err)

	orders, err := client.FetchPurchaseOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "STL-ROD-16", orders[0].Items[0].ItemCode)
	assert.Equal(t, 20, orders[0].Items[0].Quantity, "zero pending falls back to ordered quantity")
}

func TestFetchPurchaseOrders_EmptyList_ReturnsEmptySlice(t *testing.T) {
	server := newTestServer(t, `{"data": []}`, nil)
	defer server.Close()

	client, err := erpnext.NewClient(server.URL, testAPIKey, testAPISecret)
	require.NoError(t, err)

	orders, err := client.FetchPurchaseOrders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestFetchPurchaseOrders_ServerError_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := erpnext.NewClient(server.URL, testAPIKey, testAPISecret)
	require.NoError(t, err)

	orders, err := client.FetchPurchaseOrders(context.Background())

	require.Error(t, err)
	assert.Nil(t, orders)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestFetchPurchaseOrders_InvalidTransactionDate_ReturnsError(t *testing.T) {
	listJSON := `{"data": [{"name": "PUR-ORD-2025-00004"}]}`
	detailJSON := `{"data": {
		"name": "PUR-ORD-2025-00004",
		"transaction_date": "June 4th",
		"supplier": "Tata Steel"
	}}`

	server := newTestServer(t, listJSON, map[string]string{"PUR-ORD-2025-00004": detailJSON})
	defer server.Close()

	client, err := erpnext.NewClient(server.URL, testAPIKey, testAPISecret)
	require.NoError(t, err)

	orders, err := client.FetchPurchaseOrders(context.Background())

	require.Error(t, err)
	assert.Nil(t, orders)
	assert.Contains(t, err.Error(), "invalid transaction date")
}
