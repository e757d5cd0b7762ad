// Package erpnext implements the ERP gateway port against the ERPNext REST
// API. The client pulls open purchase orders in two steps: a filtered list
// of document names, then one detail request per document to get the item
// child table, which the list endpoint does not return.
package erpnext

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/ports"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"
)

const (
	purchaseOrderDoctype = "Purchase Order"
	listPageLength       = 50
	requestTimeout       = 30 * time.Second

	// defaultShipToRegion stands in when a purchase order carries no
	// ship-to name. Upstream documents at the factory's own region often
	// leave the field blank.
	defaultShipToRegion = "Bihar"
)

// Client is an ERPNext REST API client implementing ports.ErpGateway.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// NewClient creates an ERPNext client. Authentication uses the API key pair
// in ERPNext's "token key:secret" header scheme.
func NewClient(baseURL string, apiKey string, apiSecret string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}
	if apiSecret == "" {
		return nil, errs.NewValueIsRequiredError("apiSecret")
	}

	return &Client{
		baseURL:    baseURL,
		authHeader: fmt.Sprintf("token %s:%s", apiKey, apiSecret),
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// listResponse wraps the frappe list endpoint payload.
type listResponse struct {
	Data []listedOrder `json:"data"`
}

type listedOrder struct {
	Name string `json:"name"`
}

// detailResponse wraps a single document payload.
type detailResponse struct {
	Data orderDetail `json:"data"`
}

type orderDetail struct {
	Name            string       `json:"name"`
	TransactionDate string       `json:"transaction_date"`
	Supplier        string       `json:"supplier"`
	ShipToName      string       `json:"ship_to_name"`
	SetWarehouse    string       `json:"set_warehouse"`
	Items           []itemDetail `json:"items"`
}

type itemDetail struct {
	ItemCode      string  `json:"item_code"`
	ItemName      string  `json:"item_name"`
	HSNCode       string  `json:"gst_hsn_code"`
	UOM           string  `json:"uom"`
	Qty           float64 `json:"qty"`
	PendingQty    float64 `json:"pending_qty"`
	Rate          float64 `json:"rate"`
	WeightPerUnit float64 `json:"weight_per_unit"`
	CBMPerUnit    float64 `json:"cbm_per_unit"`
}

// FetchPurchaseOrders retrieves all purchase orders that are still open in
// ERPNext. Closed and Cancelled documents are filtered out server-side.
func (c *Client) FetchPurchaseOrders(ctx context.Context) ([]ports.ErpOrder, error) {
	names, err := c.listOpenOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]ports.ErpOrder, 0, len(names))
	for _, name := range names {
		detail, detailErr := c.getOrderDetail(ctx, name)
		if detailErr != nil {
			return nil, detailErr
		}

		erpOrder, mapErr := mapOrder(detail)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, erpOrder)
	}

	return orders, nil
}

func (c *Client) listOpenOrders(ctx context.Context) ([]string, error) {
	query := url.Values{}
	query.Set("fields", `["name"]`)
	query.Set("filters", `[["status", "!=", "Closed"], ["status", "!=", "Cancelled"]]`)
	query.Set("limit_page_length", fmt.Sprintf("%d", listPageLength))

	endpoint := fmt.Sprintf("%s/api/resource/%s?%s",
		c.baseURL, url.PathEscape(purchaseOrderDoctype), query.Encode())

	var response listResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}

	names := make([]string, 0, len(response.Data))
	for _, listed := range response.Data {
		names = append(names, listed.Name)
	}

	return names, nil
}

func (c *Client) getOrderDetail(ctx context.Context, name string) (orderDetail, error) {
	endpoint := fmt.Sprintf("%s/api/resource/%s/%s",
		c.baseURL, url.PathEscape(purchaseOrderDoctype), url.PathEscape(name))

	var response detailResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return orderDetail{}, fmt.Errorf("get purchase order %q: %w", name, err)
	}

	return response.Data, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

func mapOrder(detail orderDetail) (ports.ErpOrder, error) {
	orderDate, err := time.Parse("2006-01-02", detail.TransactionDate)
	if err != nil {
		return ports.ErpOrder{}, fmt.Errorf("purchase order %q: invalid transaction date: %w",
			detail.Name, err)
	}

	origin := detail.ShipToName
	if origin == "" {
		origin = defaultShipToRegion
	}

	items := make([]ports.ErpItem, 0, len(detail.Items))
	for _, item := range detail.Items {
		// Pending quantity wins over ordered quantity; fully received
		// lines are not re-planned.
		qty := item.PendingQty
		if qty <= 0 {
			qty = item.Qty
		}
		if qty <= 0 {
			continue
		}

		items = append(items, ports.ErpItem{
			ItemCode:      item.ItemCode,
			ItemName:      item.ItemName,
			HSNCode:       item.HSNCode,
			UOM:           item.UOM,
			Quantity:      int(qty),
			Rate:          item.Rate,
			WeightPerUnit: item.WeightPerUnit,
			CBMPerUnit:    item.CBMPerUnit,
		})
	}

	return ports.ErpOrder{
		PONumber:     detail.Name,
		OrderDate:    orderDate.UTC(),
		SupplierName: detail.Supplier,
		Origin:       origin,
		DropLocation: detail.SetWarehouse,
		Items:        items,
	}, nil
}
