package http

import "time"

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one requested (product, warehouse, quantity) triple.
type OrderLineRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int    `json:"quantity"`
}

// CreateOrderRequest is the payload of POST /api/v1/orders.
type CreateOrderRequest struct {
	FranchiseID     string             `json:"franchise_id"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryDate    *time.Time         `json:"delivery_date,omitempty"`
	Lines           []OrderLineRequest `json:"lines"`
}

// EditOrderRequest is the payload of PUT /api/v1/orders/:orderID/lines.
// The lines replace the current set wholesale.
type EditOrderRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// OrderLine is one line of an order as returned by the API.
type OrderLine struct {
	ProductID     string `json:"product_id"`
	WarehouseID   string `json:"warehouse_id"`
	WarehouseKind string `json:"warehouse_kind"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	Subtotal      string `json:"subtotal"`
}

// Order is the full order read model, totals and sourcing breakdown included.
type Order struct {
	ID              string      `json:"id"`
	Number          string      `json:"number"`
	FranchiseID     string      `json:"franchise_id"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryDate    *time.Time  `json:"delivery_date,omitempty"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	Version         int         `json:"version"`
	Lines           []OrderLine `json:"lines"`

	GrandTotal       string `json:"grand_total"`
	CompanyTotal     string `json:"company_total"`
	IndependentTotal string `json:"independent_total"`
	CompanyShare     string `json:"company_share"`
	Conforming       bool   `json:"conforming"`

	Warehouses []string `json:"warehouses"`
}

// Warehouse is one orderable warehouse.
type Warehouse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	IsCompany bool   `json:"is_company"`
}

// WarehouseProduct is one orderable product with its current availability.
type WarehouseProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	UnitPrice string `json:"unit_price"`
	Available int    `json:"available"`
}

// ComplianceReportEntry is one order's 80/20 sourcing breakdown.
type ComplianceReportEntry struct {
	OrderID          string `json:"order_id"`
	Number           string `json:"number"`
	Status           string `json:"status"`
	CompanyTotal     string `json:"company_total"`
	IndependentTotal string `json:"independent_total"`
	GrandTotal       string `json:"grand_total"`
	CompanyShare     string `json:"company_share"`
	Conforming       bool   `json:"conforming"`
}
