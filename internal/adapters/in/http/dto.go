package http

import "time"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Health struct {
	Status string `json:"status"`
}

type DispatchBlocker struct {
	LineItemID      string `json:"line_item_id"`
	ItemAccessoryID string `json:"item_accessory_id"`
	AccessoryID     string `json:"accessory_id"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	StockLevel      int    `json:"stock_level"`
}

type DispatchReadiness struct {
	OrderID string           `json:"order_id"`
	Number  string           `json:"number"`
	Status  string           `json:"status"`
	Allowed bool             `json:"allowed"`
	Blocker *DispatchBlocker `json:"blocker,omitempty"`
}

type LowStockAccessory struct {
	ID                string `json:"id"`
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	CurrentStockLevel int    `json:"current_stock_level"`
	MinStockLevel     int    `json:"min_stock_level"`
	Shortfall         int    `json:"shortfall"`
}

type DelayedOrder struct {
	ID                   string    `json:"id"`
	Number               string    `json:"number"`
	CustomerName         string    `json:"customer_name"`
	Status               string    `json:"status"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`
	DaysOverdue          int       `json:"days_overdue"`
}

type AuditEntry struct {
	Kind          string    `json:"kind"`
	SubjectID     string    `json:"subject_id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	State         string    `json:"state,omitempty"`
	VariableValue string    `json:"variable_value,omitempty"`
	UserID        string    `json:"user_id"`
	Notes         string    `json:"notes,omitempty"`
	ChangedAt     time.Time `json:"changed_at"`
}

type StockMovement struct {
	ID             string    `json:"id"`
	ChangeType     string    `json:"change_type"`
	QuantityChange int       `json:"quantity_change"`
	NewStockLevel  int       `json:"new_stock_level"`
	Reason         string    `json:"reason,omitempty"`
	OrderID        *string   `json:"order_id,omitempty"`
	UserID         string    `json:"user_id,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}
