package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the status of an order
type OrderStatus int

const (
	OrderStatusCreated         OrderStatus = 0
	OrderStatusAwaitingPayment OrderStatus = 1
	OrderStatusPaid            OrderStatus = 2
	OrderStatusFailed          OrderStatus = 3
	OrderStatusCancelled       OrderStatus = 4
)

func (s OrderStatus) String() string {
	names := [...]string{"Created", "AwaitingPayment", "Paid", "Failed", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Created"
	}
	return names[s]
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Created":
		*s = OrderStatusCreated
	case "AwaitingPayment":
		*s = OrderStatusAwaitingPayment
	case "Paid":
		*s = OrderStatusPaid
	case "Failed":
		*s = OrderStatusFailed
	case "Cancelled":
		*s = OrderStatusCancelled
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusCreated
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
