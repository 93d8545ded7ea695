package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CallStatus represents the status of a requested counselling call
type CallStatus int

const (
	CallStatusRequested CallStatus = 0
	CallStatusScheduled CallStatus = 1
	CallStatusCompleted CallStatus = 2
	CallStatusCancelled CallStatus = 3
)

func (s CallStatus) String() string {
	names := [...]string{"Requested", "Scheduled", "Completed", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Requested"
	}
	return names[s]
}

func (s CallStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CallStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CallStatus(i)
		return nil
	}
	switch str {
	case "Requested":
		*s = CallStatusRequested
	case "Scheduled":
		*s = CallStatusScheduled
	case "Completed":
		*s = CallStatusCompleted
	case "Cancelled":
		*s = CallStatusCancelled
	}
	return nil
}

func (s CallStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *CallStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CallStatusRequested
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = CallStatus(v)
	case int:
		*s = CallStatus(v)
	}
	return nil
}
