package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PollStatus represents the lifecycle state of a poll
type PollStatus int

const (
	PollStatusDraft  PollStatus = 0
	PollStatusOpen   PollStatus = 1
	PollStatusClosed PollStatus = 2
)

func (s PollStatus) String() string {
	names := [...]string{"Draft", "Open", "Closed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Draft"
	}
	return names[s]
}

func (s PollStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PollStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PollStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = PollStatusDraft
	case "Open":
		*s = PollStatusOpen
	case "Closed":
		*s = PollStatusClosed
	}
	return nil
}

func (s PollStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PollStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PollStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PollStatus(v)
	case int:
		*s = PollStatus(v)
	}
	return nil
}
