package recommendations

import (
	"encoding/json"
	"time"
)

// Record is a persisted recommendation snapshot, kept for history.
type Record struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	JobTitle   string          `json:"jobTitle"`
	Confidence float64         `json:"confidence"`
	Payload    json.RawMessage `json:"-"`
	CreatedAt  time.Time       `json:"createdAt"`
}
