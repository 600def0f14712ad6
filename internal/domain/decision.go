package domain

import "time"

// Decision is one persisted key/value entry in the durable decision store.
// PK: visitor_id, SK: key. The affirmative verification marker is stored
// under the well-known age-verification key with the literal value "true".
type Decision struct {
	VisitorID string    `json:"visitor_id" dynamodbav:"visitor_id"`
	Key       string    `json:"key" dynamodbav:"key"`
	Value     string    `json:"value" dynamodbav:"value"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}
