package transaction

import (
	"bytes"
	"encoding/json"
)

// Record is a transaction as delivered by the remote card service.
type Record struct {
	TransactionID   FlexString  `json:"transaction_id"`
	TransactionType string      `json:"transaction_type"`
	Amount          FlexString  `json:"amount"`
	NewBalance      FlexString  `json:"new_balance"`
	TransactionDate string      `json:"transaction_date"`
	Liters          *FlexString `json:"liters"`
}

// FlexString accepts a JSON string, number or null and keeps its text.
// The card service sends numeric columns as strings but ids as numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var value string
		if err := json.Unmarshal(b, &value); err != nil {
			return err
		}
		*s = FlexString(value)
		return nil
	}
	*s = FlexString(b)
	return nil
}

func (s FlexString) String() string {
	return string(s)
}
