package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// ChangeOp names the write that produced a change event.
type ChangeOp string

const (
	ChangeCreated ChangeOp = "created"
	ChangeUpdated ChangeOp = "updated"
	ChangeDeleted ChangeOp = "deleted"
)

func (o ChangeOp) Valid() bool {
	switch o {
	case ChangeCreated, ChangeUpdated, ChangeDeleted:
		return true
	}
	return false
}

// TransactionChangedMessage tells consumers that the ledger changed.
// It carries only the id; consumers re-read the store for the current rows.
type TransactionChangedMessage struct {
	Op        ChangeOp  `json:"op"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransactionChangedMessage(op ChangeOp, id int64) *TransactionChangedMessage {
	return &TransactionChangedMessage{
		Op:        op,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionChangedMessageFromJSON decodes and checks a message body.
func TransactionChangedMessageFromJSON(data []byte) (*TransactionChangedMessage, error) {
	var msg TransactionChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if !msg.Op.Valid() {
		return nil, fmt.Errorf("unknown change op %q", msg.Op)
	}
	return &msg, nil
}
