package transfer

import "time"

const EventTransferSubmitted = "TransferSubmitted"

type SubmittedEvent struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	Payload   SubmittedPayload `json:"payload"`
	Timestamp time.Time        `json:"timestamp"`
}

type SubmittedPayload struct {
	TransferID   string `json:"transfer_id"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	RequestedBy  string `json:"requested_by"`
	Items        []Item `json:"items"`
}

func (p SubmittedPayload) TotalItems() int64 {
	var total int64
	for _, it := range p.Items {
		total += it.Quantity
	}
	return total
}
