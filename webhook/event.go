package webhook

import (
	"encoding/json"
	"time"
)

// Event is the webhook envelope. TargetPreview is the transaction snapshot
// as of the triggering event; its shape varies per Code, so it is kept raw
// here and validated by Validator.
type Event struct {
	Code          string          `json:"code"`
	UserID        string          `json:"user_id"`
	TargetID      string          `json:"target_id"`
	TargetPreview json.RawMessage `json:"target_preview"`
	Time          time.Time       `json:"time"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
}

// OnlinePreview is the target_preview shape carried by basic_tx.* events.
type OnlinePreview struct {
	ID       string `json:"id"`
	SellerID string `json:"seller_id"`
	BuyerID  string `json:"buyer_id,omitempty"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
	Price    int64  `json:"price"`
	Charge   int64  `json:"charge,omitempty"`

	TrackingCarrier   string `json:"tracking_carrier,omitempty"`
	TrackingReference string `json:"tracking_reference,omitempty"`
	Complaint         string `json:"complaint,omitempty"`
}

// F2FPreview is the target_preview shape carried by p2p_tx.* events.
type F2FPreview struct {
	ID           string `json:"id"`
	SellerID     string `json:"seller_id"`
	BuyerID      string `json:"buyer_id,omitempty"`
	Status       string `json:"status"`
	Currency     string `json:"currency"`
	Price        int64  `json:"price"`
	DepositPrice int64  `json:"deposit_price,omitempty"`
	DepositPaid  bool   `json:"deposit_paid,omitempty"`
}

// OnlinePreview decodes TargetPreview as an online transaction snapshot.
func (e *Event) OnlinePreview() (*OnlinePreview, error) {
	var p OnlinePreview
	if err := json.Unmarshal(e.TargetPreview, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// F2FPreview decodes TargetPreview as a face-to-face transaction snapshot.
func (e *Event) F2FPreview() (*F2FPreview, error) {
	var p F2FPreview
	if err := json.Unmarshal(e.TargetPreview, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
