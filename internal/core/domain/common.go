package domain

import "time"

// Origin records where a warehouse row came from. BatchID and OriginID point
// back at the staging area; InsertDate is set once when the row is created and
// never changes afterwards.
type Origin struct {
	BatchID    int64     `json:"batchId"`
	OriginID   int64     `json:"originId"`
	InsertDate time.Time `json:"insertDate"`
}

// Destination names one of the warehouse tables a checkout can write to.
type Destination string

const (
	DestCurrency     Destination = "currency"
	DestForex        Destination = "forex"
	DestValidOffer   Destination = "valid_offer"
	DestInvalidOffer Destination = "invalid_offer"
)

// EntityType names one of the staging record kinds.
type EntityType string

const (
	EntityCurrency EntityType = "currency"
	EntityForex    EntityType = "forex"
	EntityOffer    EntityType = "offer"
)
