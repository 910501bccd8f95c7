package models

import "time"

// OriginFields holds the origin metadata columns present on every warehouse
// table.
type OriginFields struct {
	BatchID    int64     `json:"batchId"`
	OriginID   int64     `json:"originId"`
	InsertDate time.Time `json:"insertDate"`
}
