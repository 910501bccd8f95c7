package domain

import "fmt"

// CheckoutMeta is the processing state stamped on every staging record by the
// checkout pipeline. Ignore is an operator override that excludes a record
// from error sweeps.
type CheckoutMeta struct {
	Processed     bool    `json:"processed"`
	InError       bool    `json:"inError"`
	FieldsInError *string `json:"fieldsInError,omitempty"`
	Ignore        bool    `json:"ignore"`
}

// CheckoutStatus is the outcome written back onto a staging record.
type CheckoutStatus struct {
	Processed     bool
	InError       bool
	FieldsInError *string
}

// Batch groups the staging records of one ingestion run. Processed means every
// record was attempted, not that every record succeeded.
type Batch struct {
	ID        int64 `json:"id"`
	Processed bool  `json:"processed"`
}

// StagingCurrency holds one raw currency row as received from upstream. All
// payload fields are unvalidated text.
type StagingCurrency struct {
	ID      int64  `json:"id"`
	BatchID int64  `json:"batchId"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	CheckoutMeta
}

func (s StagingCurrency) String() string {
	return fmt.Sprintf("[%d] %s %s", s.ID, s.Code, s.Name)
}

// StagingForex holds one raw exchange rate row.
type StagingForex struct {
	ID                  int64  `json:"id"`
	BatchID             int64  `json:"batchId"`
	PrimaryCurrencyID   string `json:"primaryCurrencyId"`
	SecondaryCurrencyID string `json:"secondaryCurrencyId"`
	DateValid           string `json:"dateValid"`
	Rate                string `json:"rate"`
	CheckoutMeta
}

func (s StagingForex) String() string {
	return fmt.Sprintf("[%d] %s -> %s @ %s", s.ID, s.PrimaryCurrencyID, s.SecondaryCurrencyID, s.DateValid)
}

// StagingOffer holds one raw offer row.
type StagingOffer struct {
	ID                    int64  `json:"id"`
	BatchID               int64  `json:"batchId"`
	HotelID               string `json:"hotelId"`
	SellingPrice          string `json:"sellingPrice"`
	CurrencyID            string `json:"currencyId"`
	BreakfastIncludedFlag string `json:"breakfastIncludedFlag"`
	ValidOfferFlag        string `json:"validOfferFlag"`
	CheckinDate           string `json:"checkinDate"`
	CheckoutDate          string `json:"checkoutDate"`
	OfferValidFrom        string `json:"offerValidFrom"`
	OfferValidTo          string `json:"offerValidTo"`
	CheckoutMeta
}

func (s StagingOffer) String() string {
	return fmt.Sprintf("[%d] hotel %s %s - %s", s.ID, s.HotelID, s.CheckinDate, s.CheckoutDate)
}
