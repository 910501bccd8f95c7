package models

// Batch represents a row of the batches table.
type Batch struct {
	ID        int64 `json:"id"`
	Processed bool  `json:"processed"`
}

// CheckoutFields holds the processing status columns shared by all staging
// tables.
type CheckoutFields struct {
	Processed     bool    `json:"processed"`
	InError       bool    `json:"inError"`
	FieldsInError *string `json:"fieldsInError"`
	Ignore        bool    `json:"ignore"`
}

// StagingCurrency represents a row of staging_currencies. Payload columns are
// TEXT as received from upstream.
type StagingCurrency struct {
	ID      int64  `json:"id"`
	BatchID int64  `json:"batchId"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	CheckoutFields
}

// StagingForex represents a row of staging_forex.
type StagingForex struct {
	ID                  int64  `json:"id"`
	BatchID             int64  `json:"batchId"`
	PrimaryCurrencyID   string `json:"primaryCurrencyId"`
	SecondaryCurrencyID string `json:"secondaryCurrencyId"`
	DateValid           string `json:"dateValid"`
	Rate                string `json:"rate"`
	CheckoutFields
}

// StagingOffer represents a row of staging_offers.
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
	CheckoutFields
}
