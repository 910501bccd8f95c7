package services

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hqdw/hq_warehouse_app/internal/apperrors"
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	portsrepo "github.com/hqdw/hq_warehouse_app/internal/core/ports/repositories"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

var (
	currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	alnumPattern        = regexp.MustCompile(`[0-9A-Za-z]`)
	unsignedIntPattern  = regexp.MustCompile(`^[0-9]+$`)
	unsignedNumPattern  = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	signedDigitPattern  = regexp.MustCompile(`^-?[0-9]$`)
	signedIntPattern    = regexp.MustCompile(`^-?[0-9]+$`)
	datePattern         = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	datetimePattern     = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}$`)
)

// fieldErrors accumulates the names of failed fields, each at most once, in
// first-failure order.
type fieldErrors struct {
	names []string
}

func (f *fieldErrors) add(name string) {
	if !slices.Contains(f.names, name) {
		f.names = append(f.names, name)
	}
}

// CheckoutValidator maps raw staging records onto warehouse parameter sets.
// It reads the staging record, never mutates it, and reports every field that
// fails its rule. Referenced dimensions are resolved through the cache first
// and the store second; successful store reads populate the cache.
type CheckoutValidator struct {
	cache      *DimensionCache
	currencies portsrepo.CurrencyReader
	resolver   *ForexResolver
	loc        *time.Location
}

// NewCheckoutValidator creates a validator. loc is the warehouse time zone
// used to interpret offer validity timestamps.
func NewCheckoutValidator(cache *DimensionCache, currencies portsrepo.CurrencyReader, resolver *ForexResolver, loc *time.Location) *CheckoutValidator {
	return &CheckoutValidator{
		cache:      cache,
		currencies: currencies,
		resolver:   resolver,
		loc:        loc,
	}
}

// ValidateCurrency checks one staging currency record. The code must be three
// uppercase letters and the name must contain at least one alphanumeric
// character; the name is stored trimmed.
func (v *CheckoutValidator) ValidateCurrency(rec domain.StagingCurrency) (domain.Currency, []string) {
	var failed fieldErrors

	if !currencyCodePattern.MatchString(rec.Code) {
		failed.add("code")
	}

	name := strings.TrimSpace(rec.Name)
	if !alnumPattern.MatchString(name) {
		failed.add("name")
	}

	return domain.Currency{Code: rec.Code, Name: name}, failed.names
}

// ValidateForex checks one staging forex record. Both currency ids must be
// non-negative integers resolvable to existing currencies; the date must be
// YYYY-MM-DD; the rate an unsigned number. A non-nil error reports a store
// failure, not a record failure.
func (v *CheckoutValidator) ValidateForex(ctx context.Context, rec domain.StagingForex) (domain.Forex, []string, error) {
	var failed fieldErrors
	var params domain.Forex

	from, err := v.resolveCurrencyField(ctx, rec.PrimaryCurrencyID)
	if err != nil {
		return params, nil, err
	}
	if from == nil {
		failed.add("primary_currency_id")
	} else {
		params.CurrencyFromID = from.ID
	}

	to, err := v.resolveCurrencyField(ctx, rec.SecondaryCurrencyID)
	if err != nil {
		return params, nil, err
	}
	if to == nil {
		failed.add("secondary_currency_id")
	} else {
		params.CurrencyToID = to.ID
	}

	if date, ok := parseDate(rec.DateValid); ok {
		params.DateValid = date
	} else {
		failed.add("date_valid")
	}

	if rate, ok := parseUnsignedNumber(rec.Rate); ok {
		params.Rate = rate
	} else {
		failed.add("rate")
	}

	return params, failed.names, nil
}

// ValidateOffer checks one staging offer record and converts its price to the
// base currency. When conversion fails, currency_id, selling_price and
// checkin_date are all reported as failed, even if each parsed correctly on
// its own: the three jointly determine the converted price.
func (v *CheckoutValidator) ValidateOffer(ctx context.Context, rec domain.StagingOffer) (domain.Offer, domain.Destination, []string, error) {
	var failed fieldErrors
	var params domain.Offer

	if hotelID, ok := parseUnsignedInt(rec.HotelID); ok {
		params.HotelID = hotelID
	} else {
		failed.add("hotel_id")
	}

	price, priceOK := parseUnsignedNumber(rec.SellingPrice)
	if priceOK && price.IsPositive() {
		params.OriginalPrice = price
	} else {
		priceOK = false
		failed.add("selling_price")
	}

	currency, err := v.resolveCurrencyField(ctx, rec.CurrencyID)
	if err != nil {
		return params, "", nil, err
	}
	if currency == nil {
		failed.add("currency_id")
	} else {
		params.OriginalCurrencyID = currency.ID
	}

	if signedDigitPattern.MatchString(rec.BreakfastIncludedFlag) {
		flag, _ := strconv.ParseInt(rec.BreakfastIncludedFlag, 10, 64)
		params.BreakfastIncluded = flag != -1
	} else {
		failed.add("breakfast_included_flag")
	}

	checkin, checkinOK := parseDate(rec.CheckinDate)
	if checkinOK {
		params.CheckinDate = checkin
	} else {
		failed.add("checkin_date")
	}

	if checkout, ok := parseDate(rec.CheckoutDate); ok {
		params.CheckoutDate = checkout
	} else {
		failed.add("checkout_date")
	}

	if from, ok := v.parseDatetime(rec.OfferValidFrom); ok {
		params.ValidFrom = from
	} else {
		failed.add("offer_valid_from")
	}

	if to, ok := v.parseDatetime(rec.OfferValidTo); ok {
		params.ValidTo = to
	} else {
		failed.add("offer_valid_to")
	}

	dest := domain.DestValidOffer
	if signedIntPattern.MatchString(rec.ValidOfferFlag) {
		flag, _ := strconv.ParseInt(rec.ValidOfferFlag, 10, 64)
		if flag == -1 {
			dest = domain.DestInvalidOffer
		}
	} else {
		failed.add("valid_offer_flag")
	}

	if currency != nil && priceOK && checkinOK {
		priceUSD, converted, err := v.convertToBase(ctx, *currency, price, checkin)
		if err != nil {
			return params, "", nil, err
		}
		if converted {
			params.PriceUSD = priceUSD
		} else {
			failed.add("currency_id")
			failed.add("selling_price")
			failed.add("checkin_date")
		}
	}

	return params, dest, failed.names, nil
}

// convertToBase converts price into the base currency using the forex rate for
// the check-in date. A price already in the base currency is passed through
// without a resolver call.
func (v *CheckoutValidator) convertToBase(ctx context.Context, currency domain.Currency, price decimal.Decimal, checkin time.Time) (decimal.Decimal, bool, error) {
	base, err := v.baseCurrency(ctx)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	if base == nil {
		return decimal.Decimal{}, false, nil
	}

	if currency.Code == base.Code {
		return price, true, nil
	}

	rate, err := v.resolver.Resolve(ctx, currency.ID, base.ID, checkin)
	if errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Decimal{}, false, nil
	}
	if err != nil {
		return decimal.Decimal{}, false, err
	}

	return price.Mul(rate.Rate), true, nil
}

// baseCurrency returns the conversion base, looking it up by code on first
// use. A nil result with nil error means the base is not in the warehouse.
func (v *CheckoutValidator) baseCurrency(ctx context.Context) (*domain.Currency, error) {
	if base, ok := v.cache.BaseCurrency(); ok {
		return &base, nil
	}

	base, err := v.currencies.FindCurrencyByCode(ctx, v.cache.baseCode)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	v.cache.PutCurrency(*base)
	return base, nil
}

// resolveCurrencyField parses a raw currency id and resolves it against the
// cache, then the store. A nil result with nil error means the field failed.
func (v *CheckoutValidator) resolveCurrencyField(ctx context.Context, raw string) (*domain.Currency, error) {
	if !unsignedIntPattern.MatchString(raw) {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, nil
	}

	if cur, ok := v.cache.Currency(id); ok {
		return &cur, nil
	}

	cur, err := v.currencies.FindCurrencyByID(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	v.cache.PutCurrency(*cur)
	return cur, nil
}

func parseDate(raw string) (time.Time, bool) {
	if !datePattern.MatchString(raw) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (v *CheckoutValidator) parseDatetime(raw string) (time.Time, bool) {
	if !datetimePattern.MatchString(raw) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(datetimeLayout, raw, v.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseUnsignedInt(raw string) (int64, bool) {
	if !unsignedIntPattern.MatchString(raw) {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseUnsignedNumber parses an unsigned integer or decimal literal through
// float64, matching how the rates arrive from upstream.
func parseUnsignedNumber(raw string) (decimal.Decimal, bool) {
	if !unsignedNumPattern.MatchString(raw) {
		return decimal.Decimal{}, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}
