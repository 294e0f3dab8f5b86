package dto

import (
	"time"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdatePriceRequest defines an operator's change to the platform or sell
// price. Mode "absolute" reads NewPrice; mode "percent" reads Percent, which
// may be negative to decrease.
type UpdatePriceRequest struct {
	Mode     string           `json:"mode" binding:"required,oneof=absolute percent"`
	NewPrice *decimal.Decimal `json:"newPrice"`
	Percent  *decimal.Decimal `json:"percent"`
}

// PreviewPriceRequest computes the delta an update would produce without
// persisting anything, for the dashboard's optimistic preview.
type PreviewPriceRequest struct {
	Field string `json:"field" binding:"required,oneof=platform sell"`
	UpdatePriceRequest
}

// PriceFieldFromName maps the API field name to the domain PriceField.
func PriceFieldFromName(name string) domain.PriceField {
	if name == "sell" {
		return domain.SellPriceField
	}
	return domain.PlatformPriceField
}

// UpdateLivePriceRequest carries a market-feed tick for the live price.
type UpdateLivePriceRequest struct {
	LivePrice decimal.Decimal `json:"livePrice" binding:"required"`
}

// PriceDeltaResponse is the wire shape of a computed delta. The field names
// and the Change label match what the dashboard's original backend returned.
type PriceDeltaResponse struct {
	ChangeInPrice      decimal.Decimal `json:"change_in_price"`
	ChangeInPercentage decimal.Decimal `json:"change_in_percentage"`
	PercentUndefined   bool            `json:"percent_undefined,omitempty"`
	Change             string          `json:"change"`
}

// ReferencePriceResponse is the API shape of the price triple.
type ReferencePriceResponse struct {
	InstrumentID  string              `json:"instrumentID"`
	LivePrice     decimal.Decimal     `json:"live_price"`
	PlatformPrice decimal.Decimal     `json:"platform_price"`
	SellPrice     decimal.Decimal     `json:"sell_price"`
	CurrencyCode  string              `json:"currencyCode"`
	LastUpdatedAt string              `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
	LastChange    *PriceDeltaResponse `json:"lastChange,omitempty"`
}

// PriceUpdateResponse is returned after an accepted price update: the fresh
// triple plus the delta the update produced.
type PriceUpdateResponse struct {
	Price ReferencePriceResponse `json:"price"`
	Delta PriceDeltaResponse     `json:"delta"`
}

// ToPriceDeltaResponse converts a domain delta to its wire shape.
func ToPriceDeltaResponse(delta domain.PriceDelta) PriceDeltaResponse {
	return PriceDeltaResponse{
		ChangeInPrice:      delta.Absolute.Amount,
		ChangeInPercentage: delta.Percent.Decimal(),
		PercentUndefined:   delta.PercentUndefined,
		Change:             ChangeLabel(delta.Classification),
	}
}

// ToReferencePriceResponse converts the domain triple, optionally attaching
// the most recent delta.
func ToReferencePriceResponse(price domain.ReferencePrice, lastChange *domain.PriceDelta) ReferencePriceResponse {
	resp := ReferencePriceResponse{
		InstrumentID:  price.InstrumentID,
		LivePrice:     price.LivePrice.Amount,
		PlatformPrice: price.PlatformPrice.Amount,
		SellPrice:     price.SellPrice.Amount,
		CurrencyCode:  price.PlatformPrice.CurrencyCode,
		LastUpdatedAt: formatTime(price.LastUpdatedAt),
		LastUpdatedBy: price.LastUpdatedBy,
	}
	if lastChange != nil {
		delta := ToPriceDeltaResponse(*lastChange)
		resp.LastChange = &delta
	}
	return resp
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
