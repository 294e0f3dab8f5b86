package dto

import (
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
)

// ChargeRuleChangeResponse is one audit row of rule history. Previous is nil
// for the rule's creation record.
type ChargeRuleChangeResponse struct {
	ChangeID  string              `json:"changeID"`
	RuleID    string              `json:"ruleID"`
	Previous  *ChargeRuleResponse `json:"previousValues"`
	Updated   ChargeRuleResponse  `json:"updatedValues"`
	UpdatedBy string              `json:"updatedBy"`
	CreatedAt string              `json:"createdAt"`
}

// PriceChangeResponse is one audit row of price history.
type PriceChangeResponse struct {
	ChangeID     string                 `json:"changeID"`
	InstrumentID string                 `json:"instrumentID"`
	Field        string                 `json:"field"`
	Previous     ReferencePriceResponse `json:"previousValues"`
	Updated      ReferencePriceResponse `json:"updatedValues"`
	Delta        PriceDeltaResponse     `json:"delta"`
	UpdatedBy    string                 `json:"updatedBy"`
	CreatedAt    string                 `json:"createdAt"`
}

// ToChargeRuleChangeResponse converts a domain audit record.
func ToChargeRuleChangeResponse(change domain.ChargeRuleChange) ChargeRuleChangeResponse {
	resp := ChargeRuleChangeResponse{
		ChangeID:  change.ChangeID,
		RuleID:    change.RuleID,
		Updated:   ToChargeRuleResponse(change.Updated),
		UpdatedBy: change.UpdatedBy,
		CreatedAt: formatTime(change.CreatedAt),
	}
	if change.Previous.RuleID != "" {
		prev := ToChargeRuleResponse(change.Previous)
		resp.Previous = &prev
	}
	return resp
}

// ToListChargeRuleChangeResponse converts a page of rule history.
func ToListChargeRuleChangeResponse(changes []domain.ChargeRuleChange) []ChargeRuleChangeResponse {
	responses := make([]ChargeRuleChangeResponse, len(changes))
	for i, change := range changes {
		responses[i] = ToChargeRuleChangeResponse(change)
	}
	return responses
}

// ToPriceChangeResponse converts a domain price audit record.
func ToPriceChangeResponse(change domain.PriceChange) PriceChangeResponse {
	return PriceChangeResponse{
		ChangeID:     change.ChangeID,
		InstrumentID: change.InstrumentID,
		Field:        string(change.Field),
		Previous:     ToReferencePriceResponse(change.Previous, nil),
		Updated:      ToReferencePriceResponse(change.Updated, nil),
		Delta:        ToPriceDeltaResponse(change.Delta),
		UpdatedBy:    change.UpdatedBy,
		CreatedAt:    formatTime(change.CreatedAt),
	}
}

// ToListPriceChangeResponse converts a page of price history.
func ToListPriceChangeResponse(changes []domain.PriceChange) []PriceChangeResponse {
	responses := make([]PriceChangeResponse, len(changes))
	for i, change := range changes {
		responses[i] = ToPriceChangeResponse(change)
	}
	return responses
}
