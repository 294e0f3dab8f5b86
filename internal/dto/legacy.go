package dto

import (
	"fmt"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
)

// The dashboard's original backend speaks numeric codes: transaction kinds as
// a "slug" (0=Buy, 1=Sell, 2=Gift, 3=Redeem), rule status as 1/0, and price
// changes as display strings. This file is the only place those codes live;
// everything past the DTO layer uses the domain enums.

// KindFromSlug maps a legacy slug to a TransactionKind.
func KindFromSlug(slug int) (domain.TransactionKind, error) {
	switch slug {
	case 0:
		return domain.KindBuy, nil
	case 1:
		return domain.KindSell, nil
	case 2:
		return domain.KindGift, nil
	case 3:
		return domain.KindRedeem, nil
	default:
		return "", fmt.Errorf("unknown transaction slug %d", slug)
	}
}

// SlugFromKind maps a TransactionKind back to its legacy slug.
func SlugFromKind(kind domain.TransactionKind) int {
	switch kind {
	case domain.KindSell:
		return 1
	case domain.KindGift:
		return 2
	case domain.KindRedeem:
		return 3
	default:
		return 0
	}
}

// StatusFromCode maps the legacy 1/0 status code to a RuleStatus.
func StatusFromCode(code int) (domain.RuleStatus, error) {
	switch code {
	case 1:
		return domain.RuleActive, nil
	case 0:
		return domain.RuleInactive, nil
	default:
		return "", fmt.Errorf("unknown status code %d", code)
	}
}

// CodeFromStatus maps a RuleStatus back to the legacy 1/0 code.
func CodeFromStatus(status domain.RuleStatus) int {
	if status == domain.RuleActive {
		return 1
	}
	return 0
}

// ChangeLabel renders a delta classification the way the dashboard displays
// it.
func ChangeLabel(c domain.DeltaClassification) string {
	switch c {
	case domain.PositiveChange:
		return "Positive Change"
	case domain.NegativeChange:
		return "Negative Change"
	default:
		return "No Change"
	}
}
