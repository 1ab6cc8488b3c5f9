package domain

import (
	"math"
	"unicode/utf8"
)

// Pricing constants, in integer PKR.
const (
	BaseStitchingFee       = 2500
	RushOrderSurcharge     = 1000
	ComplexDesignSurcharge = 500

	// complexDesignThreshold gates the surcharge on the UNTRIMMED design idea
	// length. The step-1 validator trims before counting; the surcharge gate
	// does not. Clients price against the same raw length.
	complexDesignThreshold = 200

	taxRate = 0.05
)

// PriceBreakdown is the cost decomposition of a draft. The client computes
// an estimate with the same formula and the server recomputes before
// persisting; both sides must agree on the rounded integer total.
type PriceBreakdown struct {
	BaseStitching          int     `json:"baseStitching"`
	FabricCost             int     `json:"fabricCost"`
	RushOrderFee           int     `json:"rushOrderFee"`
	ComplexDesignSurcharge int     `json:"complexDesignSurcharge"`
	Subtotal               int     `json:"subtotal"`
	Tax                    float64 `json:"tax"`
	Total                  int     `json:"total"`
}

// CalculatePrice maps a draft to its price breakdown. Pure and
// deterministic: identical drafts always produce identical breakdowns.
func CalculatePrice(d *CustomOrderDraft) PriceBreakdown {
	b := PriceBreakdown{
		BaseStitching: BaseStitchingFee,
	}

	if d.FabricSource == FabricLCProvides && d.SelectedFabric != nil {
		b.FabricCost = d.SelectedFabric.Price
	}

	if d.RushOrder {
		b.RushOrderFee = RushOrderSurcharge
	}

	if d.ServiceType == ServiceFullyCustom && utf8.RuneCountInString(d.DesignIdea) > complexDesignThreshold {
		b.ComplexDesignSurcharge = ComplexDesignSurcharge
	}

	b.Subtotal = b.BaseStitching + b.FabricCost + b.RushOrderFee + b.ComplexDesignSurcharge

	// Tax stays exact; only the grand total is rounded, half up.
	b.Tax = float64(b.Subtotal) * taxRate
	b.Total = int(math.Floor(float64(b.Subtotal) + b.Tax + 0.5))

	return b
}
