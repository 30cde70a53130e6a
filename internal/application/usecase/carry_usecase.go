package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/domain/ledger"
	"github.com/diillson/profit-tracker-go/pkg/logger"
)

// CarryKind selects one collection copied forward by CarryOver.
type CarryKind string

const (
	CarryEbaySKUs CarryKind = "ebay-sku"
	CarryWooSKUs  CarryKind = "woo-sku"
	CarryB2B      CarryKind = "b2b"
	CarryCosts    CarryKind = "costs"
)

// AllCarryKinds are the collections copied when no kind is requested. Sales never carry.
var AllCarryKinds = []CarryKind{CarryEbaySKUs, CarryWooSKUs, CarryB2B, CarryCosts}

// ParseCarryKind accepts the kind names plus a few aliases.
func ParseCarryKind(s string) (CarryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ebay-sku", "ebay", "ebay_sku":
		return CarryEbaySKUs, nil
	case "woo-sku", "woo", "woo_sku", "woocommerce":
		return CarryWooSKUs, nil
	case "b2b":
		return CarryB2B, nil
	case "costs", "cost":
		return CarryCosts, nil
	}
	return "", fmt.Errorf("unknown carry-over kind %q (use ebay-sku, woo-sku, b2b or costs)", s)
}

// CarryResult reports how many rows each kind appended to the target period.
type CarryResult struct {
	Target  entity.Period
	Source  entity.Period
	Carried map[CarryKind]int
}

// Total is the number of rows appended across every kind.
func (r CarryResult) Total() int {
	total := 0
	for _, n := range r.Carried {
		total += n
	}
	return total
}

// CarryOver copies rows of the previous month into target for each kind, skipping
// identities already present in target. Running it twice appends nothing the second time.
func (uc *LedgerUseCase) CarryOver(target entity.Period, kinds ...CarryKind) (CarryResult, error) {
	if err := uc.ensureWritable(target); err != nil {
		return CarryResult{}, err
	}
	if len(kinds) == 0 {
		kinds = AllCarryKinds
	}

	result := CarryResult{Target: target, Source: target.Previous(), Carried: make(map[CarryKind]int)}
	for _, kind := range kinds {
		n, err := uc.carryKind(kind, target)
		if err != nil {
			return result, fmt.Errorf("carry-over of %s failed: %w", kind, err)
		}
		result.Carried[kind] = n
		uc.log.WithFields(logger.Fields{"kind": string(kind), "target": target.String()}).Infof("carried %d rows", n)
	}
	return result, nil
}

func (uc *LedgerUseCase) carryKind(kind CarryKind, target entity.Period) (int, error) {
	switch kind {
	case CarryEbaySKUs:
		return uc.carrySKUs(entity.ChannelEbay, target)
	case CarryWooSKUs:
		return uc.carrySKUs(entity.ChannelWoo, target)
	case CarryB2B:
		rows, err := uc.ledgerRepo.LoadB2B()
		if err != nil {
			return 0, err
		}
		out, n := ledger.CarryOver(rows, target)
		if n == 0 {
			return 0, nil
		}
		return n, uc.ledgerRepo.SaveB2B(out)
	case CarryCosts:
		rows, err := uc.ledgerRepo.LoadCosts()
		if err != nil {
			return 0, err
		}
		out, n := ledger.CarryOver(rows, target)
		if n == 0 {
			return 0, nil
		}
		return n, uc.ledgerRepo.SaveCosts(out)
	}
	return 0, fmt.Errorf("unknown carry-over kind %q", kind)
}

func (uc *LedgerUseCase) carrySKUs(ch entity.Channel, target entity.Period) (int, error) {
	rows, err := uc.ledgerRepo.LoadSKUs(ch)
	if err != nil {
		return 0, err
	}
	out, n := ledger.CarryOver(rows, target)
	if n == 0 {
		return 0, nil
	}
	return n, uc.ledgerRepo.SaveSKUs(ch, out)
}
