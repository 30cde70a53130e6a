package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/domain/ledger"
	"github.com/diillson/profit-tracker-go/internal/domain/repository"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
	"github.com/diillson/profit-tracker-go/pkg/logger"
)

// LedgerUseCase handles every mutation of the ledger collections and the period lifecycle.
type LedgerUseCase struct {
	ledgerRepo  repository.LedgerRepository
	archiveRepo repository.ArchiveRepository
	console     types.ConsoleInterface
	log         logger.Logger
	currency    string
}

// NewLedgerUseCase creates a new ledger use case.
func NewLedgerUseCase(
	ledgerRepo repository.LedgerRepository,
	archiveRepo repository.ArchiveRepository,
	console types.ConsoleInterface,
	log logger.Logger,
	currency string,
) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo:  ledgerRepo,
		archiveRepo: archiveRepo,
		console:     console,
		log:         log,
		currency:    currency,
	}
}

// ensureWritable rejects invalid periods and periods that have been archived.
func (uc *LedgerUseCase) ensureWritable(p entity.Period) error {
	if !p.Valid() {
		return fmt.Errorf("%w (got %d)", types.ErrInvalidPeriod, p.Month)
	}
	archived, err := uc.archiveRepo.IsArchived(p)
	if err != nil {
		return err
	}
	if archived {
		uc.log.WithField("period", p.String()).Warnf("rejected change to archived period")
		return fmt.Errorf("%w: %s cannot be changed", types.ErrPeriodArchived, p)
	}
	return nil
}

// SaveSKU values a SKU form submission and upserts it for (period, sku).
// It returns the stored entry and the packaging tokens that could not be resolved.
func (uc *LedgerUseCase) SaveSKU(ch entity.Channel, p entity.Period, in types.SKUInput) (entity.SKUEntry, []string, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		return entity.SKUEntry{}, nil, types.ErrEmptySKU
	}
	if err := uc.ensureWritable(p); err != nil {
		return entity.SKUEntry{}, nil, err
	}

	costs, err := uc.ledgerRepo.LoadCosts()
	if err != nil {
		return entity.SKUEntry{}, nil, err
	}

	input := ledger.ValuationInput{
		AfterVAT:   ledger.ParseAmount(in.PriceAfterVAT),
		ItemCost:   ledger.ParseAmount(in.CostOfItem),
		Packaging:  strings.TrimSpace(in.Packaging),
		FeePercent: ledger.ParseAmount(in.FeePercent),
		FeeFlat:    ledger.ParseAmount(in.FeeFlat),
		Delivery:   ledger.ParseAmount(in.Delivery),
	}
	valuation, unresolved := ledger.Valuate(input, ledger.NewCostLookup(costs, p))
	for _, token := range unresolved {
		uc.console.LogWarning("Packaging token '%s' is not numeric and not a cost name for %s; counted as %s0.00", token, p, uc.currency)
		uc.log.WithFields(logger.Fields{"token": token, "period": p.String(), "sku": sku}).Warnf("unresolved packaging token")
	}

	entry := ledger.BuildSKUEntry(p, sku, strings.TrimSpace(in.Category), input, valuation)

	entries, err := uc.ledgerRepo.LoadSKUs(ch)
	if err != nil {
		return entity.SKUEntry{}, nil, err
	}
	if err := uc.ledgerRepo.SaveSKUs(ch, ledger.UpsertSKU(entries, entry)); err != nil {
		return entity.SKUEntry{}, nil, err
	}

	uc.log.WithFields(logger.Fields{"channel": string(ch), "period": p.String(), "sku": sku}).Infof("saved SKU entry")
	return entry, unresolved, nil
}

// GetSKU returns the stored entry for (period, sku).
func (uc *LedgerUseCase) GetSKU(ch entity.Channel, p entity.Period, sku string) (entity.SKUEntry, error) {
	entries, err := uc.ledgerRepo.LoadSKUs(ch)
	if err != nil {
		return entity.SKUEntry{}, err
	}
	for _, e := range entries {
		if e.Period == p && e.SKU == sku {
			return e, nil
		}
	}
	return entity.SKUEntry{}, fmt.Errorf("%w: '%s' in %s", types.ErrSKUNotFound, sku, p)
}

// EditSKU re-saves a stored entry with the given overrides. When neither fee field is
// overridden the stored resolved fee is reused as a flat fee with a zero percentage.
func (uc *LedgerUseCase) EditSKU(ch entity.Channel, p entity.Period, sku string, edit types.SKUEdit) (entity.SKUEntry, []string, error) {
	current, err := uc.GetSKU(ch, p, strings.TrimSpace(sku))
	if err != nil {
		return entity.SKUEntry{}, nil, err
	}

	in := types.SKUInput{
		SKU:           current.SKU,
		Category:      current.Category,
		PriceAfterVAT: current.SoldPriceAfterVAT.String(),
		CostOfItem:    current.CostOfItem.String(),
		Packaging:     current.Packaging,
		FeePercent:    "0",
		FeeFlat:       current.TransactionFee.String(),
		Delivery:      current.Delivery.String(),
	}
	if edit.FeePercent != nil || edit.FeeFlat != nil {
		in.FeePercent = current.TransactionFeePercent.String()
		in.FeeFlat = current.TransactionFeeFlat.String()
	}

	override := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	override(&in.Category, edit.Category)
	override(&in.PriceAfterVAT, edit.PriceAfterVAT)
	override(&in.CostOfItem, edit.CostOfItem)
	override(&in.Packaging, edit.Packaging)
	override(&in.FeePercent, edit.FeePercent)
	override(&in.FeeFlat, edit.FeeFlat)
	override(&in.Delivery, edit.Delivery)

	return uc.SaveSKU(ch, p, in)
}

// ListSKUs returns the entries of a period. An empty category or "All" returns every category.
func (uc *LedgerUseCase) ListSKUs(ch entity.Channel, p entity.Period, category string) ([]entity.SKUEntry, error) {
	entries, err := uc.ledgerRepo.LoadSKUs(ch)
	if err != nil {
		return nil, err
	}
	all := category == "" || strings.EqualFold(category, "All")

	var out []entity.SKUEntry
	for _, e := range entries {
		if e.Period != p {
			continue
		}
		if all || e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

// Categories groups the SKUs of a period by category, both sorted.
func (uc *LedgerUseCase) Categories(ch entity.Channel, p entity.Period) ([]entity.CategoryGroup, error) {
	entries, err := uc.ListSKUs(ch, p, "")
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]map[string]struct{})
	for _, e := range entries {
		if byCategory[e.Category] == nil {
			byCategory[e.Category] = make(map[string]struct{})
		}
		byCategory[e.Category][e.SKU] = struct{}{}
	}

	groups := make([]entity.CategoryGroup, 0, len(byCategory))
	for cat, skus := range byCategory {
		g := entity.CategoryGroup{Category: cat}
		for sku := range skus {
			g.SKUs = append(g.SKUs, sku)
		}
		sort.Strings(g.SKUs)
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })
	return groups, nil
}

// DeleteSKU removes the entries of a period matching both sku and category.
func (uc *LedgerUseCase) DeleteSKU(ch entity.Channel, p entity.Period, sku, category string) (int, error) {
	if strings.TrimSpace(sku) == "" {
		return 0, types.ErrEmptySKU
	}
	if err := uc.ensureWritable(p); err != nil {
		return 0, err
	}
	entries, err := uc.ledgerRepo.LoadSKUs(ch)
	if err != nil {
		return 0, err
	}

	kept := make([]entity.SKUEntry, 0, len(entries))
	removed := 0
	for _, e := range entries {
		if e.Period == p && e.SKU == sku && e.Category == category {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := uc.ledgerRepo.SaveSKUs(ch, kept); err != nil {
		return 0, err
	}
	uc.log.WithFields(logger.Fields{"channel": string(ch), "period": p.String(), "sku": sku}).Infof("deleted %d SKU entries", removed)
	return removed, nil
}

// MoveSKUCategory re-files the entries of a period matching sku and from under to.
func (uc *LedgerUseCase) MoveSKUCategory(ch entity.Channel, p entity.Period, sku, from, to string) (int, error) {
	if strings.TrimSpace(sku) == "" {
		return 0, types.ErrEmptySKU
	}
	if err := uc.ensureWritable(p); err != nil {
		return 0, err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return 0, fmt.Errorf("new category cannot be empty")
	}
	entries, err := uc.ledgerRepo.LoadSKUs(ch)
	if err != nil {
		return 0, err
	}

	changed := 0
	for i := range entries {
		if entries[i].Period == p && entries[i].SKU == sku && entries[i].Category == from {
			entries[i].Category = to
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := uc.ledgerRepo.SaveSKUs(ch, entries); err != nil {
		return 0, err
	}
	return changed, nil
}

// SaveSales upserts units sold for pairs of SKU and units, zipped to the shorter list.
// Blank SKUs are skipped and malformed units count as zero. It returns the number of
// pairs processed.
func (uc *LedgerUseCase) SaveSales(ch entity.Channel, p entity.Period, skus, units []string) (int, error) {
	if err := uc.ensureWritable(p); err != nil {
		return 0, err
	}
	entries, err := uc.ledgerRepo.LoadSales(ch)
	if err != nil {
		return 0, err
	}

	n := len(skus)
	if len(units) < n {
		n = len(units)
	}

	count := 0
	for i := 0; i < n; i++ {
		sku := strings.TrimSpace(skus[i])
		if sku == "" {
			continue
		}
		sold := ledger.ParseUnits(units[i])

		found := false
		for j := range entries {
			if entries[j].Period == p && entries[j].SKU == sku {
				entries[j].UnitsSold = sold
				found = true
				break
			}
		}
		if !found {
			entries = append(entries, entity.SalesEntry{Period: p, SKU: sku, UnitsSold: sold})
		}
		count++
	}

	if err := uc.ledgerRepo.SaveSales(ch, entries); err != nil {
		return 0, err
	}
	uc.log.WithFields(logger.Fields{"channel": string(ch), "period": p.String()}).Infof("processed %d sales entries", count)
	return count, nil
}

// ListSales returns the sales entries of a period.
func (uc *LedgerUseCase) ListSales(ch entity.Channel, p entity.Period) ([]entity.SalesEntry, error) {
	entries, err := uc.ledgerRepo.LoadSales(ch)
	if err != nil {
		return nil, err
	}
	var out []entity.SalesEntry
	for _, e := range entries {
		if e.Period == p {
			out = append(out, e)
		}
	}
	return out, nil
}

// SaveB2B upserts a B2B transaction for (period, business name).
func (uc *LedgerUseCase) SaveB2B(p entity.Period, name, expense, profit string) (entity.B2BEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.B2BEntry{}, types.ErrEmptyBusinessName
	}
	if err := uc.ensureWritable(p); err != nil {
		return entity.B2BEntry{}, err
	}
	entries, err := uc.ledgerRepo.LoadB2B()
	if err != nil {
		return entity.B2BEntry{}, err
	}

	entry := entity.B2BEntry{
		Period:       p,
		BusinessName: name,
		Expense:      ledger.ParseAmount(expense),
		Profit:       ledger.ParseAmount(profit),
	}
	found := false
	for i := range entries {
		if entries[i].Period == p && entries[i].BusinessName == name {
			entries[i] = entry
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, entry)
	}

	if err := uc.ledgerRepo.SaveB2B(entries); err != nil {
		return entity.B2BEntry{}, err
	}
	return entry, nil
}

// DeleteB2B removes the B2B entries of a period for a business.
func (uc *LedgerUseCase) DeleteB2B(p entity.Period, name string) (int, error) {
	if err := uc.ensureWritable(p); err != nil {
		return 0, err
	}
	entries, err := uc.ledgerRepo.LoadB2B()
	if err != nil {
		return 0, err
	}
	kept := make([]entity.B2BEntry, 0, len(entries))
	for _, e := range entries {
		if e.Period == p && e.BusinessName == name {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(entries) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, uc.ledgerRepo.SaveB2B(kept)
}

// ListB2B returns the B2B entries of a period.
func (uc *LedgerUseCase) ListB2B(p entity.Period) ([]entity.B2BEntry, error) {
	entries, err := uc.ledgerRepo.LoadB2B()
	if err != nil {
		return nil, err
	}
	var out []entity.B2BEntry
	for _, e := range entries {
		if e.Period == p {
			out = append(out, e)
		}
	}
	return out, nil
}

// SaveCost upserts a named cost for a period.
func (uc *LedgerUseCase) SaveCost(p entity.Period, name, value string) (entity.CostEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.CostEntry{}, types.ErrEmptyCostName
	}
	if err := uc.ensureWritable(p); err != nil {
		return entity.CostEntry{}, err
	}
	entries, err := uc.ledgerRepo.LoadCosts()
	if err != nil {
		return entity.CostEntry{}, err
	}

	entry := entity.CostEntry{Period: p, CostName: name, CostValue: ledger.ParseAmount(value)}
	found := false
	for i := range entries {
		if entries[i].Period == p && entries[i].CostName == name {
			entries[i] = entry
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, entry)
	}

	if err := uc.ledgerRepo.SaveCosts(entries); err != nil {
		return entity.CostEntry{}, err
	}
	return entry, nil
}

// DeleteCost removes a named cost from a period.
func (uc *LedgerUseCase) DeleteCost(p entity.Period, name string) (int, error) {
	if err := uc.ensureWritable(p); err != nil {
		return 0, err
	}
	entries, err := uc.ledgerRepo.LoadCosts()
	if err != nil {
		return 0, err
	}
	kept := make([]entity.CostEntry, 0, len(entries))
	for _, e := range entries {
		if e.Period == p && e.CostName == name {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(entries) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, uc.ledgerRepo.SaveCosts(kept)
}

// ListCosts returns the costs of a period.
func (uc *LedgerUseCase) ListCosts(p entity.Period) ([]entity.CostEntry, error) {
	entries, err := uc.ledgerRepo.LoadCosts()
	if err != nil {
		return nil, err
	}
	var out []entity.CostEntry
	for _, e := range entries {
		if e.Period == p {
			out = append(out, e)
		}
	}
	return out, nil
}

// ArchivePeriod marks a period as done; every later change to it is rejected.
func (uc *LedgerUseCase) ArchivePeriod(p entity.Period) error {
	return uc.setArchived(p, true)
}

// UnarchivePeriod reopens a period.
func (uc *LedgerUseCase) UnarchivePeriod(p entity.Period) error {
	return uc.setArchived(p, false)
}

func (uc *LedgerUseCase) setArchived(p entity.Period, archived bool) error {
	if !p.Valid() {
		return fmt.Errorf("%w (got %d)", types.ErrInvalidPeriod, p.Month)
	}
	if err := uc.archiveRepo.SetArchived(p, archived); err != nil {
		return err
	}
	uc.log.WithField("period", p.String()).Infof("archived=%t", archived)
	return nil
}

// PeriodStatus reports whether a period is archived.
func (uc *LedgerUseCase) PeriodStatus(p entity.Period) (bool, error) {
	return uc.archiveRepo.IsArchived(p)
}

// ArchiveFlags lists every period that has an archival row.
func (uc *LedgerUseCase) ArchiveFlags() ([]entity.ArchiveFlag, error) {
	flags, err := uc.archiveRepo.ListArchiveFlags()
	if err != nil {
		return nil, err
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i].Period.Before(flags[j].Period) })
	return flags, nil
}
