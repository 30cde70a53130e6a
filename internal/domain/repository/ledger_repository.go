package repository

import (
	"github.com/diillson/profit-tracker-go/internal/domain/entity"
)

// LedgerRepository reads and writes whole entity collections. Every Save replaces the
// persisted collection with the given slice.
type LedgerRepository interface {
	// SKU entries, one collection per channel
	LoadSKUs(channel entity.Channel) ([]entity.SKUEntry, error)
	SaveSKUs(channel entity.Channel, entries []entity.SKUEntry) error

	// Sales entries, one collection per channel
	LoadSales(channel entity.Channel) ([]entity.SalesEntry, error)
	SaveSales(channel entity.Channel, entries []entity.SalesEntry) error

	LoadB2B() ([]entity.B2BEntry, error)
	SaveB2B(entries []entity.B2BEntry) error

	LoadCosts() ([]entity.CostEntry, error)
	SaveCosts(entries []entity.CostEntry) error

	// Files lists the paths of every collection, used for backups.
	Files() []string
}

// ArchiveRepository stores the per-period archival flag.
type ArchiveRepository interface {
	IsArchived(period entity.Period) (bool, error)
	SetArchived(period entity.Period, archived bool) error
	ListArchiveFlags() ([]entity.ArchiveFlag, error)
}
