package csvstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/domain/repository"
)

// File names of every collection inside the data directory.
const (
	EbaySKUFile     = "ebay_sku.csv"
	EbaySalesFile   = "ebay_sales.csv"
	WooSKUFile      = "woo_sku.csv"
	WooSalesFile    = "woo_sales.csv"
	B2BFile         = "b2b_data.csv"
	CostsFile       = "costs_data.csv"
	MonthStatusFile = "month_status.csv"
)

// Store keeps every collection as a CSV file in one directory.
type Store struct {
	dir string
}

var (
	_ repository.LedgerRepository  = (*Store)(nil)
	_ repository.ArchiveRepository = (*Store)(nil)
)

// Open prepares dir as a data directory, creating it and any missing collection file.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating data directory '%s': %w", dir, err)
	}
	s := &Store{dir: dir}
	if err := s.EnsureFiles(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureFiles writes the header row of every collection file that does not exist yet.
func (s *Store) EnsureFiles() error {
	headers := map[string][]string{
		EbaySKUFile:     skuHeader,
		EbaySalesFile:   salesHeader,
		WooSKUFile:      skuHeader,
		WooSalesFile:    salesHeader,
		B2BFile:         b2bHeader,
		CostsFile:       costHeader,
		MonthStatusFile: statusHeader,
	}
	for name, header := range headers {
		if err := ensureHeader(s.path(name), header); err != nil {
			return err
		}
	}
	return nil
}

// Files lists every collection file path in a stable order.
func (s *Store) Files() []string {
	names := []string{EbaySKUFile, EbaySalesFile, WooSKUFile, WooSalesFile, B2BFile, CostsFile, MonthStatusFile}
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = s.path(n)
	}
	return paths
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func skuFile(ch entity.Channel) (string, error) {
	switch ch {
	case entity.ChannelEbay:
		return EbaySKUFile, nil
	case entity.ChannelWoo:
		return WooSKUFile, nil
	}
	return "", fmt.Errorf("unknown channel %q", ch)
}

func salesFile(ch entity.Channel) (string, error) {
	switch ch {
	case entity.ChannelEbay:
		return EbaySalesFile, nil
	case entity.ChannelWoo:
		return WooSalesFile, nil
	}
	return "", fmt.Errorf("unknown channel %q", ch)
}

func (s *Store) LoadSKUs(ch entity.Channel) ([]entity.SKUEntry, error) {
	name, err := skuFile(ch)
	if err != nil {
		return nil, err
	}
	rows, err := readTable(s.path(name))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeSKU), nil
}

func (s *Store) SaveSKUs(ch entity.Channel, entries []entity.SKUEntry) error {
	name, err := skuFile(ch)
	if err != nil {
		return err
	}
	return writeTable(s.path(name), skuHeader, encodeAll(entries, encodeSKU))
}

func (s *Store) LoadSales(ch entity.Channel) ([]entity.SalesEntry, error) {
	name, err := salesFile(ch)
	if err != nil {
		return nil, err
	}
	rows, err := readTable(s.path(name))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeSales), nil
}

func (s *Store) SaveSales(ch entity.Channel, entries []entity.SalesEntry) error {
	name, err := salesFile(ch)
	if err != nil {
		return err
	}
	return writeTable(s.path(name), salesHeader, encodeAll(entries, encodeSales))
}

func (s *Store) LoadB2B() ([]entity.B2BEntry, error) {
	rows, err := readTable(s.path(B2BFile))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeB2B), nil
}

func (s *Store) SaveB2B(entries []entity.B2BEntry) error {
	return writeTable(s.path(B2BFile), b2bHeader, encodeAll(entries, encodeB2B))
}

func (s *Store) LoadCosts() ([]entity.CostEntry, error) {
	rows, err := readTable(s.path(CostsFile))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeCost), nil
}

func (s *Store) SaveCosts(entries []entity.CostEntry) error {
	return writeTable(s.path(CostsFile), costHeader, encodeAll(entries, encodeCost))
}

// IsArchived reports the flag of the first row matching p; periods without a row are open.
func (s *Store) IsArchived(p entity.Period) (bool, error) {
	flags, err := s.ListArchiveFlags()
	if err != nil {
		return false, err
	}
	for _, f := range flags {
		if f.Period == p {
			return f.Archived, nil
		}
	}
	return false, nil
}

// SetArchived updates the row of p or appends one.
func (s *Store) SetArchived(p entity.Period, archived bool) error {
	flags, err := s.ListArchiveFlags()
	if err != nil {
		return err
	}
	found := false
	for i := range flags {
		if flags[i].Period == p {
			flags[i].Archived = archived
			found = true
			break
		}
	}
	if !found {
		flags = append(flags, entity.ArchiveFlag{Period: p, Archived: archived})
	}
	return writeTable(s.path(MonthStatusFile), statusHeader, encodeAll(flags, encodeFlag))
}

func (s *Store) ListArchiveFlags() ([]entity.ArchiveFlag, error) {
	rows, err := readTable(s.path(MonthStatusFile))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeFlag), nil
}
