package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/diillson/profit-tracker-go/internal/domain/entity"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
)

var now = time.Now

func addPeriodFlags(cmd *cobra.Command) {
	t := now()
	cmd.Flags().IntP("year", "Y", t.Year(), "Year of the period")
	cmd.Flags().IntP("month", "M", int(t.Month()), "Month of the period (1-12)")
}

func readPeriod(cmd *cobra.Command) (entity.Period, error) {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	p := entity.NewPeriod(year, month)
	if !p.Valid() {
		return p, fmt.Errorf("%w (got %d)", types.ErrInvalidPeriod, month)
	}
	return p, nil
}

func addChannelFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("channel", "c", string(entity.ChannelEbay), "Sales channel: ebay or woo")
}

func readChannel(cmd *cobra.Command) (entity.Channel, error) {
	raw, _ := cmd.Flags().GetString("channel")
	ch, ok := entity.ParseChannel(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidChannel, raw)
	}
	return ch, nil
}

func addReportFlags(cmd *cobra.Command, kinds string) {
	cmd.Flags().StringP("report-name", "n", "", "Base name for the report file (without extension)")
	cmd.Flags().StringSliceP("report-type", "y", nil, "Report types: "+kinds)
	cmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
}

// parsePeriodLabel aceita "YYYY-MM" ou "M/YYYY".
func parsePeriodLabel(s string) (entity.Period, error) {
	s = strings.TrimSpace(s)
	var year, month int
	var err error
	switch {
	case strings.Contains(s, "-"):
		parts := strings.SplitN(s, "-", 2)
		year, err = strconv.Atoi(parts[0])
		if err == nil {
			month, err = strconv.Atoi(parts[1])
		}
	case strings.Contains(s, "/"):
		parts := strings.SplitN(s, "/", 2)
		month, err = strconv.Atoi(parts[0])
		if err == nil {
			year, err = strconv.Atoi(parts[1])
		}
	default:
		err = fmt.Errorf("missing separator")
	}
	if err != nil {
		return entity.Period{}, fmt.Errorf("%w: %q is not YYYY-MM", types.ErrInvalidPeriod, s)
	}
	p := entity.NewPeriod(year, month)
	if !p.Valid() {
		return entity.Period{}, fmt.Errorf("%w: %q is not YYYY-MM", types.ErrInvalidPeriod, s)
	}
	return p, nil
}

// readSalesFile lê pares SKU/unidades de um arquivo de duas colunas separadas por vírgula.
// Uma linha de cabeçalho começando com "sku" é ignorada.
func readSalesFile(path string) ([]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening sales file: %w", err)
	}
	defer f.Close()
	return readSalesPairs(f)
}

func readSalesPairs(r io.Reader) ([]string, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var skus, units []string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading sales file: %w", err)
		}
		if first {
			first = false
			if len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "sku") {
				continue
			}
		}
		if len(record) == 0 {
			continue
		}
		skus = append(skus, record[0])
		if len(record) > 1 {
			units = append(units, record[1])
		} else {
			units = append(units, "")
		}
	}
	return skus, units, nil
}
