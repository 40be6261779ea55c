package export

import (
	"io"
	"strings"

	"coletas/internal/dto"
)

// header is the fixed export header. Column names are part of the exchange
// format consumed downstream and must not be localized away.
var header = []string{
	"Data",
	"Loja",
	"Pedido",
	"Nota",
	"Val. Produto",
	"Est. Merc",
	"Est. Frete",
	"Valor a Pagar",
	"Status",
	"Situação",
	"Observação",
}

// Filename returns the export file name for a given ISO date,
// e.g. coletas_2025-09-10.csv.
func Filename(todayISO string) string {
	return "coletas_" + todayISO + ".csv"
}

// WriteRecords writes the filtered view as CSV. The header row is plain;
// every data field is double-quoted (embedded quotes doubled), monetary
// fields carry exactly two decimals and the merchandise reversal flag
// renders as S/N. encoding/csv is not used because it only quotes fields
// that need it, and the format quotes everything.
func WriteRecords(w io.Writer, records []dto.Record) error {
	if _, err := io.WriteString(w, strings.Join(header, ",")+"\n"); err != nil {
		return err
	}

	for _, rec := range records {
		fields := []string{
			rec.Date,
			rec.Store,
			rec.OrderNumber,
			rec.InvoiceNumber,
			rec.ProductValue.StringFixed(2),
			reversalFlag(rec.MerchandiseReversed),
			rec.FreightReversal.StringFixed(2),
			rec.PayoutAmount.StringFixed(2),
			rec.OrderStatus,
			rec.PaymentStatus,
			rec.Note,
		}
		if _, err := io.WriteString(w, joinQuoted(fields)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func reversalFlag(reversed bool) string {
	if reversed {
		return "S"
	}
	return "N"
}
