package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"coletas/internal/domain"
	"coletas/internal/dto"
	"coletas/internal/export"
)

// Display strings for the table keep the operator-facing pt-BR vocabulary of
// the workflow; the stored values stay canonical.
var orderStatusLabels = map[string]string{
	string(domain.OrderStatusToCollect): "A COLETAR",
	string(domain.OrderStatusCollected): "COLETADO",
	string(domain.OrderStatusCancelled): "CANCELADO",
}

var paymentStatusLabels = map[string]string{
	string(domain.PaymentStatusOpen): "EM ABERTO",
	string(domain.PaymentStatusPaid): "PAGO",
}

func (c *Console) renderView() {
	records := c.module.Query.QueryRecords(c.filter)
	if len(records) == 0 {
		fmt.Fprintln(c.out, "no records match the current filter")
		return
	}

	table := tablewriter.NewTable(c.out)
	table.Header([]string{"ID", "Data", "Loja", "Pedido", "Nota", "Val. Produto", "Est. Merc", "Est. Frete", "Valor a Pagar", "Status", "Situação", "Obs"})
	for _, rec := range records {
		sel := " "
		if c.selection.Contains(rec.ID) {
			sel = "*"
		}
		table.Append([]string{
			sel + strconv.FormatUint(uint64(rec.ID), 10),
			rec.Date,
			rec.Store,
			rec.OrderNumber,
			rec.InvoiceNumber,
			rec.ProductValue.StringFixed(2),
			reversalLabel(rec.MerchandiseReversed),
			rec.FreightReversal.StringFixed(2),
			rec.PayoutAmount.StringFixed(2),
			statusLabel(orderStatusLabels, rec.OrderStatus),
			statusLabel(paymentStatusLabels, rec.PaymentStatus),
			rec.Note,
		})
	}
	table.Render()

	plural := "s"
	if len(records) == 1 {
		plural = ""
	}
	fmt.Fprintf(c.out, "%d record%s\n", len(records), plural)
}

func (c *Console) renderSummary() {
	records := c.module.Query.QueryRecords(c.filter)
	summary := c.module.Query.Summarize(records)
	fmt.Fprintf(c.out, "total: %d  collected: %d  pending: %d  payout: %s\n",
		summary.Total, summary.Collected, summary.Pending, summary.TotalPayout.StringFixed(2))
}

func statusLabel(labels map[string]string, status string) string {
	if label, ok := labels[status]; ok {
		return label
	}
	return status
}

func reversalLabel(reversed bool) string {
	if reversed {
		return "S"
	}
	return "N"
}

func writeExport(w io.Writer, records []dto.Record) error {
	return export.WriteRecords(w, records)
}

func exportFilename() string {
	return export.Filename(todayISO())
}
