package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coletas/internal/domain"
	"coletas/internal/dto"
	apperrors "coletas/internal/errors"
	"coletas/internal/orders"
)

// Console is the interactive surface over the order-tracking core. It owns
// the active filter and the selection set; every command goes through the
// module's use cases, never at the records directly.
type Console struct {
	in        io.Reader
	out       io.Writer
	module    *orders.Module
	selection *orders.Selection
	filter    domain.RecordFilter
	exportDir string
	logger    *zap.Logger
}

func New(in io.Reader, out io.Writer, module *orders.Module, exportDir string, logger *zap.Logger) *Console {
	return &Console{
		in:        in,
		out:       out,
		module:    module,
		selection: orders.NewSelection(),
		filter: domain.RecordFilter{
			DateFrom: firstOfMonthISO(),
			DateTo:   todayISO(),
			Store:    domain.AllStores,
		},
		exportDir: exportDir,
		logger:    logger,
	}
}

// Run reads commands until EOF, "quit" or context cancellation.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, `coletas - order tracking. Type "help" for commands.`)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		fmt.Fprint(c.out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if c.dispatch(line) {
				return nil
			}
		}
	}
}

// dispatch runs one command line and reports whether the loop should stop.
func (c *Console) dispatch(line string) bool {
	args := splitArgs(line)
	if len(args) == 0 {
		return false
	}

	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID), zap.String("command", args[0]))

	switch args[0] {
	case "quit", "exit":
		return true
	case "help":
		c.printHelp()
	case "add":
		c.cmdAdd(args[1:], logger)
	case "list":
		c.renderView()
	case "filter":
		c.cmdFilter(args[1:])
	case "search":
		c.cmdSearch(args[1:])
	case "collect":
		c.cmdCollect(args[1:], logger)
	case "cancel":
		c.cmdCancel(args[1:], logger)
	case "pay":
		c.cmdPay(args[1:], logger)
	case "note":
		c.cmdNote(args[1:], logger)
	case "select":
		c.cmdSelect(args[1:], true)
	case "unselect":
		c.cmdSelect(args[1:], false)
	case "selected":
		fmt.Fprintf(c.out, "selected: %v\n", c.selection.IDs())
	case "payselected":
		updated := c.module.Lifecycle.MarkSelectedPaid(c.selection.IDs())
		c.selection.Clear()
		fmt.Fprintf(c.out, "%d record(s) marked as paid\n", updated)
		c.renderView()
	case "closeout":
		c.cmdCloseOut(args[1:], logger)
	case "export":
		c.cmdExport(logger)
	case "summary":
		c.renderSummary()
	default:
		fmt.Fprintf(c.out, "unknown command %q, type \"help\"\n", args[0])
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `commands:
  add <date> <store> <orderNumber> [invoice] [productValue] [freightReversal] [note...]
  list                              show the filtered view
  filter <from|-> <to|-> [store|-]  set date bounds and store ("-" clears, store "todas" = all)
  search <text|->                   substring search over order/invoice number
  collect <id>                      mark collected, full base freight
  cancel <id> returned|kept         cancel; "kept" debits product value + freight
  pay <id>                          mark paid
  note <id> <text...>               replace the note
  select <id> / unselect <id>       manage the bulk selection
  selected / payselected            show selection / mark all selected paid
  closeout [date]                   cancel undelivered orders of the day (no undo)
  export                            write the filtered view as CSV
  summary                           totals over the filtered view
  quit
`)
}

func (c *Console) cmdAdd(args []string, logger *zap.Logger) {
	if len(args) < 3 {
		fmt.Fprintln(c.out, "usage: add <date> <store> <orderNumber> [invoice] [productValue] [freightReversal] [note...]")
		return
	}
	in := dto.CreateRecordInput{
		Date:        args[0],
		Store:       args[1],
		OrderNumber: args[2],
	}
	if len(args) > 3 {
		in.InvoiceNumber = args[3]
	}
	if len(args) > 4 {
		in.ProductValue = args[4]
	}
	if len(args) > 5 {
		in.FreightReversal = args[5]
	}
	if len(args) > 6 {
		in.Note = strings.Join(args[6:], " ")
	}

	rec, err := c.module.Create.CreateRecord(in)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			for _, d := range ve.Details {
				fmt.Fprintf(c.out, "invalid: %s - %s\n", d.Field, d.Message)
			}
			return
		}
		logger.Error("create failed", zap.Error(err))
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "record %d saved\n", rec.ID)
	c.renderView()
}

func (c *Console) cmdFilter(args []string) {
	if len(args) < 2 {
		fmt.Fprintf(c.out, "filter: %s .. %s store=%s search=%q\n",
			orDash(c.filter.DateFrom), orDash(c.filter.DateTo), orDash(c.filter.Store), c.filter.Search)
		return
	}
	c.filter.DateFrom = dashToEmpty(args[0])
	c.filter.DateTo = dashToEmpty(args[1])
	if len(args) > 2 {
		c.filter.Store = dashToEmpty(args[2])
	}
	c.renderView()
}

func (c *Console) cmdSearch(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "usage: search <text|->")
		return
	}
	c.filter.Search = dashToEmpty(strings.Join(args, " "))
	c.renderView()
}

func (c *Console) cmdCollect(args []string, logger *zap.Logger) {
	id, ok := c.parseID(args)
	if !ok {
		return
	}
	if _, err := c.module.Lifecycle.Collect(id); err != nil {
		c.reportActionError(err, logger)
		return
	}
	fmt.Fprintf(c.out, "record %d collected: base freight applies\n", id)
	c.renderView()
}

func (c *Console) cmdCancel(args []string, logger *zap.Logger) {
	if len(args) < 2 || (args[1] != "returned" && args[1] != "kept") {
		fmt.Fprintln(c.out, "usage: cancel <id> returned|kept  (kept = merchandise did not come back)")
		return
	}
	id, ok := c.parseID(args[:1])
	if !ok {
		return
	}
	merchandiseReturned := args[1] == "returned"
	if _, err := c.module.Lifecycle.Cancel(id, merchandiseReturned); err != nil {
		c.reportActionError(err, logger)
		return
	}
	if merchandiseReturned {
		fmt.Fprintf(c.out, "record %d cancelled: merchandise returned, no freight owed\n", id)
	} else {
		fmt.Fprintf(c.out, "record %d cancelled: product value + freight debited\n", id)
	}
	c.renderView()
}

func (c *Console) cmdPay(args []string, logger *zap.Logger) {
	id, ok := c.parseID(args)
	if !ok {
		return
	}
	if _, err := c.module.Lifecycle.MarkPaid(id); err != nil {
		c.reportActionError(err, logger)
		return
	}
	fmt.Fprintf(c.out, "record %d marked as paid\n", id)
	c.renderView()
}

func (c *Console) cmdNote(args []string, logger *zap.Logger) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "usage: note <id> <text...>")
		return
	}
	id, ok := c.parseID(args[:1])
	if !ok {
		return
	}
	note := strings.Join(args[1:], " ")
	patch := domain.RecordPatch{Note: &note}
	if _, err := c.module.Update.UpdateRecord(id, patch); err != nil {
		c.reportActionError(err, logger)
		return
	}
	fmt.Fprintf(c.out, "record %d note updated\n", id)
}

func (c *Console) cmdSelect(args []string, add bool) {
	id, ok := c.parseID(args)
	if !ok {
		return
	}
	if add {
		c.selection.Add(id)
	} else {
		c.selection.Remove(id)
	}
	fmt.Fprintf(c.out, "selected: %v\n", c.selection.IDs())
}

func (c *Console) cmdCloseOut(args []string, logger *zap.Logger) {
	date := todayISO()
	if len(args) > 0 {
		date = args[0]
	}
	changed := c.module.Lifecycle.CloseOutDay(date)
	fmt.Fprintf(c.out, "close-out %s: %d undelivered record(s) cancelled\n", date, changed)
	logger.Info("close-out executed", zap.String("date", date), zap.Int("changed", changed))
	c.renderView()
}

func (c *Console) cmdExport(logger *zap.Logger) {
	records := c.module.Query.QueryRecords(c.filter)
	path := filepath.Join(c.exportDir, exportFilename())

	f, err := os.Create(path)
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	defer f.Close()

	if err := writeExport(f, records); err != nil {
		logger.Error("export failed", zap.Error(err))
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "%d record(s) exported to %s\n", len(records), path)
	logger.Info("view exported", zap.String("path", path), zap.Int("records", len(records)))
}

func (c *Console) parseID(args []string) (uint, bool) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "missing record id")
		return 0, false
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || id == 0 {
		fmt.Fprintf(c.out, "invalid record id %q\n", args[0])
		return 0, false
	}
	return uint(id), true
}

func (c *Console) reportActionError(err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		fmt.Fprintf(c.out, "not found: %s\n", nfe.Message)
		return
	}
	logger.Error("action failed", zap.Error(err))
	fmt.Fprintf(c.out, "error: %v\n", err)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dashToEmpty(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func todayISO() string {
	return time.Now().Format("2006-01-02")
}

func firstOfMonthISO() string {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
}
