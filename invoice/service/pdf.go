package service

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gigfolio/console-api/invoice/domain"
	"github.com/gigfolio/console-api/logger"
)

var (
	colorPrimary = &props.Color{Red: 17, Green: 24, Blue: 39}
	colorGray    = &props.Color{Red: 107, Green: 114, Blue: 128}
)

// PDFService renders invoices as A4 PDF documents.
type PDFService struct {
	loggerProvider logger.Provider
}

func NewPDFService(log logger.Provider) *PDFService {
	return &PDFService{
		loggerProvider: log,
	}
}

func (s *PDFService) RenderInvoice(_ context.Context, invoice *domain.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())

	for _, r := range itemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, r := range totalsRows(invoice) {
		m.AddRows(r)
	}

	if invoice.Notes != "" {
		m.AddRows(notesRow(invoice.Notes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRenderFailed, err)
	}

	return doc.GetBytes(), nil
}

// headerRow: business name on the left, invoice number and dates on the right.
func headerRow(invoice *domain.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(invoice.Business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Business.Email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Issued: %s   Due: %s",
				nonEmpty(invoice.IssueDate, "-"),
				nonEmpty(invoice.DueDate, "-"),
			), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func partiesRow(invoice *domain.Invoice) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Business.Name, props.Text{Size: 9, Top: 6}),
			text.New(invoice.Business.Address, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Customer.Name, props.Text{Size: 9, Top: 6}),
			text.New(fmt.Sprintf("%s   %s",
				nonEmpty(invoice.Customer.Email, ""),
				nonEmpty(invoice.Customer.Address, ""),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}

	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 2, align.Center),
		h("Unit price", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

func itemRows(items []domain.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))

	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				item.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatQuantity(item.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(item.Quantity*item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}

	return result
}

// totalsRows stacks subtotal, paid and balance due on the right edge,
// the balance line carries the emphasis.
func totalsRows(invoice *domain.Invoice) []core.Row {
	entry := func(label string, amount float64, emphasis bool) core.Row {
		valueProps := props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1}
		labelProps := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 2}

		if emphasis {
			valueProps.Size = 10
			valueProps.Style = fontstyle.Bold
			valueProps.Color = colorPrimary
			labelProps.Size = 10
			labelProps.Color = colorPrimary
		}

		return row.New(6).Add(
			col.New(8).Add(text.New(label, labelProps)),
			col.New(4).Add(text.New(formatMoney(amount), valueProps)),
		)
	}

	return []core.Row{
		entry("Subtotal", invoice.Subtotal(), false),
		entry("Paid", invoice.AmountPaid(), false),
		entry("Balance due", invoice.BalanceDue(), true),
	}
}

func notesRow(notes string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("NOTES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
			text.New(notes, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}

	return fallback
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func formatQuantity(quantity float64) string {
	if quantity == float64(int64(quantity)) {
		return fmt.Sprintf("%d", int64(quantity))
	}

	return fmt.Sprintf("%.2f", quantity)
}
