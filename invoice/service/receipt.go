package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/gigfolio/console-api/invoice/domain"
	"github.com/gigfolio/console-api/logger"
)

// ReceiptService renders payment receipts. Receipts are laid out as HTML
// and printed to PDF through a headless browser so the styling matches
// the receipts shown in the web app.
type ReceiptService struct {
	loggerProvider logger.Provider
	policy         ReceiptPolicy
}

func NewReceiptService(log logger.Provider) *ReceiptService {
	return &ReceiptService{
		loggerProvider: log,
		policy:         ReceiptPolicy{ForceStatus: domain.StatusPaid},
	}
}

type receiptData struct {
	Invoice    *domain.Invoice
	Subtotal   string
	AmountPaid string
	BalanceDue string
}

func (s *ReceiptService) RenderReceipt(ctx context.Context, invoice *domain.Invoice) ([]byte, error) {
	l := s.loggerProvider(ctx)

	receipt := s.policy.Apply(invoice)

	html, err := renderReceiptHTML(receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRenderFailed, err)
	}

	pdf, err := s.printToPDF(ctx, html)
	if err != nil {
		l.Errorf("receipt %s: print failed: %s", invoice.ID, err)
		return nil, fmt.Errorf("%w: %s", domain.ErrRenderFailed, err)
	}

	return pdf, nil
}

// printToPDF spins up a browser tab for the request and tears it down
// on every exit path. Teardown failures are logged but do not fail the
// render, the PDF bytes are already in hand by then.
func (s *ReceiptService) printToPDF(ctx context.Context, html string) ([]byte, error) {
	l := s.loggerProvider(ctx)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte

	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}

			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}

			pdf = buf

			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	if err := chromedp.Cancel(browserCtx); err != nil {
		l.Warningf("browser teardown: %s", err)
	}

	return pdf, nil
}

func renderReceiptHTML(invoice *domain.Invoice) (string, error) {
	var buf bytes.Buffer

	data := receiptData{
		Invoice:    invoice,
		Subtotal:   formatMoney(invoice.Subtotal()),
		AmountPaid: formatMoney(invoice.AmountPaid()),
		BalanceDue: formatMoney(invoice.BalanceDue()),
	}

	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": formatMoney,
	"qty":   formatQuantity,
	"amount": func(item domain.LineItem) string {
		return formatMoney(item.Quantity * item.UnitPrice)
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #111827; margin: 40px; }
  .header { display: flex; justify-content: space-between; align-items: baseline; }
  .badge { color: #059669; border: 1px solid #059669; border-radius: 4px;
           padding: 2px 10px; font-size: 12px; font-weight: bold; text-transform: uppercase; }
  .muted { color: #6b7280; font-size: 12px; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  th { text-align: left; font-size: 11px; text-transform: uppercase; color: #6b7280;
       border-bottom: 1px solid #e5e7eb; padding: 6px 4px; }
  td { padding: 8px 4px; font-size: 13px; border-bottom: 1px solid #f3f4f6; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 16px; margin-left: auto; width: 240px; font-size: 13px; }
  .totals div { display: flex; justify-content: space-between; padding: 3px 0; }
  .totals .grand { font-weight: bold; border-top: 1px solid #111827; padding-top: 6px; }
</style>
</head>
<body>
  <div class="header">
    <div>
      <h2>{{.Invoice.Business.Name}}</h2>
      <div class="muted">{{.Invoice.Business.Email}}</div>
    </div>
    <div>
      <span class="badge">{{.Invoice.Status}}</span>
      <div class="muted">Receipt for invoice {{.Invoice.Number}}</div>
    </div>
  </div>

  <p class="muted">Billed to {{.Invoice.Customer.Name}}{{if .Invoice.Customer.Email}} ({{.Invoice.Customer.Email}}){{end}}</p>

  <table>
    <thead>
      <tr><th>Description</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Amount</th></tr>
    </thead>
    <tbody>
      {{range .Invoice.Items}}
      <tr>
        <td>{{.Description}}</td>
        <td class="num">{{qty .Quantity}}</td>
        <td class="num">{{money .UnitPrice}}</td>
        <td class="num">{{amount .}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div class="totals">
    <div><span>Subtotal</span><span>{{.Subtotal}}</span></div>
    <div><span>Paid</span><span>{{.AmountPaid}}</span></div>
    <div class="grand"><span>Balance due</span><span>{{.BalanceDue}}</span></div>
  </div>

  {{if .Invoice.Notes}}<p class="muted">{{.Invoice.Notes}}</p>{{end}}
</body>
</html>`))
