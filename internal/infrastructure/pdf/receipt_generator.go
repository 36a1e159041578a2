// Package pdf renders the printable customer receipt for an order.
//
// Layout:
//
//	┌───────────────────────────────┐
//	│  HEADER: store name            │
//	│  invoice number / date / kasir │
//	│  ───────────────────────────  │
//	│  TABLE: Qty | Item | Harga |  │
//	│         Subtotal              │
//	│  ───────────────────────────  │
//	│  TOTALS: subtotal / diskon /  │
//	│          TOTAL                │
//	│  PAYMENTS: method + amount    │
//	└───────────────────────────────┘
package pdf

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
	"github.com/shopspring/decimal"

	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
	"github.com/lintangrafi/POS-Kygoo/pkg/money"
)

var (
	colorDark = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implements usecase.ReceiptGenerator with Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

// NewMarotoReceiptGenerator builds the generator.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{storeName: storeName}
}

// GenerateReceipt renders the receipt and returns its bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(_ context.Context, data *usecase.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Struk "+data.Order.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(data) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.3}))
	m.AddRows(totalsRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(paymentRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReceiptGenerator) headerRows(data *usecase.ReceiptData) []core.Row {
	o := data.Order
	return []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New(g.storeName, props.Text{
					Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorDark,
				}),
			),
		),
		row.New(12).Add(
			col.New(7).Add(
				text.New(o.InvoiceNumber, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
				text.New("Kasir: "+data.CashierName, props.Text{Size: 8, Top: 7, Color: colorGray}),
			),
			col.New(5).Add(
				text.New(o.CreatedAt.Format("02/01/2006 15:04"), props.Text{
					Size: 9, Align: align.Right, Top: 1, Color: colorGray,
				}),
			),
		),
	}
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8}
	return row.New(6).Add(
		col.New(1).Add(text.New("Qty", header)),
		col.New(5).Add(text.New("Item", header)),
		col.New(3).Add(text.New("Harga", propsRight(header))),
		col.New(3).Add(text.New("Subtotal", propsRight(header))),
	)
}

func itemRows(data *usecase.ReceiptData) []core.Row {
	cell := props.Text{Size: 8}
	rows := make([]core.Row, 0, len(data.Items))
	for _, it := range data.Items {
		lineTotal := it.PriceAtSale.Mul(decimal.NewFromInt(int64(it.Quantity)))
		rows = append(rows, row.New(5).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), cell)),
			col.New(5).Add(text.New(it.ProductName, cell)),
			col.New(3).Add(text.New(money.FormatRupiah(it.PriceAtSale), propsRight(cell))),
			col.New(3).Add(text.New(money.FormatRupiah(lineTotal), propsRight(cell))),
		))
	}
	return rows
}

func totalsRows(data *usecase.ReceiptData) []core.Row {
	o := data.Order
	rows := []core.Row{
		labelAmountRow("Subtotal", money.FormatRupiah(o.SubtotalAmount), false),
	}
	if o.DiscountAmount.IsPositive() {
		rows = append(rows, labelAmountRow("Diskon", "-"+money.FormatRupiah(o.DiscountAmount), false))
	}
	rows = append(rows, labelAmountRow("TOTAL", money.FormatRupiah(o.TotalAmount), true))
	return rows
}

func paymentRows(data *usecase.ReceiptData) []core.Row {
	rows := make([]core.Row, 0, len(data.Payments))
	for _, p := range data.Payments {
		rows = append(rows, labelAmountRow(p.Method, money.FormatRupiah(p.Amount), false))
	}
	return rows
}

func labelAmountRow(label, amount string, bold bool) core.Row {
	style := props.Text{Size: 9}
	if bold {
		style = props.Text{Size: 10, Style: fontstyle.Bold}
	}
	return row.New(5).Add(
		col.New(8).Add(text.New(label, style)),
		col.New(4).Add(text.New(amount, propsRight(style))),
	)
}

func propsRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}
