package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/Mr-Dark-debug/chainview/internal/chain"
)

// ────────────────────────────────────────────────────────────
// Column layout
// ────────────────────────────────────────────────────────────

type columnKind int

const (
	colSymbol columnKind = iota
	colBid
	colAsk
	colSize
	colVolume
	colGreek
	colStrike
)

type column struct {
	title string
	width int
	kind  columnKind
}

var (
	sideColumns = []column{
		{"Sym", 10, colSymbol},
		{"Bid", 8, colBid},
		{"Ask", 8, colAsk},
		{"Bid Size", 8, colSize},
		{"Ask Size", 8, colSize},
		{"Volume", 8, colVolume},
	}
	greekColumns = []column{
		{"Delta", 8, colGreek},
		{"Gamma", 8, colGreek},
		{"Vega", 8, colGreek},
	}
	strikeColumn = column{"Strike", 8, colStrike}
)

// optionColumns lists the table columns, calls on the left and puts on
// the right of the strike. Greek columns appear on both sides only
// when showGreeks is set.
func optionColumns(showGreeks bool) []column {
	cols := make([]column, 0, 19)
	side := func(prefix string) {
		for i, c := range sideColumns {
			if i == 0 {
				c.title = prefix + " " + c.title
			}
			cols = append(cols, c)
		}
		if showGreeks {
			cols = append(cols, greekColumns...)
		}
	}
	side("Call")
	cols = append(cols, strikeColumn)
	side("Put")
	return cols
}

func columnTitles(cols []column) []string {
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	return titles
}

// optionRows formats one row per strike in the order of the file.
// Prices use two decimals and greeks four.
func optionRows(exp chain.Expiration, showGreeks bool) [][]string {
	rows := make([][]string, 0, len(exp.Options))
	for _, p := range exp.Options {
		row := quoteCells(p.Call, showGreeks)
		row = append(row, price(p.Strike))
		row = append(row, quoteCells(p.Put, showGreeks)...)
		rows = append(rows, row)
	}
	return rows
}

func quoteCells(q chain.Quote, showGreeks bool) []string {
	cells := []string{
		q.Symbol,
		price(q.Bid),
		price(q.Ask),
		strconv.FormatInt(q.BidSize, 10),
		strconv.FormatInt(q.AskSize, 10),
		strconv.FormatInt(q.Volume, 10),
	}
	if showGreeks {
		cells = append(cells,
			greek(q.Greeks.Delta),
			greek(q.Greeks.Gamma),
			greek(q.Greeks.Vega),
		)
	}
	return cells
}

func price(d decimal.Decimal) string { return d.StringFixed(2) }
func greek(d decimal.Decimal) string { return d.StringFixed(4) }

// ────────────────────────────────────────────────────────────
// Rendering
// ────────────────────────────────────────────────────────────

// renderOptionsTable draws the strikes of exp. The result is exactly
// len(exp.Options)+2 lines: header, separator, one line per strike.
func renderOptionsTable(m *Model, exp chain.Expiration) string {
	showGreeks := m.state.ShowGreeks
	cols := optionColumns(showGreeks)
	rows := optionRows(exp, showGreeks)

	for _, row := range rows {
		for i := range row {
			row[i] = truncate(row[i], cols[i].width)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(true).
		BorderHeader(true).
		Headers(columnTitles(cols)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			c := cols[col]
			if row == table.HeaderRow {
				return colHeaderStyle.Width(c.width)
			}
			var st lipgloss.Style
			if c.kind == colStrike && row >= 0 && row < len(exp.Options) {
				st = strikeStyle(exp.Options[row].Strike, m.chain.LastPrice)
			} else {
				st = cellStyle(c.kind)
			}
			return st.Width(c.width)
		})

	return t.Render()
}

// strikeStyle colors a strike by where it sits against the last price:
// green below, red above, yellow at the money.
func strikeStyle(strike, last decimal.Decimal) lipgloss.Style {
	switch chain.Moneyness(strike, last) {
	case -1:
		return strikeBelowStyle
	case 1:
		return strikeAboveStyle
	default:
		return strikeAtStyle
	}
}

func cellStyle(k columnKind) lipgloss.Style {
	switch k {
	case colSymbol:
		return colSymbolStyle
	case colBid:
		return colBidStyle
	case colAsk:
		return colAskStyle
	case colVolume:
		return colVolumeStyle
	case colGreek:
		return colGreekStyle
	case colStrike:
		return colStrikeStyle
	default:
		return tableCellStyle
	}
}
