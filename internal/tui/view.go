package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ledger/internal/analytics"
	"ledger/internal/core"
	"ledger/internal/session"
)

const (
	dateWidth   = 10
	sourceWidth = 28
	tagWidth    = 12
	kindWidth   = 6
	amountWidth = 12
	barWidth    = 30
)

// chromeRows is the height taken by header, table header, footer and status.
const chromeRows = 8

func (m Model) renderBrowsing() string {
	s := m.router.State()
	var b strings.Builder

	b.WriteString(m.renderHeader(s.Report()))
	b.WriteString("\n")
	b.WriteString(m.renderTable(s.Transactions(), s.Selected()))
	return b.String()
}

func (m Model) renderHeader(r analytics.Report) string {
	parts := []string{
		titleStyle.Render("Ledger"),
		"Earned " + creditStyle.Render(m.money(r.Credited)),
		"Spent " + debitStyle.Render(m.money(r.Debited)),
		"Balance " + m.signedMoney(r.Balance),
	}
	return headerStyle.Render(strings.Join(parts, "   "))
}

func (m Model) renderTable(txs []core.Transaction, selected int) string {
	if len(txs) == 0 {
		return mutedStyle.Render("  No transactions yet. Press a to add one.")
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(m.row("Date", "Source", "Tag", "Type", "Amount")))
	b.WriteString("\n")

	start, end := visibleRange(len(txs), selected, m.tableRows())
	for i := start; i < end; i++ {
		tx := txs[i]
		line := m.row(tx.Date, tx.Source, tx.Tag.String(), tx.Kind.Label(), m.money(tx.Signed()))
		if i == selected {
			b.WriteString(selectedRowStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if end-start < len(txs) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(txs))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) row(date, source, tag, kind, amount string) string {
	return fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %*s",
		dateWidth, truncate(date, dateWidth),
		sourceWidth, truncate(source, sourceWidth),
		tagWidth, truncate(tag, tagWidth),
		kindWidth, truncate(kind, kindWidth),
		amountWidth, amount)
}

func (m Model) tableRows() int {
	h := m.height
	if h <= 0 {
		h = 24
	}
	if rows := h - chromeRows; rows > 3 {
		return rows
	}
	return 3
}

// visibleRange returns the [start, end) slice of n rows to draw so that
// selected stays on screen.
func visibleRange(n, selected, rows int) (int, int) {
	if n <= rows {
		return 0, n
	}
	start := selected - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}

func (m Model) renderEditing() string {
	s := m.router.State()
	f := s.Form()
	catalog := s.Catalog()

	title := "New transaction"
	if id, ok := s.EditTarget(); ok {
		title = fmt.Sprintf("Edit transaction #%d", id)
	}

	tag := core.DefaultTag
	if catalog.Len() > 0 {
		tag = catalog.Resolve(f.TagIndex)
	}

	lines := []string{
		titleStyle.Render(title),
		"",
		m.field(f, session.FieldSource, f.Source),
		m.field(f, session.FieldAmount, f.Amount),
		m.field(f, session.FieldKind, "< "+f.Kind.Label()+" >"),
		m.field(f, session.FieldTag, "< "+tag.String()+" >"),
		m.field(f, session.FieldDate, f.Date),
	}
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) field(f session.Form, which session.Field, value string) string {
	if f.Active != which {
		return labelStyle.Render(which.String()) + " " + value
	}
	if which.IsText() {
		value += "▏"
	}
	return activeLabelStyle.Render(which.String()) + " " + value
}

func (m Model) renderReporting() string {
	r := m.router.State().Report()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Statistics"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Overview"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Transactions  %d\n", r.Count))
	b.WriteString("  Earned        " + creditStyle.Render(m.money(r.Credited)) + "\n")
	b.WriteString("  Spent         " + debitStyle.Render(m.money(r.Debited)) + "\n")
	b.WriteString("  Balance       " + m.signedMoney(r.Balance) + "\n")
	b.WriteString(fmt.Sprintf("  Savings rate  %.1f%%\n", r.SavingsRate))

	b.WriteString(sectionStyle.Render("Monthly"))
	b.WriteString("\n")
	if len(r.Monthly) == 0 {
		b.WriteString(mutedStyle.Render("  no data") + "\n")
	} else {
		b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("  %-8s  %*s  %*s  %*s", "Month", amountWidth, "Earned", amountWidth, "Spent", amountWidth, "Net")))
		b.WriteString("\n")
		for _, mb := range r.Monthly {
			b.WriteString(fmt.Sprintf("  %-8s  %*s  %*s  %*s\n", mb.Month,
				amountWidth, m.money(mb.Credited),
				amountWidth, m.money(mb.Debited),
				amountWidth, m.money(mb.Net())))
		}
	}

	b.WriteString(sectionStyle.Render("Top categories"))
	b.WriteString("\n")
	if len(r.Shares) == 0 {
		b.WriteString(mutedStyle.Render("  no spending yet") + "\n")
	}
	maxSpent := 0.0
	if len(r.TopTags) > 0 {
		maxSpent = r.TopTags[0].Debited
	}
	for _, sh := range r.Shares {
		b.WriteString(fmt.Sprintf("  %-*s %*s %5.1f%% ", tagWidth, truncate(sh.Tag.String(), tagWidth), amountWidth, m.money(sh.Debited), sh.Percent))
		b.WriteString(barStyle.Render(bar(sh.Debited, maxSpent, barWidth)))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Notable"))
	b.WriteString("\n")
	b.WriteString("  Largest   " + m.describe(r.Largest) + "\n")
	b.WriteString("  Smallest  " + m.describe(r.Smallest) + "\n")
	return b.String()
}

func (m Model) describe(tx *core.Transaction) string {
	if tx == nil {
		return mutedStyle.Render("none")
	}
	return fmt.Sprintf("%s %s (%s, %s)", tx.Source, m.money(tx.Amount), tx.Tag, tx.Date)
}

func (m Model) money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-%s%.2f", m.currency, -v)
	}
	return fmt.Sprintf("%s%.2f", m.currency, v)
}

func (m Model) signedMoney(v float64) string {
	if v < 0 {
		return debitStyle.Render(m.money(v))
	}
	return creditStyle.Render(m.money(v))
}

// bar draws v as a share of top using at most width cells.
func bar(v, top float64, width int) string {
	if top <= 0 || v <= 0 {
		return ""
	}
	n := int(math.Round(v / top * float64(width)))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 1 || len(r) <= 1 {
		return string(r[:1])
	}
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
