package book

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contact"
)

// table renders the fixed-width No./Name/Phone/Birthday listing.
type table struct {
	rows strings.Builder
}

func newTable() *table {
	return &table{}
}

func (t *table) addRow(no int, row contact.Row) {
	t.rows.WriteString(formatCells(
		center(strconv.Itoa(no), config.ColWidthNo),
		left(row.Name, config.ColWidthName),
		center(row.Phones, config.ColWidthPhone),
		center(row.Birthday, config.ColWidthBirthday),
	))
}

func (t *table) String() string {
	rule := strings.Repeat(config.TableRule, config.TableWidth) + "\n"
	var sb strings.Builder
	sb.WriteString(rule)
	sb.WriteString(formatCells(
		center(config.ColNo, config.ColWidthNo),
		left(config.ColName, config.ColWidthName),
		center(config.ColPhone, config.ColWidthPhone),
		center(config.ColBirthday, config.ColWidthBirthday),
	))
	sb.WriteString(rule)
	sb.WriteString(t.rows.String())
	sb.WriteString(rule)
	return sb.String()
}

// searchTable renders search hits without the No. column.
type searchTable struct {
	pattern string
	count   int
	rows    strings.Builder
}

func newSearchTable(pattern string) *searchTable {
	return &searchTable{pattern: pattern}
}

func (t *searchTable) addRow(row contact.Row) {
	t.count++
	t.rows.WriteString(formatCells(
		left(row.Name, config.ColWidthName),
		center(row.Phones, config.ColWidthPhone),
		center(row.Birthday, config.ColWidthBirthday),
	))
}

func (t *searchTable) empty() bool {
	return t.count == 0
}

func (t *searchTable) String() string {
	rule := strings.Repeat(config.TableRule, config.SearchTableWidth) + "\n"
	var sb strings.Builder
	sb.WriteString("\n")
	fmt.Fprintf(&sb, config.FormatSearchHead, t.pattern)
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString(formatCells(
		left(config.ColName, config.ColWidthName),
		center(config.ColPhone, config.ColWidthPhone),
		center(config.ColBirthday, config.ColWidthBirthday),
	))
	sb.WriteString(rule)
	sb.WriteString(t.rows.String())
	sb.WriteString(rule)
	return sb.String()
}

func formatCells(cells ...string) string {
	return "|" + strings.Join(cells, "|") + "|\n"
}

// left pads s on the right up to width runes.
func left(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// center pads s on both sides, putting the odd space on the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := width - n
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}
