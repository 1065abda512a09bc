package invoiceparse

import (
	"regexp"
	"strings"

	"github.com/pdftodata/invoice-extraction/dto"
)

// a stray column fragment, e.g. a quantity that wrapped onto its own line
var bareNumberRe = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)

// a lone parenthesized amount, printed by some layouts for negative totals
var parenAmountRe = regexp.MustCompile(`^\(\s*-?\s*[0-9,]+\.\d{2}\s*\)$`)

// ParseLineItems decodes the located table block into line items. Rules are
// tried in priority order and the first full match decodes the row; lines
// matching no rule are skipped with a warning. Description text that wrapped
// onto following physical lines is reattached to the matched item. Duplicate
// rows keyed by (line number, product name, amount) keep only their first
// occurrence.
func ParseLineItems(block string, rs *RuleSet, diag *Diagnostics) []dto.LineItem {
	items := []dto.LineItem{}
	if block == "" {
		return items
	}

	lines := strings.Split(block, "\n")
	seen := make(map[string]bool)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		fields := strings.Fields(line)
		if !isRowStart(fields) {
			continue
		}

		item, ok := decodeRow(strings.Join(fields, " "), rs)
		if !ok {
			diag.Warnf("no row rule matched line: %s", line)
			continue
		}

		// absorb wrapped description lines until the next row or a
		// section terminator
		var wrapped []string
		j := i + 1
		for ; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || bareNumberRe.MatchString(next) {
				continue
			}
			if isRowStart(strings.Fields(next)) || isContinuationStop(next, rs) {
				break
			}
			wrapped = append(wrapped, next)
		}
		i = j - 1

		if len(wrapped) > 0 {
			if item.Description != "" {
				wrapped = append([]string{item.Description}, wrapped...)
			}
			item.Description = strings.Join(wrapped, " | ")
		}

		key := item.LineNumber + "|" + item.ProductName + "|" + item.Amount
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}

	return items
}

// isRowStart reports whether a tokenized line can open a new item row:
// at least 3 tokens and a decimal integer row index up front.
func isRowStart(fields []string) bool {
	if len(fields) < 3 {
		return false
	}
	for _, r := range fields[0] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isContinuationStop(line string, rs *RuleSet) bool {
	if parenAmountRe.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, stop := range rs.ContinuationStops {
		if strings.Contains(lower, stop) {
			return true
		}
	}
	return false
}

func decodeRow(line string, rs *RuleSet) (dto.LineItem, bool) {
	for _, rule := range rs.RowRules {
		m := rule.Pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		g := groupMap(rule.Pattern, m)

		name, desc := splitNameDescription(g["desc"])
		item := dto.LineItem{
			LineNumber:  g["number"],
			ProductName: name,
			Description: desc,
			HSNSAC:      g["hsn"],
			Size:        g["size"],
			Quantity:    g["qty"],
			Amount:      cleanAmount(g["amount"]),
		}
		if g["rate"] != "" {
			item.Rate = cleanAmount(g["rate"])
		}
		if g["wsp"] != "" {
			item.WSP = cleanAmount(g["wsp"])
		}
		if g["discount"] != "" {
			item.Discount = g["discount"] + "%"
		}
		return item, true
	}
	return dto.LineItem{}, false
}

func groupMap(re *regexp.Regexp, match []string) map[string]string {
	g := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(match) {
			g[name] = match[i]
		}
	}
	return g
}

// splitNameDescription separates a parenthesized suffix, e.g.
// "Steel Bracket (zinc plated, 50mm)" -> name "Steel Bracket",
// description "(zinc plated, 50mm)". Without one, the whole text is the name.
func splitNameDescription(desc string) (string, string) {
	desc = strings.TrimSpace(desc)
	if idx := strings.Index(desc, "("); idx > 0 {
		return strings.TrimSpace(desc[:idx]), strings.TrimSpace(desc[idx:])
	}
	return desc, ""
}
