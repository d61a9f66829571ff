// Package analytics computes derived views over state-cache snapshots.
// Everything here is pure and synchronous; nothing reads or writes storage.
package analytics

import (
	"strings"
	"time"

	"fieldmate/internal/model"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// MonthToDateValue sums quantity x price over sales whose date falls inside
// the calendar month of ref, inclusive of both month boundaries.
func MonthToDateValue(sales []model.Sale, ref time.Time) decimal.Decimal {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	total := decimal.Zero
	for _, s := range sales {
		d, err := time.ParseInLocation(dateLayout, s.Date, time.UTC)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		total = total.Add(s.Value())
	}
	return total
}

// GroupByDay partitions sales by the literal date string, not a parsed date,
// so timezone drift can never split a day.
func GroupByDay(sales []model.Sale) map[string][]model.Sale {
	groups := make(map[string][]model.Sale)
	for _, s := range sales {
		groups[s.Date] = append(groups[s.Date], s)
	}
	return groups
}

// SalesOn returns the sales whose date string equals date.
func SalesOn(sales []model.Sale, date string) []model.Sale {
	var out []model.Sale
	for _, s := range sales {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

// DayValue sums quantity x price over the sales of one date.
func DayValue(sales []model.Sale, date string) decimal.Decimal {
	total := decimal.Zero
	for _, s := range SalesOn(sales, date) {
		total = total.Add(s.Value())
	}
	return total
}

// DayQuantity sums quantities over the sales of one date.
func DayQuantity(sales []model.Sale, date string) int {
	qty := 0
	for _, s := range SalesOn(sales, date) {
		qty += s.Quantity
	}
	return qty
}

// FilterByRange keeps sales with from <= date <= to. Lexicographic
// comparison is exact for YYYY-MM-DD strings.
func FilterByRange(sales []model.Sale, from, to string) []model.Sale {
	var out []model.Sale
	for _, s := range sales {
		if s.Date >= from && s.Date <= to {
			out = append(out, s)
		}
	}
	return out
}

// ProductFamily maps a display name to the substrings that classify a sale
// into the family. Adding a family is a data change.
type ProductFamily struct {
	Name     string
	Keywords []string
}

// FamilyCount is one per-family quantity subtotal.
type FamilyCount struct {
	Name     string
	Quantity int
}

// FamilyQuantity sums quantities of sales whose product name contains any of
// the keywords, case-insensitively.
func FamilyQuantity(sales []model.Sale, keywords []string) int {
	qty := 0
	for _, s := range sales {
		name := strings.ToLower(s.ProductName)
		for _, k := range keywords {
			if strings.Contains(name, strings.ToLower(k)) {
				qty += s.Quantity
				break
			}
		}
	}
	return qty
}

// FamilyQuantities computes the subtotal for every family. A sale matching
// several families counts once per matching family.
func FamilyQuantities(sales []model.Sale, families []ProductFamily) []FamilyCount {
	counts := make([]FamilyCount, 0, len(families))
	for _, f := range families {
		counts = append(counts, FamilyCount{Name: f.Name, Quantity: FamilyQuantity(sales, f.Keywords)})
	}
	return counts
}

// WeekWindow returns the ISO week around t: Monday 00:00 through Sunday
// 00:00 of the same week.
func WeekWindow(t time.Time) (start, end time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}
