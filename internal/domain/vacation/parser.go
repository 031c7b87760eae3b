package vacation

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotInformed is the sentinel stored when an employee has no vacation month.
const NotInformed = "Não informado"

// Months maps the uppercase Portuguese month names to their calendar number.
var Months = map[string]time.Month{
	"JANEIRO":   time.January,
	"FEVEREIRO": time.February,
	"MARÇO":     time.March,
	"ABRIL":     time.April,
	"MAIO":      time.May,
	"JUNHO":     time.June,
	"JULHO":     time.July,
	"AGOSTO":    time.August,
	"SETEMBRO":  time.September,
	"OUTUBRO":   time.October,
	"NOVEMBRO":  time.November,
	"DEZEMBRO":  time.December,
}

// MonthNames lists the month names in calendar order.
var MonthNames = []string{
	"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL", "MAIO", "JUNHO",
	"JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

// Date is a parsed "MONTH/YEAR" vacation value.
type Date struct {
	Month time.Month
	Year  int
}

// FirstDay returns midnight of the first day of the month in loc.
func (d Date) FirstDay(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return MonthNames[d.Month-1] + "/" + strconv.Itoa(d.Year)
}

// Parse reads a "MONTH_NAME/YEAR" string such as "JULHO/2025".
// It reports false for the empty string, the NotInformed sentinel,
// unknown month names and malformed years.
func Parse(raw string) (Date, bool) {
	if raw == "" || raw == NotInformed {
		return Date{}, false
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return Date{}, false
	}

	// Casers keep state, so one is built per call. The month token is matched as written.
	month, ok := Months[cases.Upper(language.BrazilianPortuguese).String(parts[0])]
	if !ok {
		return Date{}, false
	}

	year, err := strconv.Atoi(strings.TrimLeft(parts[1], " \t"))
	if err != nil || year <= 0 {
		return Date{}, false
	}

	return Date{Month: month, Year: year}, true
}

// Format builds the stored representation for a month and year.
func Format(month time.Month, year int) string {
	return Date{Month: month, Year: year}.String()
}
