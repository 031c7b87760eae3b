package export

import (
	"strings"
	"time"

	"github.com/wmoldes/roster-backend/internal/domain/employee"
)

// Header holds the column titles shared by every export format.
var Header = []string{"Nome", "DRT", "Função", "Turno", "Turma", "Férias", "Telefone", "Admissão"}

// Row returns the column values of e in Header order.
func Row(e employee.Employee) []string {
	return []string{
		e.Name,
		e.RegistrationID,
		string(e.Role),
		string(e.Shift),
		string(e.Team),
		e.Vacation,
		e.Phone,
		e.HireDate,
	}
}

// CSV renders the roster in the spreadsheet layout the operations team imports.
// Every value except the registration id is wrapped in double quotes without
// escaping, rows are separated by "\n" and there is no trailing newline.
func CSV(employees []employee.Employee) string {
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))

	for _, e := range employees {
		b.WriteByte('\n')
		for i, v := range Row(e) {
			if i > 0 {
				b.WriteByte(',')
			}
			if i == 1 {
				b.WriteString(v)
				continue
			}
			b.WriteByte('"')
			b.WriteString(v)
			b.WriteByte('"')
		}
	}
	return b.String()
}

// FileName returns the download name for an export generated at now, using the UTC date.
func FileName(now time.Time, format Format) string {
	return "funcionarios_wmoldes_" + now.UTC().Format("2006-01-02") + "." + string(format)
}
