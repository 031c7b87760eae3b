package vacation

// Status is the classification of an employee's vacation month relative to now.
type Status string

const (
	StatusUnspecified Status = "unspecified"
	StatusCurrent     Status = "current"
	StatusUpcoming    Status = "upcoming"
	StatusOverdue     Status = "overdue"
)

// Label returns the text shown on the employee card.
func (s Status) Label() string {
	switch s {
	case StatusCurrent:
		return "Férias"
	case StatusUpcoming:
		return "Próxima"
	case StatusOverdue:
		return "Atrasada"
	default:
		return ""
	}
}

// StyleTag returns the css class used for the status line.
func (s Status) StyleTag() string {
	switch s {
	case StatusCurrent:
		return "status-success"
	case StatusUpcoming:
		return "status-warning"
	case StatusOverdue:
		return "status-danger"
	default:
		return ""
	}
}

// BadgeTag returns the css class used for the badge.
func (s Status) BadgeTag() string {
	switch s {
	case StatusCurrent:
		return "badge-success"
	case StatusUpcoming:
		return "badge-warning"
	case StatusOverdue:
		return "badge-danger"
	default:
		return ""
	}
}
