package models

// Table is one reception table, addressed by position.
type Table struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Area     string `json:"area"`
}

type TablePatch struct {
	Name     *string `json:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Area     *string `json:"area,omitempty"`
}

func (p TablePatch) Apply(t Table) Table {
	assign(&t.Name, p.Name)
	assign(&t.Capacity, p.Capacity)
	assign(&t.Area, p.Area)
	return t
}

// NewTable returns a blank table with the default capacity of 8.
func NewTable() Table {
	return Table{Capacity: 8}
}

// Seat assigns a guest to a table. GuestName and Table are denormalized
// strings matched by exact equality; renames orphan them silently.
type Seat struct {
	ID        int64  `json:"id"`
	GuestName string `json:"guestName"`
	Table     string `json:"table"`
	SeatNo    string `json:"seatNo"`
}

type SeatPatch struct {
	GuestName *string `json:"guestName,omitempty"`
	Table     *string `json:"table,omitempty"`
	SeatNo    *string `json:"seatNo,omitempty"`
}

func (p SeatPatch) Apply(s Seat) Seat {
	assign(&s.GuestName, p.GuestName)
	assign(&s.Table, p.Table)
	assign(&s.SeatNo, p.SeatNo)
	return s
}

// NewSeat returns a blank seat assignment with the given id.
func NewSeat(id int64) Seat {
	return Seat{ID: id}
}
