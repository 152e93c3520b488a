package models

// Guest is one invitee. Status fields conventionally range over the
// matching Setup option lists but free text is accepted and stored
// verbatim.
type Guest struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Role           string `json:"role"`
	Tag            string `json:"tag"`
	Email          string `json:"email"`
	SaveDate       string `json:"saveDate"`
	Invite         string `json:"invite"`
	RSVP           string `json:"rsvp"`
	PlusOneAllowed string `json:"plusOneAllowed"`
	PlusOneName    string `json:"plusOneName"`
	Meal           string `json:"meal"`
	Allergies      string `json:"allergies"`
	Notes          string `json:"notes"`
}

// FullName joins first and last name the way seats and gifts reference
// guests (denormalized, no id link).
func (g Guest) FullName() string {
	if g.FirstName == "" {
		return g.LastName
	}
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

type GuestPatch struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Role           *string `json:"role,omitempty"`
	Tag            *string `json:"tag,omitempty"`
	Email          *string `json:"email,omitempty"`
	SaveDate       *string `json:"saveDate,omitempty"`
	Invite         *string `json:"invite,omitempty"`
	RSVP           *string `json:"rsvp,omitempty"`
	PlusOneAllowed *string `json:"plusOneAllowed,omitempty"`
	PlusOneName    *string `json:"plusOneName,omitempty"`
	Meal           *string `json:"meal,omitempty"`
	Allergies      *string `json:"allergies,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func (p GuestPatch) Apply(g Guest) Guest {
	assign(&g.FirstName, p.FirstName)
	assign(&g.LastName, p.LastName)
	assign(&g.Role, p.Role)
	assign(&g.Tag, p.Tag)
	assign(&g.Email, p.Email)
	assign(&g.SaveDate, p.SaveDate)
	assign(&g.Invite, p.Invite)
	assign(&g.RSVP, p.RSVP)
	assign(&g.PlusOneAllowed, p.PlusOneAllowed)
	assign(&g.PlusOneName, p.PlusOneName)
	assign(&g.Meal, p.Meal)
	assign(&g.Allergies, p.Allergies)
	assign(&g.Notes, p.Notes)
	return g
}

// NewGuest returns a blank guest record with the given id.
func NewGuest(id int64) Guest {
	return Guest{
		ID:             id,
		SaveDate:       "Not sent",
		Invite:         "Not sent",
		RSVP:           "No response",
		PlusOneAllowed: "No",
	}
}
