package models

// Thank-you note states for received gifts.
var ThankYouStates = []string{"Not Needed", "Drafted", "Sent"}

// Gift is one received gift and its thank-you tracking. GuestName is a
// denormalized reference to a guest's full name.
type Gift struct {
	ID          int64  `json:"id"`
	GuestID     string `json:"guestId"`
	GuestName   string `json:"guestName"`
	Description string `json:"gift"`
	Category    string `json:"category"`
	Value       Amount `json:"value"`
	ThankYou    string `json:"thankyou"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

type GiftPatch struct {
	GuestID     *string `json:"guestId,omitempty"`
	GuestName   *string `json:"guestName,omitempty"`
	Description *string `json:"gift,omitempty"`
	Category    *string `json:"category,omitempty"`
	Value       *Amount `json:"value,omitempty"`
	ThankYou    *string `json:"thankyou,omitempty"`
	Address     *string `json:"address,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (p GiftPatch) Apply(g Gift) Gift {
	assign(&g.GuestID, p.GuestID)
	assign(&g.GuestName, p.GuestName)
	assign(&g.Description, p.Description)
	assign(&g.Category, p.Category)
	assign(&g.Value, p.Value)
	assign(&g.ThankYou, p.ThankYou)
	assign(&g.Address, p.Address)
	assign(&g.Notes, p.Notes)
	return g
}

// NewGift returns a blank gift record with the given id.
func NewGift(id int64) Gift {
	return Gift{ID: id, ThankYou: "Not Needed"}
}
