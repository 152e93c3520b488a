package models

import "time"

// Setup is the singleton event record. Its option lists are the
// controlled vocabularies that guest, vendor and expense fields draw
// from; membership is suggested by the UI but never enforced on write.
type Setup struct {
	BrideName   string `json:"brideName"`
	GroomName   string `json:"groomName"`
	WeddingDate string `json:"weddingDate"` // YYYY-MM-DD
	Ceremony    string `json:"ceremony"`
	Reception   string `json:"reception"`
	Currency    string `json:"currency"`

	Roles                []string `json:"roles"`
	GuestTags            []string `json:"guestTags"`
	RSVPOptions          []string `json:"rsvpOptions"`
	SaveDateOptions      []string `json:"saveDateOptions"`
	InviteOptions        []string `json:"inviteOptions"`
	AccommodationOptions []string `json:"accommodationOptions"`
	MealOptions          []string `json:"mealOptions"`
	VendorTypes          []string `json:"vendorTypes"`
}

type SetupPatch struct {
	BrideName   *string `json:"brideName,omitempty"`
	GroomName   *string `json:"groomName,omitempty"`
	WeddingDate *string `json:"weddingDate,omitempty"`
	Ceremony    *string `json:"ceremony,omitempty"`
	Reception   *string `json:"reception,omitempty"`
	Currency    *string `json:"currency,omitempty"`

	Roles                *[]string `json:"roles,omitempty"`
	GuestTags            *[]string `json:"guestTags,omitempty"`
	RSVPOptions          *[]string `json:"rsvpOptions,omitempty"`
	SaveDateOptions      *[]string `json:"saveDateOptions,omitempty"`
	InviteOptions        *[]string `json:"inviteOptions,omitempty"`
	AccommodationOptions *[]string `json:"accommodationOptions,omitempty"`
	MealOptions          *[]string `json:"mealOptions,omitempty"`
	VendorTypes          *[]string `json:"vendorTypes,omitempty"`
}

func (p SetupPatch) Apply(s Setup) Setup {
	assign(&s.BrideName, p.BrideName)
	assign(&s.GroomName, p.GroomName)
	assign(&s.WeddingDate, p.WeddingDate)
	assign(&s.Ceremony, p.Ceremony)
	assign(&s.Reception, p.Reception)
	assign(&s.Currency, p.Currency)
	assign(&s.Roles, p.Roles)
	assign(&s.GuestTags, p.GuestTags)
	assign(&s.RSVPOptions, p.RSVPOptions)
	assign(&s.SaveDateOptions, p.SaveDateOptions)
	assign(&s.InviteOptions, p.InviteOptions)
	assign(&s.AccommodationOptions, p.AccommodationOptions)
	assign(&s.MealOptions, p.MealOptions)
	assign(&s.VendorTypes, p.VendorTypes)
	return s
}

// DefaultSetup returns the starting event configuration with a wedding
// date 120 days out.
func DefaultSetup() Setup {
	return Setup{
		BrideName:   "Alex Example",
		GroomName:   "Sam Sample",
		WeddingDate: time.Now().AddDate(0, 0, 120).Format("2006-01-02"),
		Ceremony:    "Example Chapel",
		Reception:   "Example Hall",
		Currency:    "£",
		Roles: []string{
			"Bride", "Groom", "Bridesmaid", "Groomsman", "Parent", "MC", "Friend", "Family",
		},
		GuestTags: []string{
			"Bride Family", "Groom Family", "Bride Friends", "Groom Friends",
			"Workmates", "Vendors", "Kids",
		},
		RSVPOptions:          []string{"Yes", "No", "Maybe", "No response"},
		SaveDateOptions:      []string{"Not sent", "Sent", "Delivered"},
		InviteOptions:        []string{"Not sent", "Sent", "Delivered"},
		AccommodationOptions: []string{"Not needed", "Required", "Booked", "N/A"},
		MealOptions:          []string{"Beef", "Fish", "Vegetarian", "Vegan", "Kids", "Other"},
		VendorTypes: []string{
			"Photographer", "Caterer", "Band/DJ", "Florist", "Venue",
			"Transport", "Hair/Makeup", "Officiant", "Stationery",
			"Cake", "Decor", "Lighting", "AV", "Rentals", "Planner", "Misc",
		},
	}
}
