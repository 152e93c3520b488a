package models

// VendorEntry is one candidate (or booked) supplier. Entries have no
// id; they are addressed by position within their vendor-type list.
type VendorEntry struct {
	Final    bool   `json:"final"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Package  string `json:"pkg"`
	Quoted   Amount `json:"quoted"`
	Contract Amount `json:"contract"`
	Notes    string `json:"notes"`
}

// VendorBook groups vendor entries by vendor-type name. The expected
// key set is Setup.VendorTypes, but unknown keys are kept as-is.
type VendorBook map[string][]VendorEntry

// Clone deep-copies the book so callers cannot alias session state.
func (b VendorBook) Clone() VendorBook {
	out := make(VendorBook, len(b))
	for vt, entries := range b {
		out[vt] = append([]VendorEntry(nil), entries...)
	}
	return out
}

type VendorPatch struct {
	Final    *bool   `json:"final,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Contact  *string `json:"contact,omitempty"`
	Package  *string `json:"pkg,omitempty"`
	Quoted   *Amount `json:"quoted,omitempty"`
	Contract *Amount `json:"contract,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (p VendorPatch) Apply(v VendorEntry) VendorEntry {
	assign(&v.Final, p.Final)
	assign(&v.Name, p.Name)
	assign(&v.Email, p.Email)
	assign(&v.Contact, p.Contact)
	assign(&v.Package, p.Package)
	assign(&v.Quoted, p.Quoted)
	assign(&v.Contract, p.Contract)
	assign(&v.Notes, p.Notes)
	return v
}

// NewVendorBook seeds one blank entry per vendor type.
func NewVendorBook(vendorTypes []string) VendorBook {
	book := make(VendorBook, len(vendorTypes))
	for _, vt := range vendorTypes {
		book[vt] = []VendorEntry{{}}
	}
	return book
}
