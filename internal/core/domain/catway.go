package domain

// CatwayType distinguishes the two dock layouts of the marina.
type CatwayType string

const (
	CatwayLong  CatwayType = "long"
	CatwayShort CatwayType = "short"
)

// Valid reports whether t is one of the known catway types.
func (t CatwayType) Valid() bool {
	return t == CatwayLong || t == CatwayShort
}

// Catway is a single docking slot. CatwayNumber is unique across the marina
// and is the key reservations reference (not the ObjectID).
type Catway struct {
	ID           string     `json:"id"`
	CatwayNumber int        `json:"catway_number"`
	Type         CatwayType `json:"type"`
	CatwayState  string     `json:"catway_state"`
	BoatName     string     `json:"boat_name"`
}
