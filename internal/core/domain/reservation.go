package domain

import "time"

// Reservation books a catway for a client between two dates. It references
// the catway by number, mirroring the booking ledger format; there is no
// enforced foreign key back to the Catway document.
type Reservation struct {
	ID           string    `json:"id"`
	CatwayNumber int       `json:"catway_number"`
	ClientName   string    `json:"client_name"`
	BoatName     string    `json:"boat_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	CreatedAt    time.Time `json:"created_at"`
}
