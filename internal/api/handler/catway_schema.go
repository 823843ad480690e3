package handler

type createCatwayRequest struct {
	CatwayNumber int    `json:"catway_number" form:"catway_number" validate:"required,gt=0"`
	Type         string `json:"type"          form:"type"          validate:"required,oneof=long short"`
	CatwayState  string `json:"catway_state"  form:"catway_state"  validate:"required,min=3,max=100"`
	BoatName     string `json:"boat_name"     form:"boat_name"     validate:"required,min=2,max=50"`
}

// updateCatwayRequest covers the mutable fields only; number and type are
// fixed at creation.
type updateCatwayRequest struct {
	CatwayState string `json:"catway_state" form:"catway_state" validate:"omitempty,min=3,max=100"`
	BoatName    string `json:"boat_name"    form:"boat_name"    validate:"omitempty,min=2,max=50"`
}
