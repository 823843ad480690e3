package handler

type createUserRequest struct {
	Name     string `json:"name"     form:"name"     validate:"required,alphaunicode,min=3,max=50"`
	Email    string `json:"email"    form:"email"    validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// updateUserRequest is a partial overwrite: empty fields stay unchanged, and
// the password is only re-hashed when supplied.
type updateUserRequest struct {
	Name     string `json:"name"     form:"name"     validate:"omitempty,alphaunicode,min=3,max=50"`
	Email    string `json:"email"    form:"email"    validate:"omitempty,email"`
	Password string `json:"password" form:"password" validate:"omitempty,min=6"`
}
