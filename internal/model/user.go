package model

// Sex is the display marker carried by a user.
type Sex string

const (
	// SexMale marks a male user.
	SexMale Sex = "m"
	// SexFemale marks a female user.
	SexFemale Sex = "f"
)

// User owns categories.
type User struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Sex  Sex    `json:"sex" yaml:"sex" validate:"omitempty,oneof=m f"`
	ID   int    `json:"id" yaml:"id"`
}
