package entity

import "time"

// Shop representa una óptica que recibe monturas del distribuidor y vende al público.
type Shop struct {
	ID        string
	Name      string
	Address   string
	OwnerName string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
