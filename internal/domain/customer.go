package domain

import "time"

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	NIF       string    `json:"nif,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	ZipCode   string    `json:"zipCode,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
