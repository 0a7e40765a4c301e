package model

import "time"

// Client is a contact record.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewClient holds the fields accepted when creating a client.
type NewClient struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Address string
	City    string
	Country string
}

// ClientUpdate is a sparse change set for a client. Nil fields are left
// unchanged; a pointer to "" clears an optional field.
type ClientUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Address *string
	City    *string
	Country *string
}

// IsEmpty reports whether no field is set.
func (u ClientUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Company == nil &&
		u.Address == nil && u.City == nil && u.Country == nil
}
