package entity

import "time"

// User is an end user of the platform. The email is the login identifier
// and the only unique business key; deletion is always physical.
type User struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"nombre"`
	Email     string    `json:"correo"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Age       int       `json:"edad"`
	City      string    `json:"ciudad"`
	Interests []string  `json:"intereses,omitempty"`
	Offers    bool      `json:"ofertas"`
	Role      Role      `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AcceptsOffersIn reports whether the user opted into offer mail for the
// given city.
func (u *User) AcceptsOffersIn(city string) bool {
	return u.Offers && u.City == city
}
