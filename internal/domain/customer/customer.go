package customer

import "time"

// Customer is the retail banking profile linked 1:1 to a user. The link is
// carried as the bare user ID; reverse navigation goes through a repository
// query so serialized views never contain cycles.
type Customer struct {
	CustomerID    int64     `json:"customerId"`
	Name          string    `json:"name"`
	Gender        string    `json:"gender,omitempty"`
	ContactNumber string    `json:"contactNumber"`
	Address       string    `json:"address"`
	DateOfBirth   time.Time `json:"dateOfBirth"`
	AadharNumber  string    `json:"aadharNumber,omitempty"`
	PanNumber     string    `json:"panNumber,omitempty"`
	UserID        int64     `json:"userId"`
}
