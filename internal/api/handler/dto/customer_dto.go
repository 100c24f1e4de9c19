package dto

import (
	"fmt"
	"strings"
	"time"

	"maverick-bank/internal/domain/customer"
)

const dateLayout = "2006-01-02"

type CreateCustomerRequest struct {
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"dateOfBirth"`
	AadharNumber  string `json:"aadharNumber"`
	PanNumber     string `json:"panNumber"`
	UserID        int64  `json:"userId"`
}

func (r *CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if r.UserID <= 0 {
		return fmt.Errorf("userId must be a positive number")
	}
	if _, err := time.Parse(dateLayout, r.DateOfBirth); err != nil || r.DateOfBirth == "" {
		return fmt.Errorf("invalid dateOfBirth format (use YYYY-MM-DD): %w", err)
	}
	return nil
}

func (r *CreateCustomerRequest) ToInput() (customer.CreateCustomerInput, error) {
	dob, err := time.Parse(dateLayout, r.DateOfBirth)
	if err != nil {
		return customer.CreateCustomerInput{}, fmt.Errorf("invalid dateOfBirth format (use YYYY-MM-DD): %w", err)
	}
	return customer.CreateCustomerInput{
		Name:          r.Name,
		Gender:        r.Gender,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
		DateOfBirth:   dob,
		AadharNumber:  r.AadharNumber,
		PanNumber:     r.PanNumber,
		UserID:        r.UserID,
	}, nil
}

// UpdateCustomerRequest carries a partial patch; absent fields keep their
// stored values. The linked user cannot be changed through this request.
type UpdateCustomerRequest struct {
	Name          *string `json:"name,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Address       *string `json:"address,omitempty"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty"`
	AadharNumber  *string `json:"aadharNumber,omitempty"`
	PanNumber     *string `json:"panNumber,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if r.DateOfBirth != nil {
		if _, err := time.Parse(dateLayout, *r.DateOfBirth); err != nil {
			return fmt.Errorf("invalid dateOfBirth format (use YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (r *UpdateCustomerRequest) ToInput() (customer.UpdateCustomerInput, error) {
	input := customer.UpdateCustomerInput{
		Name:          r.Name,
		Gender:        r.Gender,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
		AadharNumber:  r.AadharNumber,
		PanNumber:     r.PanNumber,
	}
	if r.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *r.DateOfBirth)
		if err != nil {
			return customer.UpdateCustomerInput{}, fmt.Errorf("invalid dateOfBirth format (use YYYY-MM-DD): %w", err)
		}
		input.DateOfBirth = &dob
	}
	return input, nil
}

type CustomerResponse struct {
	CustomerID    int64  `json:"customerId"`
	Name          string `json:"name"`
	Gender        string `json:"gender,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	DateOfBirth   string `json:"dateOfBirth"`
	AadharNumber  string `json:"aadharNumber,omitempty"`
	PanNumber     string `json:"panNumber,omitempty"`
	UserID        int64  `json:"userId"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		CustomerID:    cust.CustomerID,
		Name:          cust.Name,
		Gender:        cust.Gender,
		ContactNumber: cust.ContactNumber,
		Address:       cust.Address,
		DateOfBirth:   cust.DateOfBirth.Format(dateLayout),
		AadharNumber:  cust.AadharNumber,
		PanNumber:     cust.PanNumber,
		UserID:        cust.UserID,
	}
}
