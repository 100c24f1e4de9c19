package dto

import (
	"fmt"
	"strings"

	"maverick-bank/internal/domain/employee"
)

type CreateBankEmployeeRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	BranchID      *int64 `json:"branchId,omitempty"`
	UserID        int64  `json:"userId"`
}

func (r *CreateBankEmployeeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if r.UserID <= 0 {
		return fmt.Errorf("userId must be a positive number")
	}
	return nil
}

func (r *CreateBankEmployeeRequest) ToInput() employee.CreateEmployeeInput {
	return employee.CreateEmployeeInput{
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		BranchID:      r.BranchID,
		UserID:        r.UserID,
	}
}

// UpdateBankEmployeeRequest carries a partial patch; absent fields keep
// their stored values.
type UpdateBankEmployeeRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	BranchID      *int64  `json:"branchId,omitempty"`
	UserID        *int64  `json:"userId,omitempty"`
}

func (r *UpdateBankEmployeeRequest) ToInput() employee.UpdateEmployeeInput {
	return employee.UpdateEmployeeInput{
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		BranchID:      r.BranchID,
		UserID:        r.UserID,
	}
}

type BankEmployeeResponse struct {
	EmployeeID    int64  `json:"employeeId"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber,omitempty"`
	BranchID      *int64 `json:"branchId,omitempty"`
	UserID        int64  `json:"userId"`
}

func NewBankEmployeeResponse(emp *employee.BankEmployee) BankEmployeeResponse {
	if emp == nil {
		return BankEmployeeResponse{}
	}
	return BankEmployeeResponse{
		EmployeeID:    emp.EmployeeID,
		Name:          emp.Name,
		ContactNumber: emp.ContactNumber,
		BranchID:      emp.BranchID,
		UserID:        emp.UserID,
	}
}
