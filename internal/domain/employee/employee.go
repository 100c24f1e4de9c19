package employee

// BankEmployee is a staff record linked 1:1 to a user, optionally attached
// to a branch. The user link is the bare ID; the wire field stays "userId".
type BankEmployee struct {
	EmployeeID    int64  `json:"employeeId"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber,omitempty"`
	BranchID      *int64 `json:"branchId,omitempty"`
	UserID        int64  `json:"userId"`
}
