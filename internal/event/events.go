package event

import "time"

// Routing keys published to the topic exchange. Consumers bind with
// "user.*", "customer.*" or "employee.*" patterns.
const (
	routingKeyUserRegistered  = "user.registered"
	routingKeyUserUpdated     = "user.updated"
	routingKeyUserDeleted     = "user.deleted"
	routingKeyCustomerCreated = "customer.created"
	routingKeyCustomerUpdated = "customer.updated"
	routingKeyCustomerDeleted = "customer.deleted"
	routingKeyEmployeeCreated = "employee.created"
)

type UserEventPayload struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   int64  `json:"roleId"`
}

type UserRegisteredEvent struct {
	Timestamp time.Time        `json:"timestamp"`
	Payload   UserEventPayload `json:"payload"`
}

type UserUpdatedEvent struct {
	Timestamp time.Time        `json:"timestamp"`
	Payload   UserEventPayload `json:"payload"`
}

type UserDeletedEvent struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"userId"`
}

type CustomerEventPayload struct {
	CustomerID    int64      `json:"customerId"`
	Name          string     `json:"name"`
	ContactNumber string     `json:"contactNumber"`
	Address       string     `json:"address"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	UserID        int64      `json:"userId"`
}

type CustomerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerDeletedEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	CustomerID int64     `json:"customerId"`
}

type EmployeeEventPayload struct {
	EmployeeID int64  `json:"employeeId"`
	Name       string `json:"name"`
	BranchID   *int64 `json:"branchId,omitempty"`
	UserID     int64  `json:"userId"`
}

type EmployeeCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   EmployeeEventPayload `json:"payload"`
}
