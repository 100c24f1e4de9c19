package employee

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (_m *MockEmployeeRepository) Save(ctx context.Context, emp *BankEmployee) error {
	ret := _m.Called(ctx, emp)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *BankEmployee) error); ok {
		r0 = rf(ctx, emp)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockEmployeeRepository) FindByID(ctx context.Context, employeeID int64) (*BankEmployee, error) {
	ret := _m.Called(ctx, employeeID)

	var r0 *BankEmployee
	if rf, ok := ret.Get(0).(func(context.Context, int64) *BankEmployee); ok {
		r0 = rf(ctx, employeeID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*BankEmployee)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, employeeID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockEmployeeRepository) FindByUserID(ctx context.Context, userID int64) (*BankEmployee, error) {
	ret := _m.Called(ctx, userID)

	var r0 *BankEmployee
	if rf, ok := ret.Get(0).(func(context.Context, int64) *BankEmployee); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*BankEmployee)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockEmployeeRepository) FindAll(ctx context.Context) ([]*BankEmployee, error) {
	ret := _m.Called(ctx)

	var r0 []*BankEmployee
	if rf, ok := ret.Get(0).(func(context.Context) []*BankEmployee); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*BankEmployee)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockEmployeeRepository) ExistsByID(ctx context.Context, employeeID int64) (bool, error) {
	ret := _m.Called(ctx, employeeID)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, int64) bool); ok {
		r0 = rf(ctx, employeeID)
	} else {
		r0 = ret.Bool(0)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, employeeID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockEmployeeRepository) Delete(ctx context.Context, employeeID int64) error {
	ret := _m.Called(ctx, employeeID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, employeeID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockEmployeeRepository) Count(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context) int64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type MockUserDirectory struct {
	mock.Mock
}

func (_m *MockUserDirectory) ExistsByID(ctx context.Context, userID int64) (bool, error) {
	ret := _m.Called(ctx, userID)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, int64) bool); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Bool(0)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type MockCustomerLookup struct {
	mock.Mock
}

func (_m *MockCustomerLookup) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	ret := _m.Called(ctx, userID)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, int64) bool); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Bool(0)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
