package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maverick-bank/internal/api/handler"
	"maverick-bank/internal/api/handler/dto"
	"maverick-bank/internal/domain/customer"
	"maverick-bank/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct {
	mock.Mock
}

func (_m *MockCustomerService) CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) (*customer.Customer, error) {
	ret := _m.Called(ctx, input)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, customer.CreateCustomerInput) *customer.Customer); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, customer.CreateCustomerInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, int64) *customer.Customer); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) GetAllCustomers(ctx context.Context) ([]*customer.Customer, error) {
	ret := _m.Called(ctx)

	var r0 []*customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context) []*customer.Customer); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*customer.Customer)
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

func (_m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID int64, patch customer.UpdateCustomerInput) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID, patch)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, int64, customer.UpdateCustomerInput) *customer.Customer); ok {
		r0 = rf(ctx, customerID, patch)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, customer.UpdateCustomerInput) error); ok {
		r1 = rf(ctx, customerID, patch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, customerID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCustomerService) GetCustomerByUserID(ctx context.Context, userID int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, userID)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, int64) *customer.Customer); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
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

func sampleCustomer() *customer.Customer {
	return &customer.Customer{
		CustomerID:    10,
		Name:          "Ravi Kumar",
		Gender:        "Male",
		ContactNumber: "9876543210",
		Address:       "12 MG Road, Chennai",
		DateOfBirth:   time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
		AadharNumber:  "123456789012",
		PanNumber:     "ABCDE1234F",
		UserID:        1,
	}
}

func TestCreateCustomer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("success", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		reqBody := dto.CreateCustomerRequest{
			Name:        "Ravi Kumar",
			DateOfBirth: "1990-03-15",
			UserID:      1,
		}
		reqBodyBytes, _ := json.Marshal(reqBody)
		req := httptest.NewRequest(http.MethodPost, "/customers/createCustomer", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		mockService.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(input customer.CreateCustomerInput) bool {
			return input.Name == "Ravi Kumar" && input.UserID == int64(1) &&
				input.DateOfBirth.Equal(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC))
		})).Return(sampleCustomer(), nil)

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.CustomerResponse
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), resp.CustomerID)
		assert.Equal(t, "1990-03-15", resp.DateOfBirth)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid payload", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/customers/createCustomer", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateCustomer")
	})

	t.Run("malformed date of birth", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		body := `{"name":"Ravi Kumar","dateOfBirth":"15-03-1990","userId":1}`
		req := httptest.NewRequest(http.MethodPost, "/customers/createCustomer", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateCustomer")
	})

	t.Run("user already holds an employee profile", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		reqBody := dto.CreateCustomerRequest{
			Name:        "Ravi Kumar",
			DateOfBirth: "1990-03-15",
			UserID:      1,
		}
		reqBodyBytes, _ := json.Marshal(reqBody)
		req := httptest.NewRequest(http.MethodPost, "/customers/createCustomer", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		mockService.On("CreateCustomer", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("userId", "User already holds a bank employee profile"))

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp dto.ErrorResponse
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, "User already holds a bank employee profile", resp.Error.Message)
		assert.Equal(t, "userId", resp.Error.Field)
		mockService.AssertExpectations(t)
	})
}

func TestGetCustomerByID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("success", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		mockService.On("GetCustomerByID", mock.Anything, int64(10)).Return(sampleCustomer(), nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/getCustomerById/10", nil), "customerId", "10")
		rec := httptest.NewRecorder()

		h.GetCustomerByID(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", resp.Name)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid customer ID", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/getCustomerById/abc", nil), "customerId", "abc")
		rec := httptest.NewRecorder()

		h.GetCustomerByID(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetCustomerByID")
	})

	t.Run("customer not found", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		mockService.On("GetCustomerByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/getCustomerById/99", nil), "customerId", "99")
		rec := httptest.NewRecorder()

		h.GetCustomerByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetAllCustomers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("success", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		mockService.On("GetAllCustomers", mock.Anything).Return([]*customer.Customer{sampleCustomer()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/customers/getAllCustomers", nil)
		rec := httptest.NewRecorder()

		h.GetAllCustomers(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.CustomerResponse
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("empty list", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		mockService.On("GetAllCustomers", mock.Anything).Return([]*customer.Customer{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/customers/getAllCustomers", nil)
		rec := httptest.NewRecorder()

		h.GetAllCustomers(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestUpdateCustomer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("success", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		body := `{"address":"45 Anna Salai, Chennai"}`
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/customers/updateCustomer/10", bytes.NewReader([]byte(body))), "customerId", "10")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		updated := sampleCustomer()
		updated.Address = "45 Anna Salai, Chennai"
		mockService.On("UpdateCustomer", mock.Anything, int64(10), mock.MatchedBy(func(patch customer.UpdateCustomerInput) bool {
			return patch.Address != nil && *patch.Address == "45 Anna Salai, Chennai" && patch.Name == nil
		})).Return(updated, nil)

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, "45 Anna Salai, Chennai", resp.Address)
		mockService.AssertExpectations(t)
	})

	t.Run("customer not found", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		req := withURLParam(httptest.NewRequest(http.MethodPut, "/customers/updateCustomer/99", bytes.NewReader([]byte(`{}`))), "customerId", "99")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		mockService.On("UpdateCustomer", mock.Anything, int64(99), mock.Anything).Return(nil, apperrors.ErrNotFound)

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestDeleteCustomer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("success", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		mockService.On("DeleteCustomer", mock.Anything, int64(10)).Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/customers/deleteCustomer/10", nil), "customerId", "10")
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetCustomerByUserID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("success", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		mockService.On("GetCustomerByUserID", mock.Anything, int64(1)).Return(sampleCustomer(), nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/getCustomerByUserId/1", nil), "userId", "1")
		rec := httptest.NewRecorder()

		h.GetCustomerByUserID(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), resp.CustomerID)
		mockService.AssertExpectations(t)
	})

	t.Run("no customer linked", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, logger)

		mockService.On("GetCustomerByUserID", mock.Anything, int64(2)).Return(nil, apperrors.ErrNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/getCustomerByUserId/2", nil), "userId", "2")
		rec := httptest.NewRecorder()

		h.GetCustomerByUserID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}
