package identity_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"maverick-bank/internal/domain/identity"
	"maverick-bank/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func setupUserServiceTest() (*identity.MockUserRepository, *identity.MockRoleRepository, identity.UserService) {
	mockUsers := new(identity.MockUserRepository)
	mockRoles := new(identity.MockRoleRepository)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := identity.NewUserService(mockUsers, mockRoles, nil, logger)
	return mockUsers, mockRoles, service
}

func TestUserService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	customerRole := &identity.Role{RoleID: 1, Name: "CUSTOMER"}
	adminRole := &identity.Role{RoleID: 3, Name: "ADMIN"}

	validInput := identity.RegisterUserInput{
		Username: "ravi",
		Password: "Str0ngPass",
		Email:    "ravi@example.com",
	}

	t.Run("Success with default role fallback", func(t *testing.T) {
		mockUsers, mockRoles, service := setupUserServiceTest()

		mockUsers.On("FindByUsername", ctx, "ravi").Return(nil, apperrors.ErrNotFound).Once()
		mockUsers.On("FindByEmail", ctx, "ravi@example.com").Return(nil, apperrors.ErrNotFound).Once()
		mockRoles.On("FindByName", ctx, "CUSTOMER").Return(customerRole, nil).Once()
		mockUsers.On("Save", ctx, mock.MatchedBy(func(u *identity.User) bool {
			hashOK := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Str0ngPass")) == nil
			if hashOK {
				u.UserID = 1
			}
			return u.Username == "ravi" && u.Email == "ravi@example.com" && u.RoleID == int64(1) && hashOK
		})).Return(nil).Once()

		user, err := service.RegisterUser(ctx, validInput)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, int64(1), user.UserID)
		assert.Equal(t, int64(1), user.RoleID)
		mockUsers.AssertExpectations(t)
		mockRoles.AssertExpectations(t)
	})

	t.Run("Success with explicit known role", func(t *testing.T) {
		mockUsers, mockRoles, service := setupUserServiceTest()
		roleID := int64(3)
		input := validInput
		input.RoleID = &roleID

		mockUsers.On("FindByUsername", ctx, "ravi").Return(nil, apperrors.ErrNotFound).Once()
		mockUsers.On("FindByEmail", ctx, "ravi@example.com").Return(nil, apperrors.ErrNotFound).Once()
		mockRoles.On("FindByID", ctx, roleID).Return(adminRole, nil).Once()
		mockUsers.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil).Once()

		user, err := service.RegisterUser(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), user.RoleID)
		mockRoles.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
		mockUsers.AssertExpectations(t)
		mockRoles.AssertExpectations(t)
	})

	t.Run("Unknown role falls back to CUSTOMER", func(t *testing.T) {
		mockUsers, mockRoles, service := setupUserServiceTest()
		roleID := int64(99)
		input := validInput
		input.RoleID = &roleID

		mockUsers.On("FindByUsername", ctx, "ravi").Return(nil, apperrors.ErrNotFound).Once()
		mockUsers.On("FindByEmail", ctx, "ravi@example.com").Return(nil, apperrors.ErrNotFound).Once()
		mockRoles.On("FindByID", ctx, roleID).Return(nil, apperrors.ErrNotFound).Once()
		mockRoles.On("FindByName", ctx, "CUSTOMER").Return(customerRole, nil).Once()
		mockUsers.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil).Once()

		user, err := service.RegisterUser(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.RoleID)
		mockRoles.AssertExpectations(t)
	})

	t.Run("Error - Username already exists", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()

		mockUsers.On("FindByUsername", ctx, "ravi").Return(&identity.User{UserID: 7, Username: "ravi"}, nil).Once()

		user, err := service.RegisterUser(ctx, validInput)

		assert.Error(t, err)
		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "username", validationErr.Field)
		assert.Equal(t, "Username already exists", validationErr.Message)
		mockUsers.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		mockUsers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - Invalid email format checked before email uniqueness", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()
		input := validInput
		input.Email = "not-an-email"

		mockUsers.On("FindByUsername", ctx, "ravi").Return(nil, apperrors.ErrNotFound).Once()

		user, err := service.RegisterUser(ctx, input)

		assert.Error(t, err)
		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "email", validationErr.Field)
		assert.Equal(t, "Invalid email format", validationErr.Message)
		mockUsers.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Error - Email already exists", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()

		mockUsers.On("FindByUsername", ctx, "ravi").Return(nil, apperrors.ErrNotFound).Once()
		mockUsers.On("FindByEmail", ctx, "ravi@example.com").Return(&identity.User{UserID: 8}, nil).Once()

		user, err := service.RegisterUser(ctx, validInput)

		assert.Error(t, err)
		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Email already exists", validationErr.Message)
		mockUsers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - Weak password checked after email uniqueness", func(t *testing.T) {
		mockUsers, mockRoles, service := setupUserServiceTest()
		input := validInput
		input.Password = "alllowercase1"

		mockUsers.On("FindByUsername", ctx, "ravi").Return(nil, apperrors.ErrNotFound).Once()
		mockUsers.On("FindByEmail", ctx, "ravi@example.com").Return(nil, apperrors.ErrNotFound).Once()

		user, err := service.RegisterUser(ctx, input)

		assert.Error(t, err)
		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "password", validationErr.Field)
		mockRoles.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
		mockUsers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - Default role missing", func(t *testing.T) {
		mockUsers, mockRoles, service := setupUserServiceTest()

		mockUsers.On("FindByUsername", ctx, "ravi").Return(nil, apperrors.ErrNotFound).Once()
		mockUsers.On("FindByEmail", ctx, "ravi@example.com").Return(nil, apperrors.ErrNotFound).Once()
		mockRoles.On("FindByName", ctx, "CUSTOMER").Return(nil, apperrors.ErrNotFound).Once()

		user, err := service.RegisterUser(ctx, validInput)

		assert.Error(t, err)
		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Default role CUSTOMER is missing", validationErr.Message)
		mockUsers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - Repository failure during username check", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()
		dbError := errors.New("database connection failed")

		mockUsers.On("FindByUsername", ctx, "ravi").Return(nil, dbError).Once()

		user, err := service.RegisterUser(ctx, validInput)

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, dbError)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Str0ngPass"), bcrypt.DefaultCost)
	storedUser := &identity.User{UserID: 1, Username: "ravi", PasswordHash: string(hash), Email: "ravi@example.com", RoleID: 1}

	t.Run("Success", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()

		mockUsers.On("FindByUsername", ctx, "ravi").Return(storedUser, nil).Once()

		user, err := service.Login(ctx, "ravi", "Str0ngPass")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.UserID)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Error - Wrong password", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()

		mockUsers.On("FindByUsername", ctx, "ravi").Return(storedUser, nil).Once()

		user, err := service.Login(ctx, "ravi", "WrongPass1")

		assert.Error(t, err)
		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Invalid username or password", validationErr.Message)
	})

	t.Run("Error - Unknown username reported identically", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()

		mockUsers.On("FindByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

		user, err := service.Login(ctx, "ghost", "Str0ngPass")

		assert.Error(t, err)
		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Invalid username or password", validationErr.Message)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	userID := int64(5)

	existing := func() *identity.User {
		return &identity.User{UserID: userID, Username: "ravi", PasswordHash: "oldhash", Email: "ravi@example.com", RoleID: 1}
	}

	t.Run("Success - partial patch keeps unset fields", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()
		newEmail := "ravi.new@example.com"

		mockUsers.On("FindByID", ctx, userID).Return(existing(), nil).Once()
		mockUsers.On("FindByEmail", ctx, newEmail).Return(nil, apperrors.ErrNotFound).Once()
		mockUsers.On("Save", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Username == "ravi" && u.Email == newEmail && u.PasswordHash == "oldhash"
		})).Return(nil).Once()

		user, err := service.UpdateUser(ctx, userID, identity.UpdateUserInput{Email: &newEmail})

		assert.NoError(t, err)
		assert.Equal(t, newEmail, user.Email)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Unchanged username skips uniqueness check", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()
		sameUsername := "ravi"

		mockUsers.On("FindByID", ctx, userID).Return(existing(), nil).Once()
		mockUsers.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil).Once()

		_, err := service.UpdateUser(ctx, userID, identity.UpdateUserInput{Username: &sameUsername})

		assert.NoError(t, err)
		mockUsers.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})

	t.Run("Error - New username already exists", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()
		newUsername := "taken"

		mockUsers.On("FindByID", ctx, userID).Return(existing(), nil).Once()
		mockUsers.On("FindByUsername", ctx, newUsername).Return(&identity.User{UserID: 9}, nil).Once()

		user, err := service.UpdateUser(ctx, userID, identity.UpdateUserInput{Username: &newUsername})

		assert.Error(t, err)
		assert.Nil(t, user)
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Username already exists", validationErr.Message)
		mockUsers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("New password is rehashed", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()
		newPassword := "NewStr0ngPass"

		mockUsers.On("FindByID", ctx, userID).Return(existing(), nil).Once()
		mockUsers.On("Save", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(newPassword)) == nil
		})).Return(nil).Once()

		_, err := service.UpdateUser(ctx, userID, identity.UpdateUserInput{Password: &newPassword})

		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Empty password is left as-is", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()
		empty := ""

		mockUsers.On("FindByID", ctx, userID).Return(existing(), nil).Once()
		mockUsers.On("Save", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.PasswordHash == "oldhash"
		})).Return(nil).Once()

		_, err := service.UpdateUser(ctx, userID, identity.UpdateUserInput{Password: &empty})

		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Error - Unknown role in patch", func(t *testing.T) {
		mockUsers, mockRoles, service := setupUserServiceTest()
		roleID := int64(99)

		mockUsers.On("FindByID", ctx, userID).Return(existing(), nil).Once()
		mockRoles.On("FindByID", ctx, roleID).Return(nil, apperrors.ErrNotFound).Once()

		user, err := service.UpdateUser(ctx, userID, identity.UpdateUserInput{RoleID: &roleID})

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockUsers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - User not found", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()

		mockUsers.On("FindByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

		user, err := service.UpdateUser(ctx, userID, identity.UpdateUserInput{})

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	userID := int64(5)

	t.Run("Success", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()

		mockUsers.On("ExistsByID", ctx, userID).Return(true, nil).Once()
		mockUsers.On("Delete", ctx, userID).Return(nil).Once()

		err := service.DeleteUser(ctx, userID)

		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Error - User not found", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()

		mockUsers.On("ExistsByID", ctx, userID).Return(false, nil).Once()

		err := service.DeleteUser(ctx, userID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockUsers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestUserService_GetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()
		expected := &identity.User{UserID: 2, Username: "meena"}

		mockUsers.On("FindByID", ctx, int64(2)).Return(expected, nil).Once()

		user, err := service.GetUserByID(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("Error - Not found", func(t *testing.T) {
		mockUsers, _, service := setupUserServiceTest()

		mockUsers.On("FindByID", ctx, int64(2)).Return(nil, apperrors.ErrNotFound).Once()

		user, err := service.GetUserByID(ctx, 2)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, user)
	})
}
