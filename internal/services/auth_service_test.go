// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewAuthService(suite.db, testConfig())
}

func (suite *AuthServiceTestSuite) register() *AuthResponse {
	resp, err := suite.service.Register(&RegisterRequest{
		Name:     "Rahim Uddin",
		Phone:    "01711000000",
		Email:    "rahim@example.com",
		Address:  "Mirpur, Dhaka",
		Username: "rahim",
		Password: "secret-pass",
	})
	suite.NoError(err)
	return resp
}

func (suite *AuthServiceTestSuite) TestRegister() {
	resp := suite.register()

	suite.NotEmpty(resp.AccessToken)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal("rahim", resp.User.Username)
	suite.NotEqual("secret-pass", resp.User.PasswordHash)
	suite.NoError(resp.User.CheckPassword("secret-pass"))
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicate() {
	suite.register()

	_, err := suite.service.Register(&RegisterRequest{
		Name:     "Other",
		Phone:    "01812000000",
		Email:    "rahim@example.com",
		Username: "other",
		Password: "secret-pass",
	})
	suite.ErrorIs(err, ErrInvalidInput)

	_, err = suite.service.Register(&RegisterRequest{
		Name:     "Other",
		Phone:    "01812000000",
		Email:    "other@example.com",
		Username: "rahim",
		Password: "secret-pass",
	})
	suite.ErrorIs(err, ErrInvalidInput)
}

func (suite *AuthServiceTestSuite) TestLogin() {
	suite.register()

	resp, err := suite.service.Login(&LoginRequest{Username: "rahim", Password: "secret-pass"})
	suite.NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.NotNil(resp.User.LastLoginAt)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	suite.register()

	_, err := suite.service.Login(&LoginRequest{Username: "rahim", Password: "wrong"})
	suite.ErrorIs(err, ErrInvalidInput)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownUser() {
	_, err := suite.service.Login(&LoginRequest{Username: "ghost", Password: "whatever"})
	suite.ErrorIs(err, ErrInvalidInput)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
