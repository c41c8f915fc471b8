// internal/services/search_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/anikshop/anikshop-backend/internal/models"
)

type SearchServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *SearchService
}

func (suite *SearchServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewSearchService(suite.db)

	for _, name := range []string{"shirt", "Shirts", "T-SHIRT", "shrt", "Panjabi"} {
		createTestProduct(suite.T(), suite.db, name, 100)
	}
}

func (suite *SearchServiceTestSuite) logCount() int64 {
	var count int64
	suite.db.Model(&models.SearchLog{}).Count(&count)
	return count
}

func (suite *SearchServiceTestSuite) TestEmptyQueryIsANoOp() {
	for _, q := range []string{"", "   ", "\t\n"} {
		products, err := suite.service.Search(q, nil)
		suite.NoError(err)
		suite.Empty(products)
	}
	suite.Equal(int64(0), suite.logCount())
}

func (suite *SearchServiceTestSuite) TestSubstringMatchIsCaseInsensitive() {
	products, err := suite.service.Search("Shirt", nil)
	suite.NoError(err)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	suite.ElementsMatch(names, []string{"shirt", "Shirts", "T-SHIRT"})
}

func (suite *SearchServiceTestSuite) TestEveryNonEmptyQueryIsLogged() {
	_, err := suite.service.Search("Shirt", nil)
	suite.NoError(err)
	suite.Equal(int64(1), suite.logCount())

	// Zero matches still leave a log row.
	_, err = suite.service.Search("does-not-exist", nil)
	suite.NoError(err)
	suite.Equal(int64(2), suite.logCount())

	var log models.SearchLog
	suite.NoError(suite.db.Order("created_at DESC").First(&log).Error)
	suite.Equal("does-not-exist", log.Query)
	suite.Nil(log.UserID)
}

func (suite *SearchServiceTestSuite) TestQueryIsTrimmedBeforeLogging() {
	_, err := suite.service.Search("  Panjabi  ", nil)
	suite.NoError(err)

	var log models.SearchLog
	suite.NoError(suite.db.First(&log).Error)
	suite.Equal("Panjabi", log.Query)
}

func (suite *SearchServiceTestSuite) TestLoggedInUserIsRecorded() {
	user := &models.User{Username: "karim", Email: "karim@example.com", PasswordHash: "x"}
	suite.NoError(suite.db.Create(user).Error)

	_, err := suite.service.Search("shirt", &user.ID)
	suite.NoError(err)

	var log models.SearchLog
	suite.NoError(suite.db.First(&log).Error)
	suite.NotNil(log.UserID)
	suite.Equal(user.ID, *log.UserID)
}

func (suite *SearchServiceTestSuite) TestListLogsNewestFirst() {
	_, err := suite.service.Search("first", nil)
	suite.NoError(err)
	_, err = suite.service.Search("second", nil)
	suite.NoError(err)

	logs, err := suite.service.ListLogs()
	suite.NoError(err)
	suite.Len(logs, 2)
}

func TestSearchServiceSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}
