package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestUserCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/users", v1.UserEditable{
		Name:     "alice",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("alice", response.Data.Name)
	suite.Assert().Contains(response.Data.Links.Self, "/v1/users/")
	suite.Assert().Contains(response.Data.Links.Transactions, fmt.Sprintf("?user=%s", response.Data.ID))

	// The password hash must not leak into the response
	suite.Assert().NotContains(recorder.Body.String(), "password")
}

func (suite *TestSuiteStandard) TestUserCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"empty name", v1.UserEditable{Name: "", Password: "correct horse battery staple"}},
		{"short password", v1.UserEditable{Name: "bob", Password: "hunter2"}},
		{"broken body", `{ "name": "bob"`},
		{"empty body", ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodPost, "/v1/users", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestUserCreateDuplicateName() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/users", v1.UserEditable{
		Name:     "carol",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/users", v1.UserEditable{
		Name:     "carol",
		Password: "a completely different passphrase",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUserLogin() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/users", v1.UserEditable{
		Name:     "dave",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/users/login", v1.UserEditable{
		Name:     "dave",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("dave", response.Data.Name)
}

func (suite *TestSuiteStandard) TestUserLoginInvalidCredentials() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/users", v1.UserEditable{
		Name:     "erin",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	// Wrong password and unknown user return the same status
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/users/login", v1.UserEditable{
		Name:     "erin",
		Password: "not the passphrase",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/users/login", v1.UserEditable{
		Name:     "nobody",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestUserGet() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/users/%s", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(user.ID, response.Data.ID)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/users/4e8c3c4d-c94b-4a29-b4a6-90b2e07a6f33", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
