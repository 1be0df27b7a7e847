package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/models"
)

type UserEditable struct {
	Name     string `json:"name" example:"morre"`                                          // The username, unique across the instance
	Password string `json:"password" example:"correct horse battery staple" minLength:"8"` // The password, at least 8 characters
}

type UserLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/users/d430d7c3-d14c-4712-9336-ee56965a6673"`                    // The user itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?user=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions of the user
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets?user=d430d7c3-d14c-4712-9336-ee56965a6673"`           // Budgets of the user
}

// User is the representation of a User in API v1. The password hash
// is never part of it.
type User struct {
	models.DefaultModel
	Name  string    `json:"name" example:"morre"` // The username
	Links UserLinks `json:"links"`
}

// newUser returns the API v1 representation of the resource
func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Links: UserLinks{
			Self:         fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?user=%s", url, model.ID),
			Budgets:      fmt.Sprintf("%s/v1/budgets?user=%s", url, model.ID),
		},
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"this username is already in use"` // The error, if any occurred
	Data  *User   `json:"data"`                                            // The User data
}
