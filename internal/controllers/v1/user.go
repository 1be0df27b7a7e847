package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUsers)
		r.POST("", CreateUser)
	}

	{
		r.OPTIONS("/login", OptionsLogin)
		r.POST("/login", Login)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", GetUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUsers(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Register user
// @Description	Creates a new user with the submitted username and password
// @Tags			Users
// @Accept		json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users [post]
func CreateUser(c *gin.Context) {
	var editable UserEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	user, err := models.RegisterUser(models.DB, editable.Name, editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Login
// @Description	Verifies the submitted credentials and returns the user
// @Tags			Users
// @Accept		json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"Credentials"
// @Router			/v1/users/login [post]
func Login(c *gin.Context) {
	var editable UserEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	user, err := models.AuthenticateUser(models.DB, editable.Name, editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [get]
func GetUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
