package controller

import (
	"skillpass/auth"
	"skillpass/repository"
	"skillpass/service"
	"skillpass/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService: service.NewUserService(db),
	}
}

func setupUserController(db *gorm.DB) []RouteInfo {
	e := NewUserController(db)
	routes := []RouteInfo{
		{Method: "POST", Path: "/register", HandlerFunc: e.registerHandler()},
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/logout", HandlerFunc: e.logoutHandler()},
		{Method: "GET", Path: "/users/self", HandlerFunc: e.getSelfHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/users/self", HandlerFunc: e.updateSelfHandler(), Authenticated: true},
		{Method: "GET", Path: "/users", HandlerFunc: e.getAllUsersHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin, repository.RoleOrganizer}},
		{Method: "PATCH", Path: "/users/:user_id", HandlerFunc: e.changeRoleHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
	}
	return routes
}

type UserRegister struct {
	Email                  string `json:"email" binding:"required"`
	Password               string `json:"password" binding:"required"`
	FirstName              string `json:"first_name" binding:"required"`
	LastName               string `json:"last_name" binding:"required"`
	MiddleName             string `json:"middle_name"`
	Organization           string `json:"organization"`
	AgreedToTerms          bool   `json:"agreed_to_terms"`
	AgreedToDataProcessing bool   `json:"agreed_to_data_processing"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserUpdate struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MiddleName   string `json:"middle_name"`
	Organization string `json:"organization"`
}

type RoleUpdate struct {
	Role repository.UserRole `json:"role" binding:"required"`
}

type UserResponse struct {
	Id           int                 `json:"id"`
	Email        string              `json:"email"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	MiddleName   string              `json:"middle_name,omitempty"`
	Organization string              `json:"organization,omitempty"`
	Role         repository.UserRole `json:"role"`
}

func toUserResponse(user *repository.User) *UserResponse {
	return &UserResponse{
		Id:           user.Id,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		MiddleName:   user.MiddleName,
		Organization: user.Organization,
		Role:         user.Role,
	}
}

// @id Register
// @Description Creates a participant account
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserRegister true "Account to create"
// @Success 201 {object} UserResponse
// @Router /register [post]
func (e *UserController) registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body UserRegister
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if !body.AgreedToTerms || !body.AgreedToDataProcessing {
			c.JSON(400, gin.H{"error": "Terms and data processing agreement are required"})
			return
		}
		user, err := e.userService.Register(&repository.User{
			Email:                  body.Email,
			FirstName:              body.FirstName,
			LastName:               body.LastName,
			MiddleName:             body.MiddleName,
			Organization:           body.Organization,
			Role:                   repository.RoleParticipant,
			AgreedToTerms:          body.AgreedToTerms,
			AgreedToDataProcessing: body.AgreedToDataProcessing,
		}, body.Password)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toUserResponse(user))
	}
}

// @id Login
// @Description Authenticates a user and sets the auth cookie
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "Credentials"
// @Success 200 {object} UserResponse
// @Router /login [post]
func (e *UserController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body UserLogin
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.Authenticate(body.Email, body.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}
		token, err := auth.CreateToken(user)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.SetCookie("auth", token, 60*60*24*7, "/", "", false, true)
		c.JSON(200, toUserResponse(user))
	}
}

// @id Logout
// @Description Clears the auth cookie
// @Tags user
// @Success 204
// @Router /logout [post]
func (e *UserController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth", "", -1, "/", "", false, true)
		c.Status(204)
	}
}

// @id GetSelf
// @Description Fetches the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} UserResponse
// @Router /users/self [get]
func (e *UserController) getSelfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserById(currentUserId(c))
		if err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id UpdateSelf
// @Description Updates the authenticated user's profile
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserUpdate true "Profile fields to update"
// @Success 200 {object} UserResponse
// @Router /users/self [patch]
func (e *UserController) updateSelfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body UserUpdate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.UpdateProfile(currentUserId(c), &repository.User{
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			MiddleName:   body.MiddleName,
			Organization: body.Organization,
		})
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id GetAllUsers
// @Description Fetches all users
// @Tags user
// @Produce json
// @Success 200 {array} UserResponse
// @Router /users [get]
func (e *UserController) getAllUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := e.userService.GetAllUsers()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(users, toUserResponse))
	}
}

// @id ChangeRole
// @Description Changes a user's role
// @Tags user
// @Accept json
// @Produce json
// @Param user_id path int true "User Id"
// @Param role body RoleUpdate true "New role"
// @Success 200 {object} UserResponse
// @Router /users/{user_id} [patch]
func (e *UserController) changeRoleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var body RoleUpdate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.ChangeRole(userId, body.Role)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "User not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}
