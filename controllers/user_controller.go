package controllers

import (
	"errors"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/pkg/resp"
	"github.com/seanhu1010/vue3-element-backend/repository"
	"github.com/seanhu1010/vue3-element-backend/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Avatar     string `json:"avatar"`
	Gender     string `json:"gender" binding:"omitempty,oneof=male female unknown"`
	Occupation string `json:"occupation"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileUpdateRequest struct {
	Avatar     string `json:"avatar"`
	Gender     string `json:"gender" binding:"omitempty,oneof=male female unknown"`
	Occupation string `json:"occupation"`
}

type UserController struct {
	Auth *services.AuthService
	Repo *repository.UserRepository
}

func NewUserController(auth *services.AuthService, repo *repository.UserRepository) *UserController {
	return &UserController{Auth: auth, Repo: repo}
}

func userResponse(u *entity.User) gin.H {
	out := gin.H{
		"username":    u.Username,
		"date_joined": u.DateJoined.Format(dateLayout),
		"avatar":      "",
		"gender":      "",
		"occupation":  "",
	}
	if u.Profile != nil {
		out["avatar"] = u.Profile.Avatar
		out["gender"] = u.Profile.Gender
		out["occupation"] = u.Profile.Occupation
	}
	return out
}

// POST /user-resource/register
func (u *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	_, err := u.Auth.Register(req.Username, req.Password, req.Avatar, req.Gender, req.Occupation)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials),
			errors.Is(err, services.ErrUsernameTaken):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"msg": "Registration successful."})
}

// POST /user-resource/login
func (u *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, _, err := u.Auth.Login(req.Username, req.Password)
	if err != nil {
		resp.BadRequest(c, services.ErrInvalidCredentials.Error())
		return
	}
	resp.OK(c, gin.H{"msg": "Login successful.", "token": token})
}

// GET /user-resource
func (u *UserController) List(c *gin.Context) {
	users, err := u.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	resp.OK(c, out)
}

// GET /user-resource/:id
func (u *UserController) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := u.Repo.FindByID(id)
	if !firstOrNotFound(c, err, "user") {
		return
	}
	resp.OK(c, userResponse(user))
}

// PUT /user-resource/:id — profile fields only
func (u *UserController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := u.Repo.FindByID(id)
	if !firstOrNotFound(c, err, "user") {
		return
	}
	if user.Profile == nil {
		resp.BadRequest(c, "user has no profile")
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}
	if req.Occupation != "" {
		updates["occupation"] = req.Occupation
	}
	if len(updates) > 0 {
		if err := u.Repo.UpdateProfile(id, updates); err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	user, _ = u.Repo.FindByID(id)
	resp.OK(c, userResponse(user))
}

// DELETE /user-resource/:id — cascades to the profile
func (u *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := u.Repo.FindByID(id); !firstOrNotFound(c, err, "user") {
		return
	}
	if err := u.Repo.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}
