package controllers

import (
	"errors"
	"net/http"

	"github.com/bkormos/portico/app/services"
	"github.com/bkormos/portico/pkg/bind"
	"github.com/bkormos/portico/pkg/logger"
	"github.com/bkormos/portico/pkg/response"
	"github.com/bkormos/portico/pkg/session"
	"github.com/bkormos/portico/pkg/view"
)

type AuthController struct {
	base
	auth *services.AuthService
}

func NewAuthController(views *view.Engine, sessions *session.Manager, auth *services.AuthService) *AuthController {
	return &AuthController{
		base: base{views: views, sessions: sessions},
		auth: auth,
	}
}

type credentialsInput struct {
	Username string `form:"username" validate:"required,max=255"`
	Password string `form:"password" validate:"required,max=255"`
}

func (c *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "register", nil)
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in credentialsInput
	errs, err := bind.Form(r, &in)
	if err != nil || len(errs) > 0 {
		c.render(w, r, "register", view.Data{"Error": bind.First(errs)})
		return
	}

	if _, err := c.auth.Register(in.Username, in.Password); err != nil {
		msg := "Something went wrong, please try again."
		if errors.Is(err, services.ErrDuplicateUsername) {
			msg = "That username is already taken."
		} else {
			logger.WithCtx(r.Context()).Error("registration failed", "error", err)
		}
		c.render(w, r, "register", view.Data{"Error": msg})
		return
	}

	response.Redirect(w, r, "/login")
}

func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "login", nil)
}

// Login verifies credentials and establishes the session. Unknown username
// and wrong password render the same error line.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in credentialsInput
	errs, err := bind.Form(r, &in)
	if err != nil || len(errs) > 0 {
		c.render(w, r, "login", view.Data{"Error": "Invalid username or password."})
		return
	}

	user, err := c.auth.Verify(in.Username, in.Password)
	if err != nil {
		c.render(w, r, "login", view.Data{"Error": "Invalid username or password."})
		return
	}

	ident := session.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
	if err := c.sessions.Login(w, ident); err != nil {
		logger.WithCtx(r.Context()).Error("session login failed", "error", err)
		c.render(w, r, "login", view.Data{"Error": "Something went wrong, please try again."})
		return
	}

	response.Redirect(w, r, "/")
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.sessions.Logout(w, r)
	response.Redirect(w, r, "/")
}
