package controllers

import (
	"net/http"
	"strconv"

	"github.com/bkormos/portico/app/jobs"
	"github.com/bkormos/portico/app/repositories"
	"github.com/bkormos/portico/pkg/bind"
	"github.com/bkormos/portico/pkg/logger"
	"github.com/bkormos/portico/pkg/queue"
	"github.com/bkormos/portico/pkg/response"
	"github.com/bkormos/portico/pkg/router"
	"github.com/bkormos/portico/pkg/session"
	"github.com/bkormos/portico/pkg/view"
)

type ContactController struct {
	base
	messages *repositories.MessageRepository
}

func NewContactController(views *view.Engine, sessions *session.Manager, messages *repositories.MessageRepository) *ContactController {
	return &ContactController{
		base:     base{views: views, sessions: sessions},
		messages: messages,
	}
}

type contactInput struct {
	Name  string `form:"name" validate:"required,max=255"`
	Email string `form:"email" validate:"required,email,max=255"`
	Body  string `form:"message" validate:"required"`
}

func (c *ContactController) Show(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "contact", nil)
}

// Submit stores a contact message for the authenticated sender and queues
// a notification mail to the site admin. The mail is best-effort: a
// delivery failure never reaches the submitting user.
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var in contactInput
	errs, err := bind.Form(r, &in)
	if err != nil || len(errs) > 0 {
		c.render(w, r, "contact", view.Data{"Error": bind.First(errs)})
		return
	}

	ident := c.sessions.Current(r)
	var userID *uint
	if ident != nil {
		userID = &ident.UserID
	}

	msg, err := c.messages.Create(userID, in.Name, in.Email, in.Body)
	if err != nil {
		logger.WithCtx(r.Context()).Error("store message", "error", err)
		c.render(w, r, "contact", view.Data{"Error": "Could not save your message, please try again."})
		return
	}

	if err := queue.Dispatch(&jobs.MessageReceivedJob{
		MessageID: msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Body:      msg.Body,
	}); err != nil {
		logger.WithCtx(r.Context()).Warn("dispatch notification", "error", err)
	}

	c.render(w, r, "contact", view.Data{"Success": "Your message has been sent and saved."})
}

func (c *ContactController) List(w http.ResponseWriter, r *http.Request) {
	rows, err := c.messages.ListAll()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list messages", "error", err)
		response.ServerError(w)
		return
	}
	c.render(w, r, "messages", view.Data{"Messages": rows})
}

func (c *ContactController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(router.Param(r, "id"), 10, 64)
	if err != nil {
		response.NotFound(w)
		return
	}

	if err := c.messages.Delete(uint(id)); err != nil {
		logger.WithCtx(r.Context()).Error("delete message", "id", id, "error", err)
	}
	response.Redirect(w, r, "/messages")
}
