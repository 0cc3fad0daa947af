package controllers

import (
	"net/http"

	"github.com/bkormos/portico/app/repositories"
	"github.com/bkormos/portico/pkg/logger"
	"github.com/bkormos/portico/pkg/session"
	"github.com/bkormos/portico/pkg/view"
)

type HomeController struct {
	base
	users    *repositories.UserRepository
	messages *repositories.MessageRepository
	products *repositories.ProductRepository
}

func NewHomeController(
	views *view.Engine,
	sessions *session.Manager,
	users *repositories.UserRepository,
	messages *repositories.MessageRepository,
	products *repositories.ProductRepository,
) *HomeController {
	return &HomeController{
		base:     base{views: views, sessions: sessions},
		users:    users,
		messages: messages,
		products: products,
	}
}

func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "index", nil)
}

// Database renders the read-only aggregate of all three tables. The three
// reads are independent; they simply run one after another. A failing read
// leaves its section empty and shows an error line.
func (c *HomeController) Database(w http.ResponseWriter, r *http.Request) {
	data := view.Data{}
	var failed bool

	users, err := c.users.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("aggregate view: users", "error", err)
		failed = true
	}
	data["Users"] = users

	messages, err := c.messages.ListAll()
	if err != nil {
		logger.WithCtx(r.Context()).Error("aggregate view: messages", "error", err)
		failed = true
	}
	data["Messages"] = messages

	products, err := c.products.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("aggregate view: products", "error", err)
		failed = true
	}
	data["Products"] = products

	if failed {
		data["Error"] = "Some data could not be loaded."
	}
	c.render(w, r, "database", data)
}

func (c *HomeController) Admin(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "admin", nil)
}
