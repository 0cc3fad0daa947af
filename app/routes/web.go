// Package routes builds the HTTP route table.
package routes

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/bkormos/portico/app/controllers"
	"github.com/bkormos/portico/app/repositories"
	"github.com/bkormos/portico/app/services"
	"github.com/bkormos/portico/app/views"
	"github.com/bkormos/portico/pkg/guard"
	"github.com/bkormos/portico/pkg/metrics"
	"github.com/bkormos/portico/pkg/middleware"
	"github.com/bkormos/portico/pkg/reqid"
	"github.com/bkormos/portico/pkg/router"
	"github.com/bkormos/portico/pkg/session"
	"github.com/bkormos/portico/pkg/view"
)

// Deps holds everything the web routes need. The database handle and the
// session manager are passed in explicitly so tests can swap them.
type Deps struct {
	DB       *gorm.DB
	Views    *view.Engine
	Sessions *session.Manager
}

// Web wires controllers, guards and shared middleware into a router.
func Web(deps Deps) *router.Router {
	users := repositories.NewUserRepository(deps.DB)
	messages := repositories.NewMessageRepository(deps.DB)
	products := repositories.NewProductRepository(deps.DB)

	home := controllers.NewHomeController(deps.Views, deps.Sessions, users, messages, products)
	auth := controllers.NewAuthController(deps.Views, deps.Sessions, services.NewAuthService(users))
	contact := controllers.NewContactController(deps.Views, deps.Sessions, messages)
	crud := controllers.NewProductController(deps.Views, deps.Sessions, products)

	r := router.New()
	r.Use(
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		metrics.Middleware(),
		deps.Sessions.Middleware,
	)

	r.Get("/", "home.index", home.Index)
	r.Get("/database", "home.database", home.Database)

	r.Get("/register", "auth.register.show", auth.ShowRegister)
	r.Post("/register", "auth.register", auth.Register)
	r.Get("/login", "auth.login.show", auth.ShowLogin)
	r.Post("/login", "auth.login", auth.Login)
	r.Get("/logout", "auth.logout", auth.Logout)

	r.Get("/contact", "contact.show", contact.Show)

	member := guard.RequireAuth(deps.Sessions)
	r.Post("/contact", "contact.submit", contact.Submit, member)
	r.Get("/messages", "messages.index", contact.List, member)

	admin := r.Group("/", guard.RequireAdmin(deps.Sessions))
	admin.Get("/admin", "admin.index", home.Admin)
	admin.Post("/messages/{id}/delete", "messages.delete", contact.Delete)
	admin.Get("/crud", "products.index", crud.Index)
	admin.Post("/crud", "products.create", crud.Create)
	admin.Post("/crud/{id}/update", "products.update", crud.Update)
	admin.Post("/crud/{id}/delete", "products.delete", crud.Delete)

	r.Handle("/metrics", metrics.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(views.Static()))))

	return r
}
