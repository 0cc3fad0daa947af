package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bkormos/portico/app/repositories"
	"github.com/bkormos/portico/pkg/bind"
	"github.com/bkormos/portico/pkg/logger"
	"github.com/bkormos/portico/pkg/response"
	"github.com/bkormos/portico/pkg/router"
	"github.com/bkormos/portico/pkg/session"
	"github.com/bkormos/portico/pkg/view"
)

type ProductController struct {
	base
	products *repositories.ProductRepository
}

func NewProductController(views *view.Engine, sessions *session.Manager, products *repositories.ProductRepository) *ProductController {
	return &ProductController{
		base:     base{views: views, sessions: sessions},
		products: products,
	}
}

type productInput struct {
	Name        string `form:"name" validate:"required,max=255"`
	Price       string `form:"price" validate:"required,numeric,gte=0"`
	Description string `form:"description" validate:"nullable"`
}

func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products", "error", err)
		response.ServerError(w)
		return
	}

	data := view.Data{"Products": products}
	if msg, ok := c.sessions.PopFlash(r, "crud_error"); ok {
		data["Error"] = msg
	}
	c.render(w, r, "crud", data)
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	in, price, ok := c.parseInput(w, r)
	if !ok {
		return
	}

	if _, err := c.products.Create(in.Name, price, in.Description); err != nil {
		c.storeError(w, r, err)
		return
	}
	response.Redirect(w, r, "/crud")
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(router.Param(r, "id"), 10, 64)
	if err != nil {
		response.NotFound(w)
		return
	}

	in, price, ok := c.parseInput(w, r)
	if !ok {
		return
	}

	if err := c.products.Update(uint(id), in.Name, price, in.Description); err != nil {
		c.storeError(w, r, err)
		return
	}
	response.Redirect(w, r, "/crud")
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(router.Param(r, "id"), 10, 64)
	if err != nil {
		response.NotFound(w)
		return
	}

	if err := c.products.Delete(uint(id)); err != nil {
		logger.WithCtx(r.Context()).Error("delete product", "id", id, "error", err)
	}
	response.Redirect(w, r, "/crud")
}

// parseInput binds the product form. The price arrives as a string and is
// validated as numeric before conversion, so a malformed value is rejected
// at the boundary instead of being coerced.
func (c *ProductController) parseInput(w http.ResponseWriter, r *http.Request) (productInput, float64, bool) {
	var in productInput
	errs, err := bind.Form(r, &in)
	if err != nil || len(errs) > 0 {
		_ = c.sessions.Flash(r, "crud_error", bind.First(errs))
		response.Redirect(w, r, "/crud")
		return in, 0, false
	}

	price, err := strconv.ParseFloat(in.Price, 64)
	if err != nil {
		_ = c.sessions.Flash(r, "crud_error", "The price field must be a number.")
		response.Redirect(w, r, "/crud")
		return in, 0, false
	}
	return in, price, true
}

func (c *ProductController) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repositories.ErrInvalidPrice) {
		_ = c.sessions.Flash(r, "crud_error", "The price field must be a non-negative number.")
	} else {
		logger.WithCtx(r.Context()).Error("store product", "error", err)
		_ = c.sessions.Flash(r, "crud_error", "Could not save the product.")
	}
	response.Redirect(w, r, "/crud")
}
