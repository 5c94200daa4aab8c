package order

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Product is the listing as it looked when the order was placed. Later edits
// or deletion of the listing do not affect existing orders.
type Product struct {
	id    string
	title string
	image string
	price int64
}

func NewProduct(id, title, image string, price int64) (Product, error) {
	p := Product{
		id:    strings.TrimSpace(id),
		title: strings.TrimSpace(title),
		image: strings.TrimSpace(image),
		price: price,
	}

	var err error
	if p.id == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("product id"))
	}
	if p.title == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("product title"))
	}
	if err != nil {
		return Product{}, err
	}

	return p, nil
}

func (p Product) ID() string    { return p.id }
func (p Product) Title() string { return p.title }
func (p Product) Image() string { return p.image }
func (p Product) Price() int64  { return p.price }
