package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidPriceBound = errors.New("price bound must be numeric")
	ErrNegativeCount     = errors.New("top seller count cannot be negative")
	ErrEmptyProductName  = errors.New("product name cannot be empty")
	ErrNegativePrice     = errors.New("product price cannot be negative")
	ErrEmptyImageHref    = errors.New("image href cannot be empty")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
	ErrImageNotFound   = errors.New("image not found")
)
