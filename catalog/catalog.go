// Package catalog holds the Zava product catalog: records loaded from catalog
// data files, plus the keyword lookup used by the agent's product tool and the
// search-index pipeline.
package catalog

import (
	"strings"
)

// Product is one catalog record. The field names follow the catalog schema
// used by the search index.
type Product struct {
	ProductID          string  `json:"ProductID" yaml:"product_id" csv:"ProductID"`
	ProductName        string  `json:"ProductName" yaml:"name"`
	ProductCategory    string  `json:"ProductCategory" yaml:"category"`
	ProductDescription string  `json:"ProductDescription" yaml:"description"`
	ProductPrice       float64 `json:"ProductPrice" yaml:"price"`
	ProductImageURL    string  `json:"ProductImageURL,omitempty" yaml:"image_url"`
	PunchLine          string  `json:"punchLine,omitempty" yaml:"punch_line"`
}

// VectorContent derives the combined text field indexed for retrieval:
// name | category | description.
func (p Product) VectorContent() string {
	return p.ProductName + " | " + p.ProductCategory + " | " + p.ProductDescription
}

// Catalog is an in-memory product catalog.
type Catalog struct {
	products []Product
}

// New creates a catalog with the given products.
func New(products []Product) *Catalog {
	return &Catalog{products: products}
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Search returns products whose name, category or description contains any
// whitespace-separated term of the query, case-insensitively. An empty query
// returns the whole catalog.
func (c *Catalog) Search(query string) []Product {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return c.products
	}
	var matches []Product
	for _, product := range c.products {
		haystack := strings.ToLower(product.ProductName + " " + product.ProductCategory + " " + product.ProductDescription)
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				matches = append(matches, product)
				break
			}
		}
	}
	return matches
}

// Default returns the built-in sample catalog used when no catalog data files
// are configured.
func Default() *Catalog {
	return New([]Product{
		{
			ProductID:          "1",
			ProductName:        "Eco-Friendly Paint Roller",
			ProductCategory:    "Paint Roller",
			ProductDescription: "A high-quality, eco-friendly paint roller for smooth finishes.",
			PunchLine:          "Roll with the best, paint with the rest!",
			ProductPrice:       15.99,
		},
		{
			ProductID:          "2",
			ProductName:        "Premium Paint Brush Set",
			ProductCategory:    "Paint Brush",
			ProductDescription: "A set of premium paint brushes for detailed work and fine finishes.",
			PunchLine:          "Brush up your skills with our premium set!",
			ProductPrice:       25.49,
		},
		{
			ProductID:          "3",
			ProductName:        "All-Purpose Paint Tray",
			ProductCategory:    "Paint Tray",
			ProductDescription: "A durable paint tray suitable for all types of rollers and brushes.",
			PunchLine:          "Tray it, paint it, love it!",
			ProductPrice:       9.99,
		},
		{
			ProductID:          "4",
			ProductName:        "Standard Paint Roller",
			ProductCategory:    "Paint Roller",
			ProductDescription: "A reliable paint roller for smooth and even paint application.",
			PunchLine:          "Standard quality, extraordinary results!",
			ProductPrice:       12.99,
		},
		{
			ProductID:          "5",
			ProductName:        "Professional Paint Sprayer",
			ProductCategory:    "Paint Sprayer",
			ProductDescription: "Professional-grade paint sprayer for large projects and smooth finishes.",
			PunchLine:          "Spray your way to perfection!",
			ProductPrice:       89.99,
		},
	})
}
