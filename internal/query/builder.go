// Package query translates product listing parameters into a MongoDB
// filter, sort order and page window, and computes the page-scoped
// category/brand facets of the response.
package query

import (
	"net/url"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"gadget-galaxy/internal/models"
)

const (
	DefaultPage = 1
	DefaultSize = 12
)

// SortMode selects the listing order.
type SortMode int

const (
	// SortNewest orders by creation time, newest first.
	SortNewest SortMode = iota
	// SortPriceAsc orders by selling price, cheapest first.
	SortPriceAsc
	// SortPriceDesc orders by selling price, most expensive first.
	SortPriceDesc
)

// Params are the parsed listing parameters. An empty string means the
// corresponding filter is not applied.
type Params struct {
	SellerEmail string
	Search      string
	Type        string
	Category    string
	Brand       string
	Sort        SortMode
	Page        int
	Size        int
}

// FromValues parses listing parameters from the request query string.
// Absent or malformed page/size values fall back to the defaults and
// never produce an error; unknown sort values mean newest-first.
func FromValues(values url.Values) Params {
	p := Params{
		SellerEmail: values.Get("email"),
		Search:      values.Get("search"),
		Type:        values.Get("type"),
		Category:    values.Get("category"),
		Brand:       values.Get("brand"),
		Page:        DefaultPage,
		Size:        DefaultSize,
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		p.Page = page
	}
	if size, err := strconv.Atoi(values.Get("size")); err == nil && size > 0 {
		p.Size = size
	}

	switch values.Get("sort") {
	case "asc":
		p.Sort = SortPriceAsc
	case "desc":
		p.Sort = SortPriceDesc
	default:
		p.Sort = SortNewest
	}

	return p
}

// Filter builds the match predicate. Exact-match filters combine with
// logical AND; the search term adds a case-insensitive substring match
// over title, category and type, OR-ed across the three fields and
// AND-ed with the rest.
func (p Params) Filter() bson.M {
	filter := bson.M{}

	if p.SellerEmail != "" {
		filter["sellerEmail"] = p.SellerEmail
	}

	if p.Search != "" {
		// QuoteMeta keeps this a substring match even when the term
		// contains regex metacharacters.
		pattern := regexp.QuoteMeta(p.Search)
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"category": bson.M{"$regex": pattern, "$options": "i"}},
			{"type": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	if p.Type != "" {
		filter["type"] = p.Type
	}
	if p.Category != "" {
		filter["category"] = p.Category
	}
	if p.Brand != "" {
		filter["brand"] = p.Brand
	}

	return filter
}

// SortOrder builds the sort document for the listing.
func (p Params) SortOrder() bson.D {
	switch p.Sort {
	case SortPriceAsc:
		return bson.D{{Key: "sellingPrice", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "sellingPrice", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// Skip is the number of documents before the requested page window.
// Page is 1-indexed, so this is never negative.
func (p Params) Skip() int64 {
	return int64((p.Page - 1) * p.Size)
}

// Limit is the page window size.
func (p Params) Limit() int64 {
	return int64(p.Size)
}

// Categories returns the distinct category values of the given page of
// products, in first-seen order. The scope is deliberately the page
// just fetched, not the full filtered set.
func Categories(products []models.Product) []string {
	return distinct(products, func(p models.Product) string { return p.Category })
}

// Brands returns the distinct brand values of the given page of
// products, in first-seen order.
func Brands(products []models.Product) []string {
	return distinct(products, func(p models.Product) string { return p.Brand })
}

func distinct(products []models.Product, field func(models.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	values := make([]string, 0, len(products))
	for _, p := range products {
		v := field(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
