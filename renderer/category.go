package renderer

import (
	"github.com/mkalungi/orion"
)

// CategoryRow is one category of the per-category report.
type CategoryRow struct {
	Category string
	Net      string
}

// Categories is the per-category report view.
type Categories struct {
	Rows []CategoryRow
}

// NewCategories builds the per-category view, categories in ascending
// order, blank categories under the Uncategorized label.
func NewCategories(records []orion.Record, currency string) *Categories {
	byCategory := orion.AggregateByCategory(records)
	v := &Categories{}
	for _, key := range orion.CategoryKeys(byCategory) {
		v.Rows = append(v.Rows, CategoryRow{
			Category: key,
			Net:      orion.SignedMoney(byCategory[key], currency),
		})
	}
	return v
}

// CategoriesMarkdown renders the per-category view to a markdown string.
func CategoriesMarkdown(v *Categories) string {
	return renderTemplate("category", "category.md", nil, v)
}
