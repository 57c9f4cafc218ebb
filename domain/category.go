package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the predicted credit-quality tier. The zero value is not a valid category.
type Category string

const (
	CategoryExcellent Category = "EXCELLENT"
	CategoryGood      Category = "GOOD"
	CategoryFair      Category = "FAIR"
	CategoryPoor      Category = "POOR"
)

// Categories lists every category from best to worst. Tie-breaking relies on this order.
var Categories = []Category{
	CategoryExcellent,
	CategoryGood,
	CategoryFair,
	CategoryPoor,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryExcellent, CategoryGood, CategoryFair, CategoryPoor:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory accepts any letter case, e.g. "good" or "Good".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
