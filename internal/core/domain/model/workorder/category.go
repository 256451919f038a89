package workorder

import (
	"fmt"
	"strings"

	"deliverytracker/internal/pkg/errs"
)

// Category is the request category of a work order. It decides which
// active and completed status variants the order goes through.
type Category int

const (
	// UnknownCategory is the zero value and never valid.
	UnknownCategory Category = iota

	// Standard is a regular furniture delivery, including marketplace subtypes.
	Standard

	// Collection is a return or pickup of furniture from the customer.
	Collection

	// Remediation is an on-site repair or processing visit.
	Remediation
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "Unknown",
		Standard:        "Standard",
		Collection:      "Collection",
		Remediation:     "Remediation",
	}
}

// categoryAliases maps normalized free-text request types to a category.
// Anything starting with "marketplace-" is handled separately as Standard.
var categoryAliases = map[string]Category{
	"standard":    Standard,
	"general":     Standard,
	"delivery":    Standard,
	"normal":      Standard,
	"marketplace": Standard,
	"collection":  Collection,
	"return":      Collection,
	"pickup":      Collection,
	"retrieval":   Collection,
	"remediation": Remediation,
	"processing":  Remediation,
	"repair":      Remediation,
}

// ParseCategory normalizes a free-text request type into a Category.
func ParseCategory(requestType string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(requestType))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)

	if key == "" {
		return UnknownCategory, errs.NewValueIsRequiredError("requestCategory")
	}
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "marketplace-") {
		return Standard, nil
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"requestCategory",
		fmt.Errorf("%q is not a known request category", requestType),
	)
}

// Validate returns an error for UnknownCategory and out-of-range values.
func (c Category) Validate() error {
	if _, ok := categoryStatuses[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
