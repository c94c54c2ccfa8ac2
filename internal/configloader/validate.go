package configloader

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/yaklabco/mdcurate/pkg/config"
)

// ErrInvalidConfig wraps every configuration problem reported to the user.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks value ranges the YAML decoder cannot enforce.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	errs := validation.Errors{
		"links":    validateLinks(&cfg.Links),
		"validate": validateRules(&cfg.Validate),
	}.Filter()
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}

	return nil
}

func validateLinks(links *config.LinksConfig) error {
	return validation.ValidateStruct(links,
		validation.Field(&links.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&links.Delay, validation.Min(time.Duration(0))),
		validation.Field(&links.Report, validation.Required),
		validation.Field(&links.Categories, validation.By(func(value any) error {
			categories, _ := value.([]config.CategoryConfig)
			for _, category := range categories {
				if strings.TrimSpace(category.Label) == "" {
					return validation.NewError("mdcurate.config.category_label_required", "every category needs a label")
				}
				if len(category.Hosts) == 0 {
					return validation.NewError("mdcurate.config.category_hosts_required",
						fmt.Sprintf("category %q needs at least one host", category.Label))
				}
			}
			return nil
		})),
	)
}

func validateRules(rules *config.ValidateConfig) error {
	return validation.ValidateStruct(rules,
		validation.Field(&rules.MaxNameLength, validation.Required, validation.Min(1)),
		validation.Field(&rules.RequiredSections, validation.Each(validation.Required)),
		validation.Field(&rules.ExemptSections, validation.Each(validation.Required)),
	)
}
