package dataset

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their json names so messages match the dataset file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks record fields and identifier uniqueness.
// It does not resolve references; that is the join's job.
func Validate(ds model.Dataset) error {
	fields := make(map[string]string)

	if err := validate.Struct(ds); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("failed to validate dataset: %w", err)
		}
		for _, fe := range verrs {
			fields[fieldPath(fe)] = formatFieldError(fe)
		}
	}

	checkDuplicates(fields, "users", len(ds.Users), func(i int) int { return ds.Users[i].ID })
	checkDuplicates(fields, "categories", len(ds.Categories), func(i int) int { return ds.Categories[i].ID })
	checkDuplicates(fields, "products", len(ds.Products), func(i int) int { return ds.Products[i].ID })

	if len(fields) > 0 {
		return &common.ValidationError{Fields: fields}
	}
	return nil
}

func checkDuplicates(fields map[string]string, collection string, n int, idAt func(int) int) {
	seen := make(map[int]int, n)
	for i := 0; i < n; i++ {
		id := idAt(i)
		if first, ok := seen[id]; ok {
			fields[fmt.Sprintf("%s[%d].id", collection, i)] = fmt.Sprintf("duplicates %s[%d] (%v %d)", collection, first, common.ErrDuplicateID, id)
			continue
		}
		seen[id] = i
	}
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed '%s' with parameter '%s'", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed '%s'", fe.Tag())
	}
}
