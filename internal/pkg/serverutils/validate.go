package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs a request body through its validate tags and
// folds any failures into a single client-facing message.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		failures := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			failures = append(failures, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(failures, ", "))
	}
	return err
}
