package common

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationDetails flattens validator errors into a field -> rule map
// suitable for the details slot of an error response.
func ValidationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return map[string]any{"fields": fields}
}
