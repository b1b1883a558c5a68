package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/biblioteca-web/internal/application/dto"
)

// NewValidator validador compartido por los handlers. Los errores se reportan
// con el nombre JSON del campo.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(userFormRules, dto.UserForm{})
	return v
}

// userFormRules password obligatorio solo en altas (ID == 0).
func userFormRules(sl validator.StructLevel) {
	f, ok := sl.Current().Interface().(dto.UserForm)
	if !ok {
		return
	}
	if f.ID == 0 && f.Password == "" {
		sl.ReportError(f.Password, "password", "Password", "required", "")
	}
}

// validationFields traduce los errores del validador a campo -> regla.
// Devuelve nil si err no es de validación.
func validationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
