package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/epi-console/pkg/docbr"
)

// ValidationError primer campo inválido de un DTO más el detalle de todos los campos.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// RequestValidator valida los DTOs de entrada con las etiquetas `validate`.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator registra los nombres JSON de los campos y las reglas notblank, cpf y cnpj.
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return docbr.ValidateCPF(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return docbr.ValidateCNPJ(fl.Field().String()) == nil
	})
	return &RequestValidator{v: v}
}

// Validate devuelve *ValidationError si algún campo no cumple sus reglas.
func (rv *RequestValidator) Validate(in any) error {
	err := rv.v.Struct(in)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return &ValidationError{Message: "entrada inválida"}
	}
	out := &ValidationError{Fields: make(map[string]string, len(errs))}
	for i, fe := range errs {
		msg := rv.message(fe)
		out.Fields[fe.Field()] = msg
		if i == 0 {
			out.Field = fe.Field()
			out.Message = msg
		}
	}
	return out
}

func (rv *RequestValidator) message(fe validator.FieldError) string {
	// cases.Caser no es seguro entre goroutines: uno por llamada.
	name := cases.Title(language.BrazilianPortuguese).String(strings.ReplaceAll(fe.Field(), "_", " "))
	switch fe.Tag() {
	case "required", "notblank":
		return name + " es requerido"
	case "email":
		return name + " debe ser un email válido"
	case "cpf":
		return name + " no es un CPF válido"
	case "cnpj":
		return name + " no es un CNPJ válido"
	case "datetime":
		return name + " debe tener el formato YYYY-MM-DD"
	case "oneof":
		return name + " debe ser uno de: " + fe.Param()
	case "min":
		return name + " debe ser al menos " + fe.Param()
	case "max":
		return name + " debe ser como máximo " + fe.Param()
	default:
		return name + " es inválido"
	}
}
