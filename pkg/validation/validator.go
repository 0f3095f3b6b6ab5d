package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

// Validate é a instância compartilhada pelos handlers, com as regras do domínio registradas
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Mensagens usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("platform", validatePlatform)

	return v
}

// validatePlatform aceita string ou domain.Platform conhecidos, sem diferenciar maiúsculas
func validatePlatform(fl validator.FieldLevel) bool {
	_, err := domain.ParsePlatform(fl.Field().String())
	return err == nil
}

// Struct valida e devolve os campos inválidos no formato campo -> regra
func Struct(s any) (map[string]string, error) {
	err := Validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fieldPath(fe.Namespace())] = rule
	}
	return fields, err
}

// fieldPath remove o nome do struct raiz do namespace
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
