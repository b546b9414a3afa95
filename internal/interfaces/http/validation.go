package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"

	"github.com/arquetipo/clientes-api/internal/application/dto"
)

var validate = newValidator()

// newValidator usa los nombres json/query en los errores, que son los que ve el cliente.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// los nombres se recortan al mapear: "   " quedaría guardado como ""
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	return v
}

// validateStruct devuelve los problemas de validación de s (nil si es válido).
func validateStruct(s any) []dto.ValidationIssue {
	return toIssues(validate.Struct(s), "")
}

// validateBatch valida cada elemento del lote; el campo se prefija con el índice ("[1].email").
func validateBatch[T any](items []T) []dto.ValidationIssue {
	var issues []dto.ValidationIssue
	for i := range items {
		issues = append(issues, toIssues(validate.Struct(items[i]), fmt.Sprintf("[%d].", i))...)
	}
	return issues
}

func toIssues(err error, prefix string) []dto.ValidationIssue {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.ValidationIssue{{Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}
	issues := make([]dto.ValidationIssue, 0, len(verrs))
	for _, e := range verrs {
		issues = append(issues, dto.ValidationIssue{
			Field:   prefix + e.Field(),
			Message: validationMessage(e),
		})
	}
	return issues
}

// validationError responde 400 VALIDATION con el detalle por campo.
func validationError(c *fiber.Ctx, issues []dto.ValidationIssue) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "la petición no pasó la validación",
		Details: issues,
	})
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obligatorio"
	case "notblank":
		return "no puede estar en blanco"
	case "email":
		return "email con formato inválido"
	case "datetime":
		return "fecha con formato inválido, se espera YYYY-MM-DD"
	case "min":
		if e.Kind() == reflect.String {
			return "debe tener al menos " + e.Param() + " caracteres"
		}
		return "debe ser al menos " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "debe tener como máximo " + e.Param() + " caracteres"
		}
		return "debe ser como máximo " + e.Param()
	case "gt":
		return "debe ser mayor que " + e.Param()
	default:
		return "valor inválido"
	}
}
