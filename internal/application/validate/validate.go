package validate

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validador compartido por el alta individual y la carga masiva: ambas rutas
// deben rechazar exactamente las mismas filas.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Reportar errores con el nombre de campo del formulario (tag form),
	// no con el nombre del struct Go.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// La regla numeric de la librería deja pasar decimales y signos
	// ("1.5", "+57"); zip_code y phone exigen la misma conversión que
	// luego aplica quien construye la entidad.
	_ = val.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil
	})
	return val
}

// Struct valida un DTO con tags `validate` y devuelve un mapa
// campo → mensaje. Devuelve nil si la entrada es válida.
func Struct(s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_form": err.Error()}
	}
	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		Append(out, fe.Field(), message(fe))
	}
	return out
}

// Append agrega un mensaje a un campo, concatenando con "; " si ya tenía
// errores (mismo formato que el reporte de filas rechazadas).
func Append(errs map[string]string, field, msg string) {
	if prev, ok := errs[field]; ok && prev != "" {
		errs[field] = prev + "; " + msg
		return
	}
	errs[field] = msg
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "este campo es obligatorio"
	case "max":
		return "supera el largo máximo de " + fe.Param() + " caracteres"
	case "min":
		return "requiere al menos " + fe.Param() + " caracteres"
	case "email":
		return "no es un email válido"
	case "integer":
		return "debe ser un número entero"
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}
