package flagx

import (
	"reflect"
	"strconv"
	"time"

	"github.com/eggybyte-technology/flagx/errors"
	"github.com/eggybyte-technology/flagx/internal/registry"
)

// Bind decodes the explicit values of cfg into a struct using flag tags.
// Fields tagged `flag:"<id>"` receive the explicitly set value for that
// identifier when present and assignable; absent identifiers fall back to
// the field's `default` tag, parsed from its string form. Untagged struct
// fields are recursed into; unexported fields are skipped.
//
//	type Features struct {
//		Verbose bool   `flag:"app/verbose" default:"false"`
//		Region  string `flag:"app/region" default:"us-east-1" validate:"required"`
//	}
func Bind(cfg Config, target any) error {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Struct {
		return errors.New(errors.CodeInvalidArgument, "target must be a pointer to struct")
	}

	return bindStructFields(cfg.explicit(), targetValue.Elem())
}

// bindStructFields recursively binds explicit flag values to struct fields.
func bindStructFields(values registry.Values, structValue reflect.Value) error {
	structType := structValue.Type()

	for i := 0; i < structValue.NumField(); i++ {
		field := structValue.Field(i)
		fieldType := structType.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		flagTag := fieldType.Tag.Get("flag")
		if flagTag == "" {
			// Handle nested structs (embedded or regular)
			if field.Kind() == reflect.Struct {
				if err := bindStructFields(values, field); err != nil {
					return errors.Wrapf(errors.CodeInvalidArgument, "bind", err, "failed to bind nested struct %s", fieldType.Name)
				}
			}
			continue
		}

		if raw, ok := values[flagTag]; ok {
			rawValue := reflect.ValueOf(raw)
			if !rawValue.Type().AssignableTo(field.Type()) {
				return errors.Newf(errors.CodeInvalidArgument,
					"flag %s holds %s, not assignable to field %s (%s)",
					flagTag, rawValue.Type(), fieldType.Name, field.Type())
			}
			field.Set(rawValue)
			continue
		}

		if defaultValue := fieldType.Tag.Get("default"); defaultValue != "" {
			if err := setFieldValue(field, defaultValue); err != nil {
				return errors.Wrapf(errors.CodeInvalidArgument, "bind", err, "failed to set field %s", fieldType.Name)
			}
		}
	}

	return nil
}

// setFieldValue sets a field value from its string form.
func setFieldValue(field reflect.Value, value string) error {
	if value == "" {
		return nil // Keep zero value
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			duration, err := time.ParseDuration(value)
			if err != nil {
				return err
			}
			field.SetInt(int64(duration))
		} else {
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return err
			}
			field.SetInt(intValue)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(uintValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(boolValue)
	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(floatValue)
	default:
		return errors.Newf(errors.CodeInvalidArgument, "unsupported field type: %s", field.Kind())
	}

	return nil
}
