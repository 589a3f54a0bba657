package config

import (
	"fmt"
	"os"
	"reflect"
)

// processStructFields walks through struct fields to override config with env
// vars. Every configurable field in Config is a string; nested sections are
// handled by recursion.
func processStructFields(s interface{}) error {
	val := reflect.ValueOf(s)

	// If pointer, get the underlying element
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	// Only process structs
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Recurse into nested config sections
		if field.Kind() == reflect.Struct {
			if err := processStructFields(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envTag)
		if !exists {
			continue
		}

		if field.Kind() != reflect.String || !field.CanSet() {
			return fmt.Errorf("field %s cannot be set from env var %s", fieldType.Name, envTag)
		}
		field.SetString(envValue)
	}

	return nil
}
