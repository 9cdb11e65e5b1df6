package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/deck/config"
)

// ApplyOverrides replaces the keys of every key.Binding field of km whose
// snake_case name appears in overrides. km must be a pointer to a struct;
// embedded structs are walked too. Help descriptions are preserved.
//
// Example:
//
//	km := keymap.Default()
//	ApplyOverrides(&km, config.KeysConfig{"toggle_notes": {"s"}}) // km.ToggleNotes
func ApplyOverrides(km interface{}, overrides config.KeysConfig) {
	if len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	applyOverridesRecursive(v, overrides)
}

func applyOverridesRecursive(v reflect.Value, overrides config.KeysConfig) {
	t := v.Type()
	bindingType := reflect.TypeOf(key.Binding{})

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			applyOverridesRecursive(field, overrides)
			continue
		}

		if fieldType.Type != bindingType {
			continue
		}

		keys, ok := overrides[camelToSnake(fieldType.Name)]
		if !ok || len(keys) == 0 {
			continue
		}

		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKey(keys[0]), current.Help().Desc),
		)))
	}
}

// helpKey returns the label shown in help for a bubbletea key name.
func helpKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "right":
		return "→"
	case "left":
		return "←"
	}
	return k
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: ToggleNotes -> toggle_notes, Advance -> advance
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
