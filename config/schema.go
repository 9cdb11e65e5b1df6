package config

import (
	"encoding/json"
	"path"
	"reflect"
	"strings"

	"github.com/grovetools/deck/errors"
	"github.com/grovetools/deck/schema"
	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for deck.yml from the Config struct.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
		Namer:        qualifiedName,
	}

	s := r.Reflect(&Config{})
	s.Title = "Deck Configuration"
	s.Description = "Schema for deck.yml and deck.toml."

	return json.MarshalIndent(s, "", "  ")
}

// qualifiedName prefixes types from other packages with their package name
// so logging.Config does not collide with the inlined root Config.
func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" || t.PkgPath() == configPkg {
		return t.Name()
	}
	pkg := path.Base(t.PkgPath())
	return strings.ToUpper(pkg[:1]) + pkg[1:] + t.Name()
}

var configPkg = reflect.TypeOf(Config{}).PkgPath()

// ValidateFile checks a config file against the generated schema and then
// against the semantic rules in Validate.
func ValidateFile(path string) (*Config, error) {
	raw, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	schemaData, err := GenerateSchema()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to generate schema")
	}
	v, err := schema.NewValidator(schemaData)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to compile schema")
	}
	if err := v.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed").
			WithDetail("path", path)
	}

	return Load(path)
}
