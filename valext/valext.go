// Package valext plugs typehelper checks into
// go-playground/validator struct validation, so boundary structs with
// dynamically-typed fields can be guarded with tags:
//
//	type Payload struct {
//		Meta  any `validate:"typetag=object"`
//		Items any `validate:"typearray=number"`
//		ID    any `validate:"anytypetag=string number"`
//		Body  any `validate:"defined"`
//	}
//
// Each validation checks a single field value against a single
// descriptor; there is no structural schema semantics here.
package valext

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/michironoaware/typehelper"
)

// Register adds the typehelper validations to v:
//
//   - "typetag=<tag>": the field conforms to the tag
//   - "anytypetag=<tag> <tag>...": the field conforms to any tag
//   - "typearray=<tag>": the field is an array of the tag
//   - "defined": the field is not undefined
func Register(v *validator.Validate) error {
	for name, fn := range map[string]validator.Func{
		"typetag":    validateTypeTag,
		"anytypetag": validateAnyTypeTag,
		"typearray":  validateTypeArray,
		"defined":    validateDefined,
	} {
		if err := v.RegisterValidation(name, fn, true); err != nil {
			return err
		}
	}
	return nil
}

func validateTypeTag(fl validator.FieldLevel) bool {
	return typehelper.IsType(fieldValue(fl), typehelper.Tag(fl.Param()))
}

func validateAnyTypeTag(fl validator.FieldLevel) bool {
	params := strings.Fields(fl.Param())
	types := make([]typehelper.Resolvable, 0, len(params))
	for _, p := range params {
		types = append(types, typehelper.Tag(p))
	}
	return typehelper.IsAnyType(fieldValue(fl), types...)
}

func validateTypeArray(fl validator.FieldLevel) bool {
	return typehelper.IsTypeArray(fieldValue(fl), typehelper.Tag(fl.Param()))
}

func validateDefined(fl validator.FieldLevel) bool {
	return !typehelper.IsType(fieldValue(fl), typehelper.TypeUndefined)
}

// fieldValue unwraps the validated field. A field holding nothing at
// all comes through as an invalid reflect.Value and maps to the nil
// interface, which the tag checks classify as undefined.
func fieldValue(fl validator.FieldLevel) any {
	f := fl.Field()
	if !f.IsValid() || !f.CanInterface() {
		return nil
	}
	return f.Interface()
}
