package validator

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings adds the "gstin" and "mobile" tags to gin's request
// validator and reports fields by their JSON names. Empty values pass so the
// tags compose with omitempty.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || ValidGSTIN(s)
	}); err != nil {
		return err
	}
	return v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || ValidMobile(s)
	})
}
