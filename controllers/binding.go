package controllers

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// text is a trimmed string field that also accepts JSON numbers, so
// {"totalAmount": 9.99} and totalAmount=9.99 bind the same way.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = text(n.String())
	return nil
}

func (t text) String() string {
	return strings.TrimSpace(string(t))
}

// NewValidator reports fields by their json name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validate trims every text field in place and runs the struct rules.
func (d *Deps) validate(input any) error {
	rv := reflect.ValueOf(input).Elem()
	for i := 0; i < rv.NumField(); i++ {
		if f := rv.Field(i); f.Type() == reflect.TypeOf(text("")) {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
	return d.Validate.Struct(input)
}
