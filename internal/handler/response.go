package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Message string       `json:"message" example:"Gym class not found"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field" example:"attendance"`
	Message string `json:"message" example:"Must be a non-negative integer"`
}

// 검증 에러 메시지에 JSON 필드명을 사용하도록 등록
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// decodeAndValidate unmarshals body into dst and runs the binding validator.
// An empty body is treated as an empty JSON object.
func decodeAndValidate(body []byte, dst any) (*ErrorResponse, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ErrorResponse{Message: "Invalid data", Errors: []FieldError{typeErrorDetail(typeErr)}}, nil
		}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return &ErrorResponse{Message: "Invalid JSON body"}, nil
		}
		return nil, err
	}

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := make([]FieldError, 0, len(validationErrs))
			for _, fe := range validationErrs {
				details = append(details, FieldError{Field: fe.Field(), Message: validationMessage(fe)})
			}
			return &ErrorResponse{Message: "Invalid data", Errors: details}, nil
		}
		return nil, err
	}
	return nil, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return "Must be a non-negative integer"
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}

func typeErrorDetail(err *json.UnmarshalTypeError) FieldError {
	field := err.Field
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if field == "" {
		field = "body"
	}
	expected := err.Type.Kind().String()
	switch err.Type.Kind() {
	case reflect.Int, reflect.Int64:
		expected = "integer"
	case reflect.Struct, reflect.Map:
		expected = "object"
	}
	return FieldError{Field: field, Message: fmt.Sprintf("Expected %s, received %s", expected, err.Value)}
}
