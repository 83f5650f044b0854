// Package validation 은 go-playground/validator 위에 API 공통 오류 형식을 얹는다.
//
// 입력 구조체는 json 태그로 필드 이름을, msg 태그로 오류 메시지를 정한다.
// 필드마다 처음 실패한 규칙 하나만 보고된다.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError 는 응답 본문의 errorsMessages 항목 하나다.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors 는 필드 단위 검증 실패 목록이다. 비어 있지 않으면 400 으로 응답한다.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has 는 field 에 대한 오류가 이미 있는지 확인한다.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Merge 는 e 뒤에 other 를 붙이되, 이미 보고된 필드는 건너뛴다.
func (e Errors) Merge(other Errors) Errors {
	out := e
	for _, fe := range other {
		if out.Has(fe.Field) {
			continue
		}
		out = append(out, fe)
	}
	return out
}

// Normalizer 를 구현한 입력은 검증 전에 공백 제거 등 정규화를 거친다.
type Normalizer interface {
	Normalize()
}

var (
	loginPattern    = regexp.MustCompile(`^[a-zA-Z0-9_-]*$`)
	httpsURLPattern = regexp.MustCompile(`^https://([a-zA-Z0-9_-]+\.)+[a-zA-Z0-9_-]+(/[a-zA-Z0-9_-]+)*/?$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "login", func(fl validator.FieldLevel) bool {
		return loginPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "https_url", func(fl validator.FieldLevel) bool {
		return httpsURLPattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Check 는 s 를 정규화한 뒤 검증한다. s 는 구조체 포인터여야 한다.
// 구조체가 아닌 값을 넘기는 것은 프로그래밍 오류이므로 panic 한다.
func Check(s any) Errors {
	if n, ok := s.(Normalizer); ok {
		n.Normalize()
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		panic(fmt.Sprintf("validation: %v", err))
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make(Errors, 0, len(ves))
	for _, fe := range ves {
		if out.Has(fe.Field()) {
			continue
		}
		out = append(out, FieldError{Field: fe.Field(), Message: message(t, fe)})
	}
	return out
}

func message(t reflect.Type, fe validator.FieldError) string {
	if sf, ok := t.FieldByName(fe.StructField()); ok {
		if msg := sf.Tag.Get("msg"); msg != "" {
			return msg
		}
	}
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "min", "max":
		return fmt.Sprintf("%s length is out of range", fe.Field())
	default:
		return fe.Field() + " is invalid"
	}
}

// DecodeError 는 요청 본문 JSON 디코딩 오류를 필드 오류로 바꾼다.
// 타입이 맞지 않는 값(예: 문자열 자리에 객체)은 해당 필드의 오류가 된다.
func DecodeError(err error) Errors {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return Errors{{Field: te.Field, Message: fmt.Sprintf("%s must be a %s", te.Field, te.Type.Kind())}}
	}
	return Errors{{Field: "body", Message: "request body must be a valid JSON object"}}
}
