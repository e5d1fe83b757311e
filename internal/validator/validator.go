// Package validator checks configuration structs against rules written in the
// `validate` struct tag, e.g. `validate:"min:0|max:100"` or `validate:"in:a,b"`.
// Rules are separated by '|'. Supported rules: nested, in, min, max, regexp.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

const (
	tagNameValidate = "validate"
	ruleNested      = "nested"
	ruleIn          = "in"
	ruleMin         = "min"
	ruleMax         = "max"
	ruleRegexp      = "regexp"
)

var (
	ErrIncorrectStruct  = errors.New("incorrect struct")
	ErrIncorrectTag     = errors.New("incorrect tag")
	ErrNotFoundInList   = errors.New("value is not in the allowed list")
	ErrIncorrectNumeric = errors.New("incorrect numeric value")
	ErrNotMatchRegexp   = errors.New("does not match regexp")
)

type ValidationError struct {
	Field string
	Err   error
}

func (v ValidationError) Error() string {
	return v.Field + ": " + v.Err.Error()
}

func (v ValidationError) Unwrap() error {
	return v.Err
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Is lets errors.Is match any of the collected rule errors.
func (v ValidationErrors) Is(target error) bool {
	for _, e := range v {
		if errors.Is(e.Err, target) {
			return true
		}
	}
	return false
}

// Validate checks exported fields of a struct (or a pointer to it).
// Rule violations are returned as ValidationErrors, malformed tags as ErrIncorrectTag.
func Validate(v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ErrIncorrectStruct
	}

	var errs ValidationErrors
	if err := validateStruct(rv, "", &errs); err != nil {
		return err
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateStruct(rv reflect.Value, prefix string, errs *ValidationErrors) error {
	t := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get(tagNameValidate)
		if tag == "" || !sf.IsExported() {
			continue
		}
		name := prefix + sf.Name
		field := rv.Field(i)

		for _, rule := range strings.Split(tag, "|") {
			if err := validateRule(rule, name, field, errs); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateRule(rule string, name string, field reflect.Value, errs *ValidationErrors) error {
	if rule == ruleNested {
		if field.Kind() != reflect.Struct {
			return fmt.Errorf("%w: %s is not a struct", ErrIncorrectTag, name)
		}
		return validateStruct(field, name+".", errs)
	}

	parts := strings.SplitN(rule, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q on %s", ErrIncorrectTag, rule, name)
	}
	ruleName, arg := parts[0], parts[1]

	var ok bool
	var ruleErr error
	switch ruleName {
	case ruleIn:
		if field.Kind() != reflect.String {
			return fmt.Errorf("%w: %q on non-string %s", ErrIncorrectTag, rule, name)
		}
		ok, ruleErr = inList(field.String(), strings.Split(arg, ",")), ErrNotFoundInList
	case ruleMin, ruleMax:
		limit, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("%w: %q on %s", ErrIncorrectTag, rule, name)
		}
		val, isNumber := numeric(field)
		if !isNumber {
			return fmt.Errorf("%w: %q on non-numeric %s", ErrIncorrectTag, rule, name)
		}
		if ruleName == ruleMin {
			ok = val >= limit
		} else {
			ok = val <= limit
		}
		ruleErr = fmt.Errorf("%w: %v, %s %s", ErrIncorrectNumeric, val, ruleName, arg)
	case ruleRegexp:
		re, err := regexp.Compile(arg)
		if err != nil || field.Kind() != reflect.String {
			return fmt.Errorf("%w: %q on %s", ErrIncorrectTag, rule, name)
		}
		ok, ruleErr = re.MatchString(field.String()), ErrNotMatchRegexp
	default:
		return fmt.Errorf("%w: unknown rule %q on %s", ErrIncorrectTag, ruleName, name)
	}

	if !ok {
		*errs = append(*errs, ValidationError{Field: name, Err: ruleErr})
	}
	return nil
}

func numeric(v reflect.Value) (float64, bool) {
	//exhaustive:ignore
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func inList(v string, list []string) bool {
	for _, item := range list {
		if v == item {
			return true
		}
	}
	return false
}
