// Package bind provides JSON and query binding plus validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	perr "spamjar/internal/platform/errors"
	"spamjar/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc

	videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Init initializes the singleton validator with english translations and wire tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer wire names (json, query, path) in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "query", "path"} {
				tag := fld.Tag.Get(key)
				if idx := strings.Index(tag, ","); idx >= 0 {
					tag = tag[:idx]
				}
				if tag != "" && tag != "-" {
					return tag
				}
			}
			return fld.Name
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerMessage(v, trans, "min", "{0} must be at least {1}")
		registerMessage(v, trans, "max", "{0} must be at most {1}")

		_ = v.RegisterValidation("notblank", func(fl FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		registerMessage(v, trans, "notblank", "{0} is required and cannot be empty")

		_ = v.RegisterValidation("video_id", func(fl FieldLevel) bool {
			return videoIDRe.MatchString(fl.Field().String())
		})
		registerMessage(v, trans, "video_id", "{0} must be 1-64 characters of letters, digits, '-' or '_'")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// Validate runs struct validation and maps the first failure to a validation error with field set
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("failed to close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(r.Body, o.MaxBytes)
	}

	// peek one byte so an empty body is reported as such rather than as EOF
	first := make([]byte, 1)
	n, _ := io.ReadFull(body, first)
	if n == 0 {
		if o.AllowEmptyBody {
			return zero, nil
		}
		return zero, perr.JSONErrf("request body is required")
	}

	dec := json.NewDecoder(io.MultiReader(bytes.NewReader(first[:n]), body))
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// PathFunc looks up a router path parameter by name
type PathFunc func(r *http.Request, name string) string

// Request fills T from the request path and query, then validates it.
// Fields tagged `path:"name"` read path parameters through path, fields tagged
// `query:"name"` read the first query value; `default:"v"` applies when the value is absent.
// Supported field kinds are string, bool and the int family
func Request[T any](r *http.Request, path PathFunc) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return dst, perr.Internalf("bind.Request needs a struct, got %s", rv.Kind())
	}
	q := r.URL.Query()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		var name, raw string
		var present bool
		switch {
		case sf.Tag.Get("path") != "":
			name = sf.Tag.Get("path")
			if path != nil {
				raw = path(r, name)
			}
			present = raw != ""
		case sf.Tag.Get("query") != "":
			name = sf.Tag.Get("query")
			raw = q.Get(name)
			present = q.Has(name)
		default:
			continue
		}
		if !present {
			def, ok := sf.Tag.Lookup("default")
			if !ok {
				continue
			}
			raw = def
		}
		if err := setField(rv.Field(i), raw); err != nil {
			return dst, perr.WithField(perr.Validationf("%s must be %s", name, err.Error()), name)
		}
	}
	if err := Validate(dst); err != nil {
		return dst, err
	}
	return dst, nil
}

// setField parses raw into f; the returned error text completes "<name> must be ..."
func setField(f reflect.Value, raw string) error {
	raw = strings.TrimSpace(raw)
	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("a boolean")
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, f.Type().Bits())
		if err != nil {
			return errors.New("an integer")
		}
		f.SetInt(n)
	default:
		return errors.New("a supported type")
	}
	return nil
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}

// registerMessage installs a short english message for tag; {0} is the field, {1} the param
func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
