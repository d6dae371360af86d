// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	perr "janaza/internal/platform/errors"
	"janaza/internal/platform/logger"

	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"
)

// ValidatorSvc holds the validator and its French translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// custom tags shared by date DTOs
var customTags = []struct {
	tag string
	fn  validator.Func
	msg string
}{
	{"dateinput", isDateInput, "{0} doit être une date AAAA-MM-JJ ou JJ/MM/AAAA"},
	{"timeinput", isTimeInput, "{0} doit être une heure HH:mm"},
	{"tzname", isZoneName, "{0} doit être un fuseau horaire IANA"},
}

// Get returns the validator singleton: French messages, json tag names, custom date tags
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		loc := fr.New()
		trans, _ := ut.New(loc, loc).GetTranslator("fr")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = fr_translations.RegisterDefaultTranslations(v, trans)

		for _, c := range customTags {
			_ = v.RegisterValidation(c.tag, c.fn)
			registerMessage(v, trans, c.tag, c.msg)
		}
		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

func jsonName(fld reflect.StructField) string {
	tag, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if tag == "" || tag == "-" {
		return fld.Name
	}
	return tag
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, msg string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// isDateInput accepts the two shapes typed in admin forms
func isDateInput(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for _, layout := range []string{"2006-01-02", "02/01/2006", "2/1/2006"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isTimeInput(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

func isZoneName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || s == "Local" {
		return false
	}
	_, err := time.LoadLocation(s)
	return err == nil
}

// JSONOptions controls parsing
type JSONOptions struct {
	MaxBytes        int64 // 0 means unlimited
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// DefaultJSONOptions is used when ParseJSON receives no options: 1MB, strict fields, body required
var DefaultJSONOptions = JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}

// ParseJSON decodes the body into T, validates it and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("failed to close request body")
		}
	}()

	body, empty := peek(r.Body)
	if empty && !o.AllowEmptyBody {
		return zero, perr.JSONErrf("corps de requête vide")
	}
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	var dst T
	if err := dec.Decode(&dst); err != nil {
		if empty && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("JSON invalide: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("données inattendues après le JSON")
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation impossible")
		}
		field, msg := ValidationFieldAndMessage(err)
		return zero, perr.WithField(perr.Validationf("%s", msg), field)
	}
	return dst, nil
}

// peek reads one byte to tell an empty body apart and returns a reader replaying it
func peek(body io.Reader) (io.Reader, bool) {
	buf := make([]byte, 1)
	n, _ := io.ReadFull(body, buf)
	if n == 0 {
		return body, true
	}
	return io.MultiReader(bytes.NewReader(buf[:n]), body), false
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(Get().Translator)
	}
	return "", err.Error()
}
