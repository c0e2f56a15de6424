package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var dictionaryFileExtensions = []string{".json", ".yml", ".yaml"}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("dictfile", isDictionaryFile); err != nil {
		return nil, nil, fmt.Errorf("failed to register dictfile validation: %w", err)
	}
	if err := validate.RegisterTranslation("dictfile", trans, func(ut ut.Translator) error {
		return ut.Add("dictfile", "{0} must be a .json, .yml or .yaml file", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("dictfile", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register dictfile translation: %w", err)
	}

	return validate, trans, nil
}

func isDictionaryFile(fl validator.FieldLevel) bool {
	ext := strings.ToLower(filepath.Ext(fl.Field().String()))
	for _, allowed := range dictionaryFileExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
