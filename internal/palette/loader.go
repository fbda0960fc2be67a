package palette

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	tkerrors "github.com/alexisbeaulieu97/tokenkit/pkg/errors"
)

//go:embed default_palette.yaml
var defaultPaletteYAML []byte

var (
	defaultOnce    sync.Once
	defaultPalette *Palette

	validatorOnce sync.Once
	validateInst  *validator.Validate

	rgbHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// document is the on-disk palette format.
type document struct {
	Fallback  string                  `yaml:"fallback" validate:"omitempty,rgbhex"`
	Grayscale *rampDocument           `yaml:"grayscale" validate:"omitempty"`
	Hues      map[string]rampDocument `yaml:"hues" validate:"dive,keys,required,endkeys"`
}

type rampDocument struct {
	Default string         `yaml:"default" validate:"omitempty,rgbhex"`
	Shades  map[int]string `yaml:"shades" validate:"dive,keys,oneof=50 100 200 300 400 500 600 700 800 900 950,endkeys,rgbhex"`
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
			return rgbHexPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Default returns the built-in palette. It is decoded once and shared.
func Default() *Palette {
	defaultOnce.Do(func() {
		p, err := decode("default_palette.yaml", defaultPaletteYAML)
		if err != nil {
			panic(fmt.Sprintf("palette: embedded default is invalid: %v", err))
		}
		defaultPalette = p
	})
	return defaultPalette
}

// LoadFile reads a palette file from disk.
func LoadFile(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tkerrors.NewParseError(path, 0, err)
	}
	return decode(path, data)
}

// Load reads a palette document from r. name is used in error messages.
func Load(name string, r io.Reader) (*Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, tkerrors.NewParseError(name, 0, err)
	}
	return decode(name, data)
}

func decode(name string, data []byte) (*Palette, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, tkerrors.NewParseError(name, extractLine(err), err)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return nil, convertValidationError(err)
	}

	var grayscale Ramp
	if doc.Grayscale != nil {
		grayscale = doc.Grayscale.ramp()
	}

	hues := make(map[Color]Ramp, len(doc.Hues))
	for name, ramp := range doc.Hues {
		color := Color(strings.ToLower(strings.TrimSpace(name)))
		if color.Achromatic() {
			return nil, tkerrors.NewValidationError("hues."+name, "black and white are served by the grayscale ramp", nil)
		}
		hues[color] = ramp.ramp()
	}

	return New(strings.ToLower(doc.Fallback), grayscale, hues), nil
}

func (r rampDocument) ramp() Ramp {
	shades := make(map[Shade]string, len(r.Shades))
	for shade, value := range r.Shades {
		shades[Shade(shade)] = strings.ToLower(value)
	}
	return Ramp{Default: strings.ToLower(r.Default), Shades: shades}
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tkerrors.NewValidationError(field, msg, err)
	}
	return tkerrors.NewValidationError("palette", err.Error(), err)
}

// yamlishFieldName lowercases each segment of the struct namespace, the same
// way showcase config errors name their fields.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
