package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Skill is one tile in the skills grid.
type Skill struct {
	Icon IconKind `yaml:"icon" validate:"required"`
	Name string   `yaml:"name" validate:"required"`
}

// Video is an embedded player shown on a project tile.
type Video struct {
	EmbedURL string `yaml:"embed" validate:"required"`
	WatchURL string `yaml:"watch"`
	Title    string `yaml:"title"`
}

// Project is one tile in the projects grid. Links are not checked; an
// empty link is simply not rendered.
type Project struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	DemoURL     string `yaml:"demo"`
	SourceURL   string `yaml:"source"`
	Video       *Video `yaml:"video,omitempty"`
}

type SocialLink struct {
	Icon  IconKind `yaml:"icon" validate:"required"`
	Label string   `yaml:"label"`
	URL   string   `yaml:"url" validate:"required"`
}

// Profile is the page owner's copy for the nav, hero and about sections.
// About is Markdown.
type Profile struct {
	Name     string       `yaml:"name" validate:"required"`
	Initials string       `yaml:"initials"`
	Role     string       `yaml:"role"`
	About    string       `yaml:"about"`
	Links    []SocialLink `yaml:"links" validate:"dive"`
}

// Content is everything the composer lays out.
type Content struct {
	Profile  Profile   `yaml:"profile"`
	Skills   []Skill   `yaml:"skills" validate:"dive"`
	Projects []Project `yaml:"projects" validate:"dive"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func contentValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
		validateInst.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validateInst
}

// ValidateContent checks required fields and reports every failing field
// by its content file path, e.g. skills[0].name.
func ValidateContent(c *Content) error {
	if c == nil {
		return errors.New("content is nil")
	}
	err := contentValidator().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.TrimPrefix(fe.Namespace(), "Content."), fe.Tag()))
	}
	return fmt.Errorf("invalid content: %s", strings.Join(fields, ", "))
}

// LoadContent decodes and validates a YAML content document.
func LoadContent(r io.Reader) (*Content, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content document is empty")
		}
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := ValidateContent(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadContentFile reads content from path, or returns the built-in content
// when path is empty.
func LoadContentFile(path string) (*Content, error) {
	if path == "" {
		return DefaultContent(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}
	c, err := LoadContent(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}
