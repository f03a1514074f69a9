package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ztrade/launchweek/launch"
)

// Provider sends one prompt to an LLM and returns its text reply.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// GenerationError reports a provider or transport failure.
type GenerationError struct {
	Kind Kind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s content: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

// ErrNoProvider is returned when no LLM provider is configured.
var ErrNoProvider = errors.New("no LLM provider configured")

// Generator validates content requests and forwards them to a Provider.
type Generator struct {
	provider Provider
}

func NewGenerator(p Provider) *Generator {
	return &Generator{provider: p}
}

// Available reports whether a provider is configured.
func (g *Generator) Available() bool {
	return g != nil && g.provider != nil
}

// ProviderName returns the configured provider's name, or "".
func (g *Generator) ProviderName() string {
	if !g.Available() {
		return ""
	}
	return g.provider.Name()
}

// Validate checks the kind and required inputs without calling the provider.
func Validate(kind Kind, inputs map[string]string) (*Spec, error) {
	spec, ok := Lookup(kind)
	if !ok {
		return nil, &launch.ValidationError{
			Fields: []string{"type"},
			Msg:    fmt.Sprintf("unknown content type %q", kind),
		}
	}
	if missing := spec.Missing(inputs); len(missing) > 0 {
		return nil, &launch.ValidationError{
			Fields: missing,
			Msg:    "Please fill in required fields: " + strings.Join(missing, ", "),
		}
	}
	return spec, nil
}

// Prompt validates the request and renders the prompt that Generate would send.
func Prompt(kind Kind, inputs map[string]string) (string, error) {
	spec, err := Validate(kind, inputs)
	if err != nil {
		return "", err
	}
	return spec.Render(inputs)
}

// Generate validates the request, makes a single provider call and returns
// the reply unmodified.
func (g *Generator) Generate(ctx context.Context, kind Kind, inputs map[string]string) (string, error) {
	prompt, err := Prompt(kind, inputs)
	if err != nil {
		return "", err
	}
	if !g.Available() {
		return "", &GenerationError{Kind: kind, Err: ErrNoProvider}
	}

	log.WithFields(log.Fields{
		"kind":     kind,
		"provider": g.provider.Name(),
	}).Debug("generating content")

	text, err := g.provider.Complete(ctx, prompt)
	if err != nil {
		log.WithField("kind", kind).Errorf("generate content failed: %s", err.Error())
		return "", &GenerationError{Kind: kind, Err: err}
	}
	return text, nil
}
