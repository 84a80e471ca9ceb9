package generator

import (
	"io"
	"strings"
	"testing"

	"github.com/rescom/rescom/internal/config"
)

type nullGenerator struct{}

func (nullGenerator) Generate(w io.Writer) error { return nil }

func TestRegistry_NoDefault(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Create("", &config.Config{})
	if err == nil || !strings.Contains(err.Error(), "no default generator registered") {
		t.Fatalf("expected missing default error, got: %v", err)
	}
}

func TestRegistry_UnknownName(t *testing.T) {
	reg := NewRegistry()
	reg.Register("legacy", func(cfg *config.Config) Generator { return nullGenerator{} }, true)

	_, err := reg.Create("modern", &config.Config{})
	if err == nil || !strings.Contains(err.Error(), "generator 'modern' not found") {
		t.Fatalf("expected not found error, got: %v", err)
	}
}

func TestRegistry_DefaultSelection(t *testing.T) {
	reg := NewRegistry()
	var boundCfg *config.Config
	reg.Register("legacy", func(cfg *config.Config) Generator {
		boundCfg = cfg
		return nullGenerator{}
	}, true)

	cfg := &config.Config{Path: "x.yaml"}
	gen, err := reg.Create("", cfg)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if gen == nil {
		t.Fatal("expected a generator")
	}
	if boundCfg != cfg {
		t.Error("factory must be bound to the given configuration")
	}
}

func TestRegistry_NamedSelection(t *testing.T) {
	reg := NewRegistry()
	reg.Register("legacy", func(cfg *config.Config) Generator { return nullGenerator{} }, true)
	reg.Register("other", func(cfg *config.Config) Generator { return nullGenerator{} }, false)

	if _, err := reg.Create("other", &config.Config{}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
}
