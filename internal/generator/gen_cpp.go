package generator

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/rescom/rescom/internal/config"
)

const headerGuardPrefix = "RESCOM_GENERATED_FILE_"

// dataNamespace is the fixed root of the namespace holding the
// generated resource data.
const dataNamespace = "rescom"

// cppResource is the per-input template payload: the key and declared
// size recorded in the index table, plus the rendered byte-array
// literal for the embedded data.
type cppResource struct {
	Key    string
	Size   uint
	Symbol string
	Array  string
}

// CppGenerator emits a self-contained C++17 header embedding every
// configured resource as constexpr data with a compile-time
// binary-search lookup API.
type CppGenerator struct {
	cfg *config.Config
}

// NewCppGenerator returns a generator bound to the given configuration.
func NewCppGenerator(cfg *config.Config) *CppGenerator {
	return &CppGenerator{cfg: cfg}
}

// Generate renders the complete header to w. Inputs are loaded and
// emitted strictly in configuration order; the emitted index is a valid
// binary-search domain only because the configuration loader sorted the
// entries by key, which is trusted here without re-checking. The size
// recorded per index entry is the input's declared size, not the byte
// count actually read.
func (g *CppGenerator) Generate(w io.Writer) error {
	stem := configStem(g.cfg.Path)

	data := struct {
		Guard     string
		Namespace string
		Resources []cppResource
	}{
		Guard:     headerGuardPrefix + strings.ToUpper(stem),
		Namespace: dataNamespace + "::" + strings.ToLower(stem),
	}

	var loader Loader
	for i, input := range g.cfg.Resources {
		raw, err := loader.Load(input.File)
		if err != nil {
			return err
		}
		slog.Debug("loaded resource", "key", input.Key, "file", input.File, "bytes", len(raw))

		// The loader's buffer is reused on the next iteration, so the
		// bytes are rendered to their literal form right away.
		data.Resources = append(data.Resources, cppResource{
			Key:    input.Key,
			Size:   input.DeclaredSize(),
			Symbol: resourceSymbol(i),
			Array:  byteArrayLiteral(raw),
		})
	}

	return executeTemplate("header.h.tmpl", w, data, GetCppFuncMap(g.cfg.Tabulation))
}

// configStem is the configuration file name without directory or
// extension. Both the header guard and the namespace derive from it,
// never from the output file name, so two configurations sharing a base
// name collide and must not be compiled into the same program.
func configStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
