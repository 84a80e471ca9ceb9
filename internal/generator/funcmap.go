package generator

import (
	"fmt"
	"strings"
	"text/template"
)

// resourceSymbol names the embedded byte array for the input at the
// given zero-based position in the configuration.
func resourceSymbol(position int) string {
	return fmt.Sprintf("Resource%d", position)
}

// byteArrayLiteral renders raw bytes as a C++ array initializer. Every
// byte becomes its own quoted hex escape, so each element terminates
// itself and no value 0-255 needs padding or lookahead. An empty input
// yields a legal empty initializer. The array carries no implicit
// terminator; consumers always use the recorded size.
func byteArrayLiteral(raw []byte) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range raw {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "'\\x%x'", b)
	}
	sb.WriteByte('}')
	return sb.String()
}

// GetCppFuncMap returns the template functions for the C++ header
// template. tab indents by the configured tabulation width.
func GetCppFuncMap(tabulation int) template.FuncMap {
	tab := strings.Repeat(" ", tabulation)
	return template.FuncMap{
		"tab": func(count int) string {
			return strings.Repeat(tab, count)
		},
		"Lower": strings.ToLower,
		"Upper": strings.ToUpper,
	}
}
