// Package translate turns a JavaScript solution template into a MoonBit stub.
//
// The template is scanned line by line. A line assigning an anonymous
// function to a named variable ("var twoSum = function(nums, target) {")
// supplies the signature of the generated MoonBit function. All other
// template content is carried over as line comments so the original
// skeleton stays visible next to the stub.
//
// Parameter and return types are not inferred: the generated function takes
// untyped parameters and returns Unit.
package translate

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// EndMarker closes the user-editable region of a solution file.
	EndMarker = "// @lc code=end"

	// DefaultFunctionName is used when no declaration line is recognized.
	DefaultFunctionName = "functionName"

	endMarkerToken = "@lc code=end"
	commentPrefix  = "// "
)

// declarationPattern matches "var <name> = function(<params>)".
var declarationPattern = regexp.MustCompile(`^\s*var\s+([^\s]+)\s*=\s*function\s*\((.*)\)`)

// Signature is the callable recovered from a template.
type Signature struct {
	Name   string
	Params string
}

// Stub is a translated template.
type Stub struct {
	Signature Signature
	Comments  []string // template lines rendered as comments, in input order
}

// Translate scans template lines and builds a stub. When several lines
// declare a function, the last one wins. It never fails.
func Translate(lines []string) *Stub {
	stub := &Stub{
		Signature: Signature{Name: DefaultFunctionName},
	}

	for _, line := range lines {
		if sig, ok := matchDeclaration(line); ok {
			stub.Signature = sig
		}
		if line == "" || strings.Contains(line, endMarkerToken) {
			continue
		}
		stub.Comments = append(stub.Comments, commentPrefix+line)
	}

	return stub
}

// TranslateText splits text on newlines and translates it.
func TranslateText(text string) *Stub {
	return Translate(strings.Split(text, "\n"))
}

func matchDeclaration(line string) (Signature, bool) {
	m := declarationPattern.FindStringSubmatch(line)
	if len(m) != 3 {
		return Signature{}, false
	}
	return Signature{Name: m[1], Params: m[2]}, true
}

// Declaration renders the MoonBit function with an empty body.
func (s *Stub) Declaration() string {
	return fmt.Sprintf("pub fn %s(%s) -> Unit {\n}", s.Signature.Name, s.Signature.Params)
}

// Lines returns the stub as output lines. The final element holds the
// declaration followed by the end marker and a trailing newline.
func (s *Stub) Lines() []string {
	lines := make([]string, 0, len(s.Comments)+1)
	lines = append(lines, s.Comments...)
	return append(lines, s.Declaration()+"\n"+EndMarker+"\n")
}

// String renders the stub file content.
func (s *Stub) String() string {
	return strings.Join(s.Lines(), "\n")
}
