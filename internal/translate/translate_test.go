package translate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Translate:
// - A single declaration line yields its name and parameter text
// - No declaration yields the default name and empty parameters
// - Several declarations: the last one wins
// - End marker lines are dropped from comments and re-emitted once at the end
// - Empty templates yield only the default declaration
// - Whitespace-only lines are kept as comments
// - Lines before and after the declaration are kept in order
// - Rendered output matches the expected file content exactly

const twoSumTemplate = `/*
 * @lc app=leetcode.cn id=1 lang=javascript
 *
 * [1] Two Sum
 */

// @lc code=start
/**
 * @param {number[]} nums
 * @param {number} target
 * @return {number[]}
 */
var twoSum = function(nums, target) {
    
};
// @lc code=end
`

func TestTranslate_SingleDeclaration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Signature
	}{
		{"two params", "var twoSum = function(nums, target) {", Signature{Name: "twoSum", Params: "nums, target"}},
		{"no params", "var solve = function() {", Signature{Name: "solve", Params: ""}},
		{"indented with loose spacing", "  var  maxArea  =  function ( height ) {", Signature{Name: "maxArea", Params: " height "}},
		{"dollar identifier", "var $run = function(a) {", Signature{Name: "$run", Params: "a"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stub := Translate([]string{"/** doc */", tt.line, "};"})
			assert.Equal(t, tt.want, stub.Signature)
		})
	}
}

func TestTranslate_NoDeclarationUsesDefault(t *testing.T) {
	t.Parallel()

	stub := Translate([]string{
		"function twoSum(nums, target) {",
		"const x = () => 1;",
		"let y = function(a) {}",
	})

	assert.Equal(t, Signature{Name: DefaultFunctionName, Params: ""}, stub.Signature)
	assert.Len(t, stub.Comments, 3)
}

func TestTranslate_LastDeclarationWins(t *testing.T) {
	t.Parallel()

	stub := Translate([]string{
		"var first = function(a) {",
		"};",
		"var second = function(b, c) {",
		"};",
	})

	assert.Equal(t, Signature{Name: "second", Params: "b, c"}, stub.Signature)
	assert.Equal(t, []string{
		"// var first = function(a) {",
		"// };",
		"// var second = function(b, c) {",
		"// };",
	}, stub.Comments)
}

func TestTranslate_EmptyInput(t *testing.T) {
	t.Parallel()

	want := "pub fn functionName() -> Unit {\n}\n// @lc code=end\n"

	for _, input := range []string{"", "\n\n"} {
		stub := TranslateText(input)
		assert.Empty(t, stub.Comments)
		assert.Equal(t, want, stub.String())
	}
}

func TestTranslate_KeepsWhitespaceOnlyLines(t *testing.T) {
	t.Parallel()

	stub := TranslateText("  \n\t\n ")
	assert.Equal(t, []string{"//   ", "// \t", "//  "}, stub.Comments)

	stub = Translate([]string{"var twoSum = function(nums, target) {", "    ", "};"})
	assert.Equal(t, []string{
		"// var twoSum = function(nums, target) {",
		"//     ",
		"// };",
	}, stub.Comments)
}

func TestTranslate_ExampleEndToEnd(t *testing.T) {
	t.Parallel()

	stub := Translate([]string{
		"var twoSum = function(nums, target) {",
		"// @lc code=end",
	})

	want := "// var twoSum = function(nums, target) {\n" +
		"pub fn twoSum(nums, target) -> Unit {\n}\n// @lc code=end\n"

	if diff := cmp.Diff(want, stub.String()); diff != "" {
		t.Errorf("stub mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslate_FullTemplate(t *testing.T) {
	t.Parallel()

	stub := TranslateText(twoSumTemplate)

	want := []string{
		"// /*",
		"//  * @lc app=leetcode.cn id=1 lang=javascript",
		"//  *",
		"//  * [1] Two Sum",
		"//  */",
		"// // @lc code=start",
		"// /**",
		"//  * @param {number[]} nums",
		"//  * @param {number} target",
		"//  * @return {number[]}",
		"//  */",
		"// var twoSum = function(nums, target) {",
		"//     ",
		"// };",
		"pub fn twoSum(nums, target) -> Unit {\n}\n// @lc code=end\n",
	}

	if diff := cmp.Diff(want, stub.Lines()); diff != "" {
		t.Errorf("stub lines mismatch (-want +got):\n%s", diff)
	}

	rendered := stub.String()
	require.True(t, strings.HasSuffix(rendered, EndMarker+"\n"))
	assert.Equal(t, 1, strings.Count(rendered, "@lc code=end"))
}

func TestStub_Declaration(t *testing.T) {
	t.Parallel()

	stub := &Stub{Signature: Signature{Name: "climbStairs", Params: "n"}}
	assert.Equal(t, "pub fn climbStairs(n) -> Unit {\n}", stub.Declaration())
}
