package hcl

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestTypeExprToCtyType(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		expected  cty.Type
		expectErr bool
	}{
		{name: "string", src: "string", expected: cty.String},
		{name: "number", src: "number", expected: cty.Number},
		{name: "bool", src: "bool", expected: cty.Bool},
		{name: "any", src: "any", expected: cty.DynamicPseudoType},
		{name: "list of strings", src: "list(string)", expected: cty.List(cty.String)},
		{name: "map of bools", src: "map(bool)", expected: cty.Map(cty.Bool)},
		{name: "set of lists", src: "set(list(number))", expected: cty.Set(cty.List(cty.Number))},
		{name: "error - unknown keyword", src: "float", expectErr: true},
		{name: "error - unknown constructor", src: "tuple(string)", expectErr: true},
		{name: "error - constructor arity", src: "list(string, number)", expectErr: true},
		{name: "error - literal", src: `"string"`, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expr, diags := hclsyntax.ParseExpression([]byte(tc.src), "test.hcl", hcl.InitialPos)
			require.False(t, diags.HasErrors(), diags.Error())

			ty, err := typeExprToCtyType(expr)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equals(ty), "expected %s, got %s", tc.expected.FriendlyName(), ty.FriendlyName())
		})
	}
}

func TestOverrideValue(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		ty        cty.Type
		expected  cty.Value
		expectErr bool
	}{
		{name: "string keeps text verbatim", raw: `Any CPU`, ty: cty.String, expected: cty.StringVal("Any CPU")},
		{name: "number from text", raw: "3", ty: cty.Number, expected: cty.NumberIntVal(3)},
		{name: "bool from text", raw: "true", ty: cty.Bool, expected: cty.True},
		{name: "untyped stays a string", raw: "[1]", ty: cty.DynamicPseudoType, expected: cty.StringVal("[1]")},
		{
			name:     "list of strings",
			raw:      `["Debug", "Release"]`,
			ty:       cty.List(cty.String),
			expected: cty.ListVal([]cty.Value{cty.StringVal("Debug"), cty.StringVal("Release")}),
		},
		{
			name:     "set of numbers",
			raw:      `[1, 2]`,
			ty:       cty.Set(cty.Number),
			expected: cty.SetVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}),
		},
		{
			name:     "map of bools",
			raw:      `{ x64 = true, arm64 = false }`,
			ty:       cty.Map(cty.Bool),
			expected: cty.MapVal(map[string]cty.Value{"x64": cty.True, "arm64": cty.False}),
		},
		{name: "error - number from words", raw: "many", ty: cty.Number, expectErr: true},
		{name: "error - list syntax", raw: `["Debug"`, ty: cty.List(cty.String), expectErr: true},
		{name: "error - list from bare word", raw: "Debug", ty: cty.List(cty.String), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val, err := overrideValue("v", tc.raw, tc.ty)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.RawEquals(val), "expected %#v, got %#v", tc.expected, val)
		})
	}
}
