package hcldata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/i18nhtml/internal/adapters/hcldata"
)

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want any
	}{
		{
			name: "bare keys",
			src:  `{block:"greeting"}`,
			want: map[string]any{"block": "greeting"},
		},
		{
			name: "quoted keys and nesting",
			src: `{
  "block": "page",
  content = [
    {block = "greeting"},
    "text",
  ]
}`,
			want: map[string]any{
				"block": "page",
				"content": []any{
					map[string]any{"block": "greeting"},
					"text",
				},
			},
		},
		{
			name: "numbers",
			src:  `{count: 3, ratio: 0.5, negative: -2}`,
			want: map[string]any{"count": int64(3), "ratio": 0.5, "negative": int64(-2)},
		},
		{
			name: "literals",
			src:  `[true, false, null]`,
			want: []any{true, false, nil},
		},
		{
			name: "catalog",
			src:  `{en: {hello: "Hello"}, ru: {hello: "Привет"}}`,
			want: map[string]any{
				"en": map[string]any{"hello": "Hello"},
				"ru": map[string]any{"hello": "Привет"},
			},
		},
		{
			name: "plain string",
			src:  `"Hello"`,
			want: "Hello",
		},
	}

	e := hcldata.NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Evaluate([]byte(tt.src), "index.data.hcl")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluator_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unbalanced braces", `{block: "greeting"`},
		{"trailing tokens", `{block: "greeting"} }`},
		{"variables are unreachable", `{block: process}`},
		{"functions are unavailable", `{block: upper("greeting")}`},
		{"empty source", ``},
	}

	e := hcldata.NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Evaluate([]byte(tt.src), "/site/pages/index/index.data.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), `syntax error at "/site/pages/index/index.data.hcl"`)
		})
	}
}
