// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		delimiter string
		want      []Filter
	}{
		{
			name: "empty spec",
			spec: "",
		},
		{
			name: "single exact match filter",
			spec: "breed=hound",
			want: []Filter{
				{Key: "breed", Operand: "=", Target: "hound"},
			},
		},
		{
			name: "keyless prefix filter",
			spec: "^b",
			want: []Filter{
				{Key: "", Operand: "^", Target: "b"},
			},
		},
		{
			name: "negated exact match",
			spec: "breed!=cat",
			want: []Filter{
				{Key: "breed", Operand: "=", Target: "cat", Negate: true},
			},
		},
		{
			name: "regex filter",
			spec: "/^(af|ba)",
			want: []Filter{
				{Key: "", Operand: "/", Target: "^(af|ba)"},
			},
		},
		{
			name: "multiple filters",
			spec: "count>2,breed^h",
			want: []Filter{
				{Key: "count", Operand: ">", Target: "2"},
				{Key: "breed", Operand: "^", Target: "h"},
			},
		},
		{
			name: "invalid filter is skipped",
			spec: "hound,count<1",
			want: []Filter{
				{Key: "count", Operand: "<", Target: "1"},
			},
		},
		{
			name:      "custom delimiter",
			spec:      "count>2;breed^h",
			delimiter: ";",
			want: []Filter{
				{Key: "count", Operand: ">", Target: "2"},
				{Key: "breed", Operand: "^", Target: "h"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.delimiter != "" {
				t.Setenv("BREEDCTL_FILTER_DELIM", tt.delimiter)
			} else {
				t.Setenv("BREEDCTL_FILTER_DELIM", "")
				os.Unsetenv("BREEDCTL_FILTER_DELIM")
			}

			got := BuildFilters(tt.spec)
			assert.Len(t, got, len(tt.want))
			for i, filter := range tt.want {
				if i < len(got) {
					assert.Equal(t, filter, got[i])
				}
			}
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		filter Filter
		want   bool
	}{
		{name: "exact match true", value: "hound", filter: Filter{Operand: "=", Target: "hound"}, want: true},
		{name: "exact match false", value: "hound", filter: Filter{Operand: "=", Target: "cat"}, want: false},
		{name: "negated exact match true", value: "hound", filter: Filter{Operand: "=", Target: "cat", Negate: true}, want: true},
		{name: "negated exact match false", value: "hound", filter: Filter{Operand: "=", Target: "hound", Negate: true}, want: false},
		{name: "fold match", value: "Hound", filter: Filter{Operand: "~", Target: "hOUND"}, want: true},
		{name: "prefix match true", value: "basset", filter: Filter{Operand: "^", Target: "ba"}, want: true},
		{name: "prefix match false", value: "afghan", filter: Filter{Operand: "^", Target: "ba"}, want: false},
		{name: "negated prefix", value: "afghan", filter: Filter{Operand: "^", Target: "ba", Negate: true}, want: true},
		{name: "greater than", value: "walker", filter: Filter{Operand: ">", Target: "plott"}, want: true},
		{name: "less than", value: "afghan", filter: Filter{Operand: "<", Target: "basset"}, want: true},
		{name: "contains", value: "english", filter: Filter{Operand: "@", Target: "gli"}, want: true},
		{name: "negated contains", value: "english", filter: Filter{Operand: "@", Target: "gli", Negate: true}, want: false},
		{name: "regex match", value: "ibizan", filter: Filter{Operand: "/", Target: "^i.*n$"}, want: true},
		{name: "regex no match", value: "plott", filter: Filter{Operand: "/", Target: "^i"}, want: false},
		{name: "invalid regex", value: "plott", filter: Filter{Operand: "/", Target: "("}, want: false},
		{name: "unsupported operand", value: "plott", filter: Filter{Operand: "?", Target: "x"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkStringOperand(tt.value, tt.filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		filter Filter
		want   bool
	}{
		{name: "exact match true", value: 7, filter: Filter{Operand: "=", Target: "7"}, want: true},
		{name: "exact match false", value: 7, filter: Filter{Operand: "=", Target: "2"}, want: false},
		{name: "negated equal true", value: 7, filter: Filter{Operand: "=", Target: "2", Negate: true}, want: true},
		{name: "greater than true", value: 7, filter: Filter{Operand: ">", Target: "2"}, want: true},
		{name: "greater than false", value: 0, filter: Filter{Operand: ">", Target: "2"}, want: false},
		{name: "less than true", value: -1, filter: Filter{Operand: "<", Target: "0"}, want: true},
		{name: "padded target", value: 3, filter: Filter{Operand: "=", Target: " 3 "}, want: true},
		{name: "invalid target", value: 3, filter: Filter{Operand: "=", Target: "three"}, want: false},
		{name: "unsupported operand", value: 3, filter: Filter{Operand: "^", Target: "3"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkNumericOperand(tt.value, tt.filter))
		})
	}
}

func TestCheckBoolOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  bool
		filter Filter
		want   bool
	}{
		{name: "true equals true", value: true, filter: Filter{Operand: "=", Target: "true"}, want: true},
		{name: "short form", value: false, filter: Filter{Operand: "=", Target: "f"}, want: true},
		{name: "numeric form", value: true, filter: Filter{Operand: "=", Target: "0"}, want: false},
		{name: "negated", value: true, filter: Filter{Operand: "=", Target: "true", Negate: true}, want: false},
		{name: "invalid target", value: true, filter: Filter{Operand: "=", Target: "yes"}, want: false},
		{name: "unsupported operand", value: true, filter: Filter{Operand: "^", Target: "t"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkBoolOperand(tt.value, tt.filter))
		})
	}
}

func TestCheckContainsOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		filter Filter
		want   bool
	}{
		{name: "string slice contains", value: []string{"afghan", "basset"}, filter: Filter{Operand: "@", Target: "basset"}, want: true},
		{name: "string slice missing", value: []string{"afghan"}, filter: Filter{Operand: "@", Target: "basset"}, want: false},
		{name: "negated string slice", value: []string{"afghan"}, filter: Filter{Operand: "@", Target: "basset", Negate: true}, want: true},
		{name: "any slice contains", value: []any{"afghan", "basset"}, filter: Filter{Operand: "@", Target: "afghan"}, want: true},
		{name: "map has key", value: map[string]any{"hound": 7}, filter: Filter{Operand: "@", Target: "hound"}, want: true},
		{name: "negated map key", value: map[string]any{"hound": 7}, filter: Filter{Operand: "@", Target: "hound", Negate: true}, want: false},
		{name: "unsupported type", value: struct{}{}, filter: Filter{Operand: "@", Target: "x"}, want: false},
		{name: "list needs contains", value: []string{"afghan"}, filter: Filter{Operand: "=", Target: "afghan"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkContainsOperand(tt.value, tt.filter))
		})
	}
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		want   float64
		wantOK bool
	}{
		{name: "float64", value: float64(1.5), want: 1.5, wantOK: true},
		{name: "float32", value: float32(2), want: 2, wantOK: true},
		{name: "int", value: 7, want: 7, wantOK: true},
		{name: "int64", value: int64(-1), want: -1, wantOK: true},
		{name: "int32", value: int32(3), want: 3, wantOK: true},
		{name: "string", value: "7", want: 0, wantOK: false},
		{name: "nil", value: nil, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toFloat64(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch(t *testing.T) {
	hound := map[string]any{"breed": "hound", "found": true, "count": 7, "sub_breeds": []string{"afghan", "basset"}}
	cat := map[string]any{"breed": "cat", "found": false, "count": -1, "sub_breeds": []string(nil)}

	tests := []struct {
		name string
		row  map[string]any
		spec string
		want bool
	}{
		{name: "no filters", row: hound, spec: "", want: true},
		{name: "default key", row: hound, spec: "^ho", want: true},
		{name: "numeric", row: hound, spec: "count>2", want: true},
		{name: "numeric fails", row: cat, spec: "count>2", want: false},
		{name: "bool", row: cat, spec: "found=false", want: true},
		{name: "list contains", row: hound, spec: "sub_breeds@basset", want: true},
		{name: "nil list", row: cat, spec: "sub_breeds@basset", want: false},
		{name: "unsupported type", row: map[string]any{"breed": struct{}{}}, spec: "=x", want: false},
		{name: "all must pass", row: hound, spec: "count>2,breed=beagle", want: false},
		{name: "unknown key skipped", row: hound, spec: "colour=brown", want: true},
		{name: "nil value fails", row: map[string]any{"breed": nil}, spec: "breed=x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.row, BuildFilters(tt.spec), "breed"))
		})
	}
}

func TestNames(t *testing.T) {
	names := []string{"afghan", "basset", "blood", "english", "ibizan", "plott", "walker"}

	tests := []struct {
		name string
		spec string
		want []string
	}{
		{name: "empty spec keeps all", spec: "", want: names},
		{name: "prefix", spec: "^b", want: []string{"basset", "blood"}},
		{name: "explicit key", spec: "name^b", want: []string{"basset", "blood"}},
		{name: "negated prefix", spec: "!^b", want: []string{"afghan", "english", "ibizan", "plott", "walker"}},
		{name: "combined", spec: "name>c,name<j", want: []string{"english", "ibizan"}},
		{name: "no matches", spec: "=poodle", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Names(names, tt.spec))
		})
	}
}
