// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

var sample = []Result{
	{Breed: "hound", Found: true, SubBreeds: []string{"afghan", "basset"}},
	{Breed: "cat"},
	{Breed: "pug", Found: true, SubBreeds: []string{}},
	{Breed: "setter", Found: true, SubBreeds: []string{"english"}},
}

func TestCountLine(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{name: "many", result: sample[0], want: "hound has 2 sub breeds"},
		{name: "unknown", result: sample[1], want: "Unknown breed: cat"},
		{name: "none", result: sample[2], want: "pug has 0 sub breeds"},
		{name: "one", result: sample[3], want: "setter has 1 sub breed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLine(tt.result))
		})
	}
}

func TestResult_Count(t *testing.T) {
	assert.Equal(t, 2, sample[0].Count())
	assert.Equal(t, -1, sample[1].Count())
	assert.Equal(t, 0, sample[2].Count())
}

func TestSpitCounts_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SpitCounts(&buf, sample[:2], Options{Format: "text"}))
	assert.Equal(t, "hound has 2 sub breeds\nUnknown breed: cat\n", buf.String())
}

func TestSpitCounts_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SpitCounts(&buf, sample[:2], Options{Format: "json"}))
	assert.JSONEq(t,
		`[{"breed":"hound","found":true,"count":2},{"breed":"cat","found":false,"count":-1}]`,
		buf.String())
}

func TestSpitSubBreeds_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SpitSubBreeds(&buf, sample[:3], Options{Format: "json"}))

	var got []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"afghan", "basset"}, got[0].SubBreeds)
	assert.False(t, got[1].Found)
	assert.Equal(t, []string{}, got[2].SubBreeds)
}

func TestSpitSubBreeds_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SpitSubBreeds(&buf, sample[:1], Options{Format: "yaml"}))

	var got []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "hound", got[0]["breed"])
	assert.Equal(t, true, got[0]["found"])
	assert.Len(t, got[0]["sub_breeds"], 2)
}

func TestSpitSubBreeds_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SpitSubBreeds(&buf, sample, Options{Format: "text", Titles: true, Padding: 2}))

	out := buf.String()
	assert.Contains(t, out, "BREED")
	assert.Contains(t, out, "SUB-BREEDS")
	assert.Contains(t, out, "hound")
	assert.Contains(t, out, "afghan basset")
	assert.Contains(t, out, "pug")
	assert.NotContains(t, out, "cat")
}

func TestSpitSubBreeds_TextNoTitles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SpitSubBreeds(&buf, sample[:1], Options{Format: "text"}))
	assert.NotContains(t, buf.String(), "BREED")
	assert.Contains(t, buf.String(), "afghan basset")
}

func TestSpitSubBreeds_NothingFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SpitSubBreeds(&buf, sample[1:2], Options{Format: "text", Titles: true}))
	assert.Empty(t, buf.String())
}

func TestSpitList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SpitList(&buf, "BREED", []string{"akita", "hound"}, Options{Format: "text"}))
	out := buf.String()
	assert.Contains(t, out, "akita")
	assert.Contains(t, out, "hound")
	assert.Less(t, strings.Index(out, "akita"), strings.Index(out, "hound"))
	assert.NotContains(t, out, "BREED")

	buf.Reset()
	require.NoError(t, SpitList(&buf, "BREED", nil, Options{Format: "json"}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "float64", value: 42.5, want: "42"},
		{name: "bool true", value: true, want: "true"},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "zero value with custom empty", value: 0, emptyVal: "0", want: "0"},
		{name: "empty string", value: "", emptyVal: "-", want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")
	assert.NotEmpty(t, header)
	assert.NotEmpty(t, even)
	assert.NotEmpty(t, odd)
}

func TestMarshal_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, marshal(&buf, sample, "xml"))
}
