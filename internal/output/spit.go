// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/staranto/breedctl/internal/config"
)

// Formats accepted by the --output flag.
var Formats = []string{"text", "json", "yaml"}

// Result is the outcome of one breed lookup.
type Result struct {
	Breed     string   `json:"breed" yaml:"breed"`
	Found     bool     `json:"found" yaml:"found"`
	SubBreeds []string `json:"sub_breeds" yaml:"sub_breeds"`
}

// Count returns the number of sub-breeds, or -1 for an unknown breed.
func (r Result) Count() int {
	if !r.Found {
		return -1
	}
	return len(r.SubBreeds)
}

type countRow struct {
	Breed string `json:"breed" yaml:"breed"`
	Found bool   `json:"found" yaml:"found"`
	Count int    `json:"count" yaml:"count"`
}

// Options controls how results are rendered.
type Options struct {
	Format  string
	Color   bool
	Titles  bool
	Padding int
}

// OptionsFromCommand reads the output related flags from cmd.
func OptionsFromCommand(cmd *cli.Command) Options {
	pad, _ := config.GetInt("padding", 2)
	return Options{
		Format:  cmd.String("output"),
		Color:   cmd.Bool("color"),
		Titles:  cmd.Bool("titles"),
		Padding: pad,
	}
}

// CountLine renders the one line summary for r, e.g. "hound has 7 sub breeds"
// or "Unknown breed: cat".
func CountLine(r Result) string {
	if !r.Found {
		return "Unknown breed: " + r.Breed
	}
	return fmt.Sprintf("%s has %s", r.Breed, english.Plural(len(r.SubBreeds), "sub breed", ""))
}

// SpitSubBreeds writes the sub-breeds of each found result. Text output omits
// unknown breeds; structured output keeps them with found=false.
func SpitSubBreeds(w io.Writer, results []Result, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json", "yaml":
		return marshal(w, results, opts.Format)
	default:
		var rows [][]string
		for _, r := range results {
			if !r.Found {
				continue
			}
			rows = append(rows, []string{
				r.Breed,
				InterfaceToString(len(r.SubBreeds), "0"),
				InterfaceToString(strings.Join(r.SubBreeds, " "), "-"),
			})
		}
		TableWriter(w, []string{"BREED", "COUNT", "SUB-BREEDS"}, rows, opts)
		return nil
	}
}

// SpitCounts writes one count line per result, or the equivalent structured
// document.
func SpitCounts(w io.Writer, results []Result, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json", "yaml":
		rows := make([]countRow, 0, len(results))
		for _, r := range results {
			rows = append(rows, countRow{Breed: r.Breed, Found: r.Found, Count: r.Count()})
		}
		return marshal(w, rows, opts.Format)
	default:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, CountLine(r)); err != nil {
				return err
			}
		}
		return nil
	}
}

// SpitList writes a flat list of names.
func SpitList(w io.Writer, title string, names []string, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json", "yaml":
		if names == nil {
			names = []string{}
		}
		return marshal(w, names, opts.Format)
	default:
		rows := make([][]string, 0, len(names))
		for _, n := range names {
			rows = append(rows, []string{n})
		}
		TableWriter(w, []string{title}, rows, opts)
		return nil
	}
}

func marshal(w io.Writer, v any, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "json":
		out, err = json.Marshal(v)
		if err == nil {
			out = append(out, '\n')
		}
	case "yaml":
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		log.WithError(err).Debug("marshal failed")
		return fmt.Errorf("failed to marshal %s output: %w", format, err)
	}
	_, err = w.Write(out)
	return err
}

// TableWriter renders rows in a borderless table honoring color, titles and
// padding options.
func TableWriter(w io.Writer, headers []string, rows [][]string, opts Options) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(opts.Padding)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
