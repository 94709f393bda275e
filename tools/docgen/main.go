// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// docgen turns docs/commands/<cmd>.md into
//   - docs/man/share/man1/breedctl-<cmd>.1 (md2man of the full page)
//   - docs/man/share/man1/breedctl.1 (index of every command)
//   - docs/tldr/breedctl-<cmd>.md (short description and quick examples)

const binary = "breedctl"

const fence = "```"

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	n, err := generate(repoRoot, writeOnlyIfChanged)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("generated docs for %d commands\n", n)
}

// commandDoc is the parsed form of one docs/commands page.
type commandDoc struct {
	Name     string
	Title    string
	Short    string
	Examples []example
	Raw      []byte
}

type example struct {
	Desc string
	Cmd  string
}

// generate renders every docs/commands/*.md under root and returns how many
// commands were processed.
func generate(root string, onlyIfChanged bool) (int, error) {
	docs, err := loadDocs(filepath.Join(root, "docs", "commands"))
	if err != nil {
		return 0, err
	}

	manDir := filepath.Join(root, "docs", "man", "share", "man1")
	tldrDir := filepath.Join(root, "docs", "tldr")
	for _, dir := range []string{manDir, tldrDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	for _, d := range docs {
		page := binary + "-" + d.Name
		if err := writeFileIfChanged(filepath.Join(manDir, page+".1"), md2man.Render(d.Raw), onlyIfChanged); err != nil {
			return 0, fmt.Errorf("writing man page for %s: %w", d.Name, err)
		}
		if err := writeFileIfChanged(filepath.Join(tldrDir, page+".md"), []byte(buildTLDR(d)), onlyIfChanged); err != nil {
			return 0, fmt.Errorf("writing TLDR for %s: %w", d.Name, err)
		}
	}

	index := md2man.Render([]byte(buildIndex(docs)))
	if err := writeFileIfChanged(filepath.Join(manDir, binary+".1"), index, onlyIfChanged); err != nil {
		return 0, fmt.Errorf("writing man index: %w", err)
	}

	return len(docs), nil
}

// loadDocs parses every markdown page in dir, sorted by command name.
func loadDocs(dir string) ([]commandDoc, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading commands dir %s: %w", dir, err)
	}

	var docs []commandDoc
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		docs = append(docs, parseDoc(strings.TrimSuffix(e.Name(), ".md"), raw))
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no command markdown found under %s", dir)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

var (
	h1Re          = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	h2Re          = regexp.MustCompile(`(?m)^##\s+(.+)$`)
	placeholderRe = regexp.MustCompile(`<([^<>\s]+)>`)
)

func parseDoc(name string, raw []byte) commandDoc {
	md := strings.ReplaceAll(string(raw), "\r\n", "\n")
	d := commandDoc{Name: name, Raw: raw}

	if m := h1Re.FindStringSubmatch(md); m != nil {
		d.Title = strings.TrimSpace(m[1])
	}

	sections := splitSections(md)
	d.Short = firstParagraph(sections["short description"])
	if d.Short == "" && d.Title != "" {
		d.Short = d.Title + "."
	}
	d.Examples = parseExamples(firstFence(sections["quick examples"]))

	return d
}

// splitSections maps each lower-cased "## " heading to the text under it.
func splitSections(md string) map[string]string {
	sections := map[string]string{}
	locs := h2Re.FindAllStringSubmatchIndex(md, -1)
	for i, loc := range locs {
		end := len(md)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		heading := strings.ToLower(strings.TrimSpace(md[loc[2]:loc[3]]))
		sections[heading] = md[loc[1]:end]
	}
	return sections
}

func firstParagraph(body string) string {
	for _, para := range strings.Split(strings.TrimSpace(body), "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			return strings.Join(strings.Fields(para), " ")
		}
	}
	return ""
}

// firstFence returns the contents of the first fenced code block in body.
func firstFence(body string) string {
	_, rest, ok := strings.Cut(body, fence)
	if !ok {
		return ""
	}
	code, _, ok := strings.Cut(rest, fence)
	if !ok {
		return ""
	}
	return code
}

// parseExamples pairs each "# description" comment with the command line
// that follows it. A command without a comment gets a generic description.
func parseExamples(code string) []example {
	var (
		exs  []example
		desc string
	)
	for _, ln := range strings.Split(code, "\n") {
		ln = strings.TrimSpace(ln)
		switch {
		case ln == "":
		case strings.HasPrefix(ln, "#"):
			desc = strings.TrimSpace(strings.TrimLeft(ln, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: ln})
			desc = ""
		}
	}
	return exs
}

func buildTLDR(d commandDoc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s-%s\n\n", binary, d.Name)

	summary := d.Short
	if summary == "" {
		summary = binary + " " + d.Name
	}
	fmt.Fprintf(&b, "> %s\n", summary)
	b.WriteString("> More information: https://github.com/staranto/breedctl.\n\n")

	exs := d.Examples
	if len(exs) == 0 {
		exs = []example{{Desc: "Show help for the command", Cmd: binary + " " + d.Name + " --help"}}
	}
	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s:\n\n`%s`\n", ex.Desc, sanitizeCommand(ex.Cmd))
	}
	return b.String()
}

// buildIndex writes the markdown for the top level breedctl(1) page.
func buildIndex(docs []commandDoc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s 1\n\n", binary)
	b.WriteString("## NAME\n\n")
	fmt.Fprintf(&b, "%s - look up dog breeds and their sub-breeds\n\n", binary)
	b.WriteString("## COMMANDS\n\n")
	for _, d := range docs {
		fmt.Fprintf(&b, "**%s-%s(1)**\n: %s\n\n", binary, d.Name, d.Short)
	}
	return b.String()
}

func sanitizeCommand(s string) string {
	// tldr pages spell placeholders as {{name}}.
	s = placeholderRe.ReplaceAllString(s, "{{$1}}")
	return strings.Join(strings.Fields(s), " ")
}

func writeFileIfChanged(path string, data []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		old, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(data)):
			return nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
