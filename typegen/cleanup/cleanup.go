// Package cleanup post-processes generated Kotlin text: it hoists qualified
// references into imports, strips self qualification, tidies KDoc links and
// collapses blank lines. The rewrite is purely textual and never changes what
// the declarations mean.
package cleanup

import (
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/teranos/declgen/typegen"
)

var (
	blankLines        = regexp.MustCompile(`\n([ \t]*\n){2,}`)
	blankBeforeBrace  = regexp.MustCompile(`\n([ \t]*\n)+([ \t]*\})`)
	docLink           = regexp.MustCompile(`\[[A-Za-z0-9.]+\]`)
	declarationNameRe = regexp.MustCompile(`\b(?:class|interface|object|typealias)\s+([A-Za-z0-9_]+)`)
)

// Cleaner rewrites generated files.
type Cleaner struct {
	// RootNamespace prefixes the types eligible for import hoisting.
	RootNamespace string
	// StandardImports are qualified platform types hoisted when referenced.
	StandardImports []string

	classRef *regexp.Regexp
	longLink *regexp.Regexp
}

// New creates a Cleaner for the given root namespace.
func New(rootNamespace string, standardImports []string) *Cleaner {
	root := regexp.QuoteMeta(rootNamespace)
	return &Cleaner{
		RootNamespace:   rootNamespace,
		StandardImports: standardImports,
		classRef:        regexp.MustCompile(`\b` + root + `\.[a-z]+\.[A-Za-z0-9]+\b`),
		longLink:        regexp.MustCompile(`(^|[^\]])\[(` + root + `\.[a-z]+)\.([^\]]+)\]`),
	}
}

// CleanAll cleans every file.
func (c *Cleaner) CleanAll(files []typegen.File) []typegen.File {
	out := make([]typegen.File, len(files))
	for i, f := range files {
		out[i] = c.Clean(f)
	}
	return out
}

// Clean rewrites one file.
func (c *Cleaner) Clean(f typegen.File) typegen.File {
	content, existing := extractImports(f.Content)
	pkg := packageOf(content)

	if pkg != "" {
		content = strings.ReplaceAll(content, "["+pkg+"."+typeName(f.Path)+".", "[")
		content = strings.ReplaceAll(content, pkg+".", "")
	}
	content = blankLines.ReplaceAllString(content, "\n\n")
	content = blankBeforeBrace.ReplaceAllString(content, "\n${2}")

	hoisted := c.importedClasses(content, existing)
	for _, qualified := range hoisted {
		content = replaceWord(content, qualified, shortName(qualified))
	}
	content = mapDocLines(content, cleanDoc(c.longLink))

	imports := append(existing, hoisted...)
	sort.Strings(imports)

	if len(imports) > 0 {
		content = insertImports(content, imports)
	}
	return typegen.File{Path: f.Path, Content: content}
}

// importedClasses collects the qualified references of code lines, sorted and
// distinct. References whose short name would be ambiguous, or is already
// taken by an existing import or a local declaration, stay qualified.
func (c *Cleaner) importedClasses(content string, existing []string) []string {
	code := codeLines(content)

	found := make(map[string]bool)
	for _, ref := range c.classRef.FindAllString(code, -1) {
		found[ref] = true
	}
	for _, std := range c.StandardImports {
		if wordRegexp(std).MatchString(code) {
			found[std] = true
		}
	}

	declared := make(map[string]bool)
	for _, m := range declarationNameRe.FindAllStringSubmatch(code, -1) {
		declared[m[1]] = true
	}
	shortNames := make(map[string]int)
	for _, imp := range existing {
		delete(found, imp)
		shortNames[shortName(imp)]++
	}
	for qualified := range found {
		shortNames[shortName(qualified)]++
	}

	out := make([]string, 0, len(found))
	for qualified := range found {
		name := shortName(qualified)
		if shortNames[name] > 1 || declared[name] {
			continue
		}
		out = append(out, qualified)
	}
	sort.Strings(out)
	return out
}

func shortName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

func wordRegexp(qualified string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(qualified) + `\b`)
}

func replaceWord(content, qualified, short string) string {
	return wordRegexp(qualified).ReplaceAllLiteralString(content, short)
}

// extractImports removes import lines and returns them.
func extractImports(content string) (string, []string) {
	lines := strings.Split(content, "\n")
	kept := lines[:0:0]
	var imports []string
	for _, line := range lines {
		if strings.HasPrefix(line, "import ") {
			imports = append(imports, strings.TrimSpace(strings.TrimPrefix(line, "import ")))
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), imports
}

// insertImports places the import block after the package line.
func insertImports(content string, imports []string) string {
	block := make([]string, len(imports))
	for i, imp := range imports {
		block[i] = "import " + imp
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "package ") {
			head := strings.Join(lines[:i+1], "\n")
			tail := strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
			return head + "\n\n" + strings.Join(block, "\n") + "\n\n" + tail
		}
	}
	return strings.Join(block, "\n") + "\n\n" + content
}

func isDocLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "/**") || strings.HasPrefix(trimmed, "*")
}

func codeLines(content string) string {
	lines := strings.Split(content, "\n")
	out := lines[:0:0]
	for _, line := range lines {
		if !isDocLine(line) {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func mapDocLines(content string, fn func(string) string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if isDocLine(line) {
			lines[i] = fn(line)
		}
	}
	return strings.Join(lines, "\n")
}

// cleanDoc collapses "[X.Y][X.Y]" to "[X.Y]" and relabels long links
// "[pkg.Type.member]" as "[member][pkg.Type.member]".
func cleanDoc(longLink *regexp.Regexp) func(string) string {
	return func(line string) string {
		line = dropRepeatedLinks(line)
		return longLink.ReplaceAllStringFunc(line, func(match string) string {
			m := longLink.FindStringSubmatch(match)
			target := m[2] + "." + m[3]
			return m[1] + "[" + shortName(m[3]) + "][" + target + "]"
		})
	}
}

// dropRepeatedLinks removes every link that directly follows an identical
// link, wherever it sits in a chain of adjacent links.
func dropRepeatedLinks(line string) string {
	var b strings.Builder
	last, prev, prevEnd := 0, "", -1
	for _, loc := range docLink.FindAllStringIndex(line, -1) {
		link := line[loc[0]:loc[1]]
		if loc[0] == prevEnd && link == prev {
			b.WriteString(line[last:loc[0]])
			last = loc[1]
		}
		prev, prevEnd = link, loc[1]
	}
	if last == 0 {
		return line
	}
	b.WriteString(line[last:])
	return b.String()
}

func packageOf(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "package ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "package "))
		}
	}
	return ""
}

// typeName derives the declared type from a file path: "a/b/IGraph.kt" and
// "a/b/IGraphCompanion.kt" both yield "IGraph".
func typeName(p string) string {
	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	return strings.TrimSuffix(base, "Companion")
}
