// Package kotlin renders the IR as Kotlin/JS external declarations.
//
// Every type produces a primary file (<Name>.kt) and, for instantiable
// classes and interfaces, a companion file (<Name>Companion.kt) carrying the
// type token and the is/as/to cast helpers. Function signatures become type
// aliases collected in one Aliases.kt per namespace.
//
// Output is deterministic: types arrive sorted from the IR, members are
// emitted in IR order and aliases are sorted by ID.
package kotlin

import (
	"sort"
	"strings"

	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/ir"
	"github.com/teranos/declgen/logger"
	"github.com/teranos/declgen/typegen"
)

// DefaultClassToken is the runtime type token every generated Static object exposes.
const DefaultClassToken = "yfiles.lang.Class"

// Options configure the generator.
type Options struct {
	// Module is the @file:JsModule value.
	Module string
	// ClassToken is the type of the "$class" accessor.
	ClassToken string
	// Descriptions supplies KDoc text; nil means none.
	Descriptions typegen.Descriptions
}

// Generator implements typegen.Generator for Kotlin/JS.
type Generator struct {
	opts Options
}

// New creates a Kotlin generator.
func New(opts Options) *Generator {
	if opts.ClassToken == "" {
		opts.ClassToken = DefaultClassToken
	}
	if opts.Descriptions == nil {
		opts.Descriptions = typegen.NoDescriptions{}
	}
	return &Generator{opts: opts}
}

// Language returns "kotlin".
func (g *Generator) Language() string { return "kotlin" }

// FileExtension returns "kt".
func (g *Generator) FileExtension() string { return "kt" }

// Generate renders every type and function signature of m.
func (g *Generator) Generate(m *ir.Model) ([]typegen.File, error) {
	if g.opts.Module == "" {
		return nil, errors.New("kotlin generator requires a module name")
	}
	log := logger.ComponentLogger("typegen.kotlin")

	r := &renderer{opts: g.opts, registry: m.Registry}
	var files []typegen.File
	for _, t := range m.Types {
		out, err := r.typeFiles(t)
		if err != nil {
			return nil, err
		}
		files = append(files, out...)
	}
	files = append(files, r.aliasFiles(m.FunctionSignatures)...)

	log.Debugw("Declarations rendered",
		logger.FieldTypes, len(m.Types),
		logger.FieldFiles, len(files))
	return files, nil
}

// renderer holds the state of one Generate call.
type renderer struct {
	opts     Options
	registry *ir.Registry
}

func (r *renderer) typeFiles(t *ir.Type) ([]typegen.File, error) {
	dir := typegen.PackagePath(t.Package) + "/"

	if supplement, ok := supplements[t.ID]; ok {
		content := "package " + t.Package + "\n\n" + supplement(t) + "\n"
		return []typegen.File{{Path: dir + t.Name + ".kt", Content: stripPackage(content, t.Package)}}, nil
	}

	var content string
	switch t.Kind {
	case ir.KindClass:
		content = r.classContent(t)
	case ir.KindInterface:
		content = r.interfaceContent(t)
	case ir.KindEnum:
		content = r.enumContent(t)
	default:
		return nil, errors.NewSchemaViolation(t.ID, "undefined type kind %q for generation", t.Kind)
	}

	files := []typegen.File{{
		Path:    dir + t.Name + ".kt",
		Content: r.header(t) + "\n" + stripPackage(content, t.Package) + "\n",
	}}
	if companion := r.companionContent(t); companion != "" {
		files = append(files, typegen.File{
			Path:    dir + t.Name + "Companion.kt",
			Content: stripPackage(companion, t.Package) + "\n",
		})
	}
	return files, nil
}

func (r *renderer) header(t *ir.Type) string {
	return "@file:JsModule(\"" + r.opts.Module + "\")\n\npackage " + t.Package + "\n"
}

// aliasFiles groups function signatures by namespace into Aliases.kt files.
func (r *renderer) aliasFiles(sigs []*ir.FunctionSignature) []typegen.File {
	byPackage := make(map[string][]*ir.FunctionSignature)
	for _, sig := range sigs {
		byPackage[sig.Package] = append(byPackage[sig.Package], sig)
	}
	packages := make([]string, 0, len(byPackage))
	for pkg := range byPackage {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)

	files := make([]typegen.File, 0, len(packages))
	for _, pkg := range packages {
		group := byPackage[pkg]
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })

		aliases := make([]string, len(group))
		for i, sig := range group {
			aliases[i] = r.alias(sig)
		}
		content := "package " + pkg + "\n\n" + strings.Join(aliases, "\n\n") + "\n"
		files = append(files, typegen.File{
			Path:    typegen.PackagePath(pkg) + "/Aliases.kt",
			Content: stripPackage(content, pkg),
		})
	}
	return files
}

func (r *renderer) alias(sig *ir.FunctionSignature) string {
	params := make([]string, len(sig.Parameters))
	for i, p := range sig.Parameters {
		params[i] = escape(p.Name) + ": " + r.typeString(p.Type)
	}
	return "typealias " + sig.Name + typeParameterNames(sig.TypeParameters) +
		" = (" + strings.Join(params, ", ") + ") -> " + r.typeString(sig.Returns)
}

// stripPackage removes redundant self-package qualification. The package
// line itself has no trailing dot and survives.
func stripPackage(content, pkg string) string {
	if pkg == "" {
		return content
	}
	return strings.ReplaceAll(content, pkg+".", "")
}
