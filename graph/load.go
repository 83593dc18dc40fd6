package graph

import (
	"bytes"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	gojson "github.com/goccy/go-json"
	"github.com/teranos/declgen/errors"
)

// Alias rewrites one legacy namespace spelling to its current name.
type Alias struct {
	From string
	To   string
}

// LoadOptions control decoding of the feed.
type LoadOptions struct {
	// NamespaceAliases are applied to the raw document before decoding.
	NamespaceAliases []Alias
	// SchemaConstraint, when set, must be satisfied by the feed's version.
	SchemaConstraint string
}

// LoadFile reads and decodes the feed at path.
func LoadFile(path string, opts LoadOptions) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open feed %s", path)
	}
	defer f.Close()

	g, err := Load(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "feed %s", path)
	}
	return g, nil
}

// Load decodes a feed. The document may be wrapped in a script assignment
// ("var api = {...};"); everything outside the outermost braces is ignored.
func Load(r io.Reader, opts LoadOptions) (*Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read feed")
	}

	doc, err := extractObject(raw)
	if err != nil {
		return nil, err
	}
	doc = ApplyAliases(doc, opts.NamespaceAliases)

	var feed Feed
	if err := gojson.Unmarshal(doc, &feed); err != nil {
		return nil, errors.NewSchemaViolation("<feed>", "malformed feed document: %v", err)
	}

	if err := checkVersion(feed.Version, opts.SchemaConstraint); err != nil {
		return nil, err
	}

	return New(&feed)
}

func extractObject(raw []byte) ([]byte, error) {
	start := bytes.IndexByte(raw, '{')
	end := bytes.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return nil, errors.NewSchemaViolation("<feed>", "feed does not contain a JSON object")
	}
	return raw[start : end+1], nil
}

// aliasContexts are the characters that may precede a qualified name inside
// the document: string starts and type-argument positions.
var aliasContexts = []string{`"`, `'`, `<`, `,`}

// ApplyAliases rewrites legacy namespace prefixes ("yfiles.system." ->
// "yfiles.lang.") wherever a qualified name starts.
func ApplyAliases(doc []byte, aliases []Alias) []byte {
	for _, a := range aliases {
		for _, ctx := range aliasContexts {
			doc = bytes.ReplaceAll(doc,
				[]byte(ctx+a.From+"."),
				[]byte(ctx+a.To+"."))
		}
	}
	return doc
}

func checkVersion(version, constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid schema constraint %q", constraint)
	}
	if version == "" {
		return errors.NewSchemaViolation("<feed>.version", "feed has no version, required %s", constraint)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.NewSchemaViolation("<feed>.version", "feed version %q is not a semantic version", version)
	}
	if !c.Check(v) {
		return errors.WithHintf(
			errors.NewSchemaViolation("<feed>.version", "feed version %s does not satisfy %s", version, constraint),
			"update feed.schema_constraint after reviewing the correction tables against the new feed")
	}
	return nil
}
