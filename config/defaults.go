package config

import "github.com/spf13/viper"

const (
	// DefaultConfigName is the project config file looked up from the working directory upwards.
	DefaultConfigName = "declgen.toml"
	// EnvPrefix prefixes every environment override (DECLGEN_OUTPUT_DIR, ...).
	EnvPrefix = "DECLGEN"
	// DefaultDirPermissions for created directories
	DefaultDirPermissions = 0755
	// DefaultFilePermissions for written files
	DefaultFilePermissions = 0644
)

// DefaultStandardImports are Kotlin/JS types hoisted into imports when referenced.
var DefaultStandardImports = []string{
	"kotlin.js.Promise",
	"org.w3c.dom.Element",
	"org.w3c.dom.HTMLElement",
	"org.w3c.dom.HTMLInputElement",
	"org.w3c.dom.Node",
	"org.w3c.dom.events.Event",
	"org.w3c.dom.events.EventTarget",
	"org.w3c.dom.events.KeyboardEvent",
	"org.w3c.dom.events.MouseEvent",
	"org.w3c.dom.svg.SVGElement",
	"org.w3c.dom.svg.SVGGElement",
	"org.w3c.dom.svg.SVGDefsElement",
	"org.w3c.dom.svg.SVGSVGElement",
	"org.w3c.dom.TouchEvent",
	"org.w3c.dom.pointerevents.PointerEvent",
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("feed.path", "api.js")
	v.SetDefault("feed.schema_constraint", ">= 2.0.0")
	v.SetDefault("feed.namespace_aliases", []map[string]interface{}{
		{"from": "yfiles.system", "to": "yfiles.lang"},
		{"from": "system", "to": "yfiles.lang"},
	})

	v.SetDefault("output.dir", "generated/src/main/kotlin")
	v.SetDefault("output.clean", true)
	v.SetDefault("output.workers", 4)
	v.SetDefault("output.raw", false)

	v.SetDefault("generator.root_namespace", "yfiles")
	v.SetDefault("generator.module", "yfiles")
	v.SetDefault("generator.descriptions", "")
	v.SetDefault("generator.standard_imports", DefaultStandardImports)
	v.SetDefault("generator.primitive_types", []string{
		"yfiles.lang.Boolean",
		"yfiles.lang.Number",
		"yfiles.lang.String",
	})
	v.SetDefault("generator.marker_types", []string{
		"yfiles.lang.Attribute",
		"yfiles.lang.Enum",
		"yfiles.algorithms.EdgeDirectedness",
	})
	v.SetDefault("generator.cache_size", 4096)

	v.SetDefault("correction.mode", ModeNormal)
	v.SetDefault("correction.strict_numbers", false)

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", "everforest")
}
