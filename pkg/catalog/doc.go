// Package catalog loads named formatter definitions from YAML, TOML or JSON
// files and compiles them on demand.
//
// A catalog file maps names to formatter entries:
//
//	formatters:
//	  card:
//	    pattern: "9999 9999 9999 9999"
//	  comment:
//	    type: oneline_textarea
//	    maxLength: 200
//	    trimOnBlur: false
//
// Entries naming a preset type start from that preset; every other field
// overrides it. Names missing from the catalog fall back to the built-in
// presets of package format.
package catalog
