package catalog

import (
	_ "embed"
)

//go:embed demo.yaml
var demoData []byte

// DemoData returns the raw built-in catalog YAML.
func DemoData() []byte {
	return demoData
}

// Demo returns the built-in catalog used when no catalog path is
// configured.
func Demo() *Catalog {
	c, err := Parse(demoData)
	if err != nil {
		panic("catalog: built-in demo catalog is invalid: " + err.Error())
	}
	return c
}
