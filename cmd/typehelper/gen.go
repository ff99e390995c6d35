package main

import (
	"os"

	"github.com/michironoaware/typehelper/enumgen"
	"github.com/michironoaware/typehelper/internal/enumscan"
)

// runGen scans the package and renders descriptor maps.
func runGen(c *GenCmd) error {
	res, err := enumscan.Scan(c.Package)
	if err != nil {
		return err
	}

	out := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return enumgen.Generate(out, res)
}
