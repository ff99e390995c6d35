// Package enumgen renders scanned const groups as enumeration-like
// descriptor maps: one map[string]any variable per enumeration, ready
// to be passed to typehelper.IsType.
//
// Integer enums get reverse entries ("0" -> "Red") alongside the
// forward ones ("Red" -> Color(0)), mirroring reversible enumeration
// encodings: both directions are values of the mapping, and both are
// accepted members. String enums get forward entries only.
package enumgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"

	"github.com/michironoaware/typehelper/internal/enumscan"
)

// Generate writes a gofmt-ed Go source file declaring one descriptor
// map per enumeration in res. The output belongs to the scanned
// package.
func Generate(w io.Writer, res *enumscan.Result) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by typehelper gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", res.PackageName)

	for _, e := range res.Enums {
		fmt.Fprintf(&buf, "// %sValues is an enumeration-like descriptor for %s.\n", e.TypeName, e.TypeName)
		fmt.Fprintf(&buf, "var %sValues = map[string]any{\n", e.TypeName)
		for _, m := range e.Members {
			if e.IsString {
				fmt.Fprintf(&buf, "\t%q: %s(%q),\n", m.Name, e.TypeName, m.Str)
			} else {
				fmt.Fprintf(&buf, "\t%q: %s(%d),\n", m.Name, e.TypeName, m.Int)
			}
		}
		if !e.IsString {
			// Aliased members share a reverse key; the first name wins,
			// and a member named like a number must not shadow a
			// forward entry.
			seen := make(map[string]bool, len(e.Members))
			for _, m := range e.Members {
				seen[m.Name] = true
			}
			for _, m := range e.Members {
				key := strconv.FormatInt(m.Int, 10)
				if seen[key] {
					continue
				}
				seen[key] = true
				fmt.Fprintf(&buf, "\t%q: %q,\n", key, m.Name)
			}
		}
		fmt.Fprintf(&buf, "}\n\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
