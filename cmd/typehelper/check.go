package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/michironoaware/typehelper"
	"gopkg.in/yaml.v3"
)

// runCheck decodes each input document and applies the descriptor
// assertions, stopping at the first violation.
func runCheck(c *CheckCmd) error {
	level := slog.LevelInfo
	if c.Quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	types := make([]typehelper.Resolvable, 0, len(c.Type))
	for _, s := range c.Type {
		tag := typehelper.Tag(s)
		if !tag.Valid() {
			return fmt.Errorf("unknown type tag %q", s)
		}
		types = append(types, tag)
	}

	inputs := c.Paths
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	for _, path := range inputs {
		docs, err := readDocuments(path, c.YAML)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			if err := checkDocument(doc, types, c.Array); err != nil {
				var verr *typehelper.Error
				if errors.As(err, &verr) {
					logger.Error("check failed",
						slog.String("input", path),
						slog.Int("document", i),
						slog.String("violation", verr.Message))
				}
				return err
			}
			logger.Info("check passed",
				slog.String("input", path),
				slog.Int("document", i))
		}
	}
	return nil
}

// checkDocument maps the flag combination onto the assertion layer.
func checkDocument(doc any, types []typehelper.Resolvable, array bool) error {
	if !array {
		if len(types) == 1 {
			return typehelper.ErrIfNotType(doc, types[0])
		}
		return typehelper.ErrIfNotAnyType(doc, types...)
	}
	if len(types) == 1 {
		return typehelper.ErrIfNotTypeArray(doc, types[0])
	}
	list, ok := doc.([]any)
	if !ok {
		return typehelper.ErrIf(true, "value is not an array")
	}
	for _, el := range list {
		if err := typehelper.ErrIfNotAnyType(el, types...); err != nil {
			return err
		}
	}
	return nil
}

// readDocuments decodes every document in one input. JSON inputs may
// hold a stream of concatenated values, YAML inputs a multi-document
// file.
func readDocuments(path string, asYAML bool) ([]any, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var docs []any
	if asYAML {
		dec := yaml.NewDecoder(r)
		for {
			var doc any
			if err := dec.Decode(&doc); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
			docs = append(docs, doc)
		}
		return docs, nil
	}

	dec := json.NewDecoder(r)
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
