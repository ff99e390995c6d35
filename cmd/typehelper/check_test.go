package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/michironoaware/typehelper"
)

func TestCheckDocument(t *testing.T) {
	str := []typehelper.Resolvable{typehelper.TypeString}
	strOrNum := []typehelper.Resolvable{typehelper.TypeString, typehelper.TypeNumber}

	tests := []struct {
		name    string
		doc     any
		types   []typehelper.Resolvable
		array   bool
		wantErr bool
	}{
		{"single type passes", "hi", str, false, false},
		{"single type fails", 5.0, str, false, true},
		{"any type passes", 5.0, strOrNum, false, false},
		{"any type fails", true, strOrNum, false, true},
		{"array of single type passes", []any{"a", "b"}, str, true, false},
		{"array of single type fails", []any{"a", 1.0}, str, true, true},
		{"array of any type passes", []any{"a", 1.0}, strOrNum, true, false},
		{"array of any type fails", []any{"a", true}, strOrNum, true, true},
		{"non-array with array flag", "abc", strOrNum, true, true},
		{"empty array", []any{}, str, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkDocument(tt.doc, tt.types, tt.array)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkDocument(%#v) error = %v, wantErr %v", tt.doc, err, tt.wantErr)
			}
		})
	}
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadDocumentsJSON(t *testing.T) {
	path := writeInput(t, "in.json", `{"a":1}
[1,2]
"s"
`)
	docs, err := readDocuments(path, false)
	if err != nil {
		t.Fatalf("readDocuments: %v", err)
	}
	want := []any{
		map[string]any{"a": 1.0},
		[]any{1.0, 2.0},
		"s",
	}
	if !reflect.DeepEqual(docs, want) {
		t.Errorf("docs = %#v, want %#v", docs, want)
	}
}

func TestReadDocumentsYAML(t *testing.T) {
	path := writeInput(t, "in.yaml", "a: 1\n---\n- x\n- y\n")
	docs, err := readDocuments(path, true)
	if err != nil {
		t.Fatalf("readDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if _, ok := docs[0].(map[string]any); !ok {
		t.Errorf("first document = %T, want map", docs[0])
	}
	if seq, ok := docs[1].([]any); !ok || len(seq) != 2 {
		t.Errorf("second document = %#v, want 2-element sequence", docs[1])
	}
}

func TestReadDocumentsBadJSON(t *testing.T) {
	path := writeInput(t, "in.json", "{broken")
	if _, err := readDocuments(path, false); err == nil {
		t.Error("expected a decode error")
	}
}

func TestRunCheckRejectsUnknownTag(t *testing.T) {
	err := runCheck(&CheckCmd{Type: []string{"strnig"}})
	if err == nil {
		t.Fatal("expected an error for an unknown tag")
	}
}
