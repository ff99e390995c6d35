package typehelper

import (
	"math/big"
	"testing"
	"unsafe"
)

func TestPrimitiveOf(t *testing.T) {
	var nilPtr *int
	var nilBig *big.Int
	var nilFn func()
	var nilUnsafe unsafe.Pointer

	tests := []struct {
		name  string
		value any
		want  Tag
	}{
		{"nil interface", nil, TypeUndefined},
		{"typed nil pointer", nilPtr, TypeNull},
		{"typed nil bigint", nilBig, TypeNull},
		{"typed nil func", nilFn, TypeNull},
		{"typed nil unsafe pointer", nilUnsafe, TypeNull},
		{"string", "x", TypeString},
		{"int", 1, TypeNumber},
		{"uintptr", uintptr(1), TypeNumber},
		{"float", 1.5, TypeNumber},
		{"complex is object", complex(1, 2), TypeObject},
		{"bool", false, TypeBoolean},
		{"bigint", big.NewInt(1), TypeBigInt},
		{"symbol", NewSymbol(""), TypeSymbol},
		{"func", func() {}, TypeFunction},
		{"struct", struct{}{}, TypeObject},
		{"pointer", new(int), TypeObject},
		{"slice", []int{}, TypeObject},
		{"map", map[string]int{}, TypeObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := primitiveOf(tt.value); got != tt.want {
				t.Errorf("primitiveOf(%#v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestTagValid(t *testing.T) {
	for _, tag := range []Tag{
		TypeString, TypeNumber, TypeBigInt, TypeBoolean, TypeSymbol,
		TypeUndefined, TypeObject, TypeFunction,
		TypeNull, TypeNullable, TypeArray, TypeIterable,
	} {
		if !tag.Valid() {
			t.Errorf("expected %q to be a valid tag", tag)
		}
	}
	for _, tag := range []Tag{"", "Object", "int", "nil"} {
		if tag.Valid() {
			t.Errorf("expected %q to be invalid", tag)
		}
	}
}

func TestSymbolIdentity(t *testing.T) {
	a := NewSymbol("k")
	b := NewSymbol("k")
	if a == b {
		t.Error("expected symbols with the same description to be distinct")
	}
	if a != a {
		t.Error("expected a symbol to equal itself")
	}
	if a.Description() != "k" {
		t.Errorf("Description() = %q, want %q", a.Description(), "k")
	}
	if a.String() != "Symbol(k)" {
		t.Errorf("String() = %q, want %q", a.String(), "Symbol(k)")
	}

	var zero Symbol
	if zero.Description() != "" {
		t.Errorf("zero Description() = %q, want empty", zero.Description())
	}
	if primitiveOf(zero) != TypeSymbol {
		t.Error("expected the zero Symbol to classify as symbol")
	}
}
