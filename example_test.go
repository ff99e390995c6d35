package typehelper_test

import (
	"fmt"

	"github.com/michironoaware/typehelper"
)

func ExampleIsType() {
	fmt.Println(typehelper.IsType("hi", typehelper.TypeString))
	fmt.Println(typehelper.IsType(5, typehelper.TypeString))

	weekday := map[string]any{"Mon": 1, "Tue": 2}
	fmt.Println(typehelper.IsType(2, weekday))
	fmt.Println(typehelper.IsType("Mon", weekday))
	// Output:
	// true
	// false
	// true
	// false
}

func ExampleErrIfNotType() {
	process := func(v any) error {
		if err := typehelper.ErrIfNotType(v, typehelper.TypeNumber); err != nil {
			return err
		}
		return nil
	}

	fmt.Println(process(42))
	fmt.Println(process("42"))
	// Output:
	// <nil>
	// type violation: value is not of type "number"
}

func ExampleErrIfNotTypeArray() {
	err := typehelper.ErrIfNotTypeArray([]any{1, 2, "3"}, typehelper.TypeNumber)
	fmt.Println(err)
	// Output:
	// type violation: value is not an array of "number"
}
