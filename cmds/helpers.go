package cmds

import "fmt"

// Var defines name to set a value and name+"." to reset it to zero.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(fmt.Sprintf("set %s (%T)", name, value)))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc(fmt.Sprintf("reset %s", name)))

	return &value
}

// Switch defines name to turn the flag on and "!"+name to turn it off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(fmt.Sprintf("enable %s", name)))

	Define("!"+name, Func(func() {
		value = false
	}).Desc(fmt.Sprintf("disable %s", name)))

	return &value
}

// Collect defines a repeatable name that appends each argument.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(fmt.Sprintf("add to %s (%T, repeatable)", name, value)))
	return &value
}
