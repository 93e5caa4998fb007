package typemap

import (
	"reflect"
	"testing"
)

func TestTypeFor_Interning(t *testing.T) {
	a := TypeFor[int]()
	b := TypeOf(reflect.TypeFor[int]())
	if a != b {
		t.Error("descriptors for the same type should be equal")
	}

	c := TypeFor[int64]()
	if a == c {
		t.Error("descriptors for different types should differ")
	}
}

func TestTypeOfValue(t *testing.T) {
	d := TypeOfValue(42)
	if d != TypeFor[int]() {
		t.Errorf("TypeOfValue(42) = %v, want descriptor for int", d)
	}

	if !TypeOfValue(nil).IsZero() {
		t.Error("TypeOfValue(nil) should be zero")
	}
}

func TestNamed(t *testing.T) {
	a := Named("pkg.List")
	b := Named("pkg.List")
	if a != b {
		t.Error("named descriptors with equal names should be equal")
	}
	if a == Named("pkg.Set") {
		t.Error("named descriptors with different names should differ")
	}
	if !Named("").IsZero() {
		t.Error("empty name should yield the zero descriptor")
	}
}

func TestParameterized_StructuralEquality(t *testing.T) {
	base := Named("pkg.List")
	a := Parameterized(base, TypeFor[string]())
	b := Parameterized(Named("pkg.List"), TypeFor[string]())
	if a != b {
		t.Error("structurally equal parameterized descriptors should be equal")
	}

	c := Parameterized(base, TypeFor[int]())
	if a == c {
		t.Error("different type arguments should produce different descriptors")
	}

	if a == base {
		t.Error("parameterized descriptor should differ from its base")
	}
}

func TestParameterized_BaseAndArgs(t *testing.T) {
	base := Named("pkg.Map")
	d := Parameterized(base, TypeFor[string](), TypeFor[int]())

	got, ok := d.Base()
	if !ok || got != base {
		t.Errorf("Base() = %v, %v, want %v, true", got, ok, base)
	}

	args := d.Args()
	if len(args) != 2 || args[0] != TypeFor[string]() || args[1] != TypeFor[int]() {
		t.Errorf("Args() = %v, want [string int] descriptors in order", args)
	}

	if _, ok := base.Base(); ok {
		t.Error("non-parameterized descriptor should have no base")
	}

	if !Parameterized(Descriptor{}).IsZero() {
		t.Error("parameterizing the zero descriptor should yield zero")
	}
}

func TestCategories_Reserved(t *testing.T) {
	cats := []Descriptor{Maps, Collections, Enums}
	for i, a := range cats {
		if !a.IsCategory() {
			t.Errorf("category %d should report IsCategory", i)
		}
		for j, b := range cats {
			if i != j && a == b {
				t.Errorf("categories %d and %d should differ", i, j)
			}
		}
	}

	if TypeFor[int]().IsCategory() {
		t.Error("a Go type descriptor is not a category")
	}
}

func TestDescriptor_Key(t *testing.T) {
	if TypeFor[int]().Key() == Named("int").Key() {
		t.Error("Go type and named descriptors must not share keys")
	}

	var zero Descriptor
	if zero.Key() != "" {
		t.Errorf("zero descriptor key = %q, want empty", zero.Key())
	}
	if zero.String() != "<none>" {
		t.Errorf("zero descriptor String() = %q", zero.String())
	}
}

func TestDescriptor_GoType(t *testing.T) {
	rt, ok := TypeFor[string]().GoType()
	if !ok || rt != reflect.TypeFor[string]() {
		t.Errorf("GoType() = %v, %v", rt, ok)
	}
	if _, ok := Named("pkg.List").GoType(); ok {
		t.Error("named descriptor has no Go type")
	}
}
