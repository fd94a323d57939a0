package object

import "testing"

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	if hello1.HashKey() != hello2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}
	if diff1.HashKey() != diff2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}
	if hello1.HashKey() == diff1.HashKey() {
		t.Errorf("strings with different content have same hash keys")
	}
}

func TestIntegerHashKey(t *testing.T) {
	one1 := &Integer{Value: 1}
	one2 := &Integer{Value: 1}
	two := &Integer{Value: 2}

	if one1.HashKey() != one2.HashKey() {
		t.Errorf("integers with same value have different hash keys")
	}
	if one1.HashKey() == two.HashKey() {
		t.Errorf("integers with different value have same hash keys")
	}
}

func TestBooleanHashKey(t *testing.T) {
	true1 := &Boolean{Value: true}
	true2 := &Boolean{Value: true}
	false1 := &Boolean{Value: false}

	if true1.HashKey() != true2.HashKey() {
		t.Errorf("true booleans have different hash keys")
	}
	if true1.HashKey() == false1.HashKey() {
		t.Errorf("true and false have same hash keys")
	}
}

func TestInspect(t *testing.T) {
	if (&Integer{Value: 5}).Inspect() != "5" {
		t.Errorf("Integer.Inspect() wrong")
	}
	if (&Boolean{Value: true}).Inspect() != "true" {
		t.Errorf("Boolean.Inspect() wrong")
	}
	if (&Null{}).Inspect() != "null" {
		t.Errorf("Null.Inspect() wrong")
	}
	arr := &Array{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}
	if arr.Inspect() != "[1, 2]" {
		t.Errorf("Array.Inspect() wrong, got %s", arr.Inspect())
	}
}
