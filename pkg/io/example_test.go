package io_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/fcactx/pkg/fca"
	fcaio "github.com/matzehuels/fcactx/pkg/io"
)

func ExampleReadContext() {
	input := ",flies,swims\nduck,1,1\neagle,1,0\n"

	c, err := fcaio.ReadContext(strings.NewReader(input))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Objects(), c.Attributes())
	fmt.Println(c.Intent("eagle"))
	// Output:
	// [duck eagle] [flies swims]
	// [flies]
}

func ExampleWriteContext() {
	c, _ := fca.New([]string{"g1", "g2"}, []string{"m1", "m2"}, []fca.Pair{{Object: "g1", Attribute: "m1"}})

	if err := fcaio.WriteContext(fcaio.FormatBurmeister, c, os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// B
	//
	// 2
	// 2
	//
	// g1
	// g2
	// m1
	// m2
	// X.
	// ..
}

func ExampleDetectFormat() {
	name, ok := fcaio.DetectFormat([]string{`<?xml version="1.0"?>`, "<ConceptualSystem>"})
	fmt.Println(name, ok)

	_, ok = fcaio.DetectFormat([]string{"hello"})
	fmt.Println(ok)
	// Output:
	// conexp-xml true
	// false
}
