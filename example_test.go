package partialjson_test

import (
	"fmt"

	"github.com/promplate/partialjson"
	"github.com/promplate/partialjson/jsonparser"
)

func ExampleComplete() {
	out, err := partialjson.Complete(`{"name": "John Doe", "age":`, jsonparser.AllowAll())
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: {"name": "John Doe"}
}

func ExampleCompleter() {
	c := partialjson.NewCompleter(jsonparser.AllowAll())
	for _, chunk := range []string{`{"items": [`, `1, 2`} {
		fmt.Fprint(c, chunk)
	}
	out, err := c.Current()
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: {"items": [1, 2]}
}
