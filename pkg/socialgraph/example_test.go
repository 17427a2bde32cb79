package socialgraph_test

import (
	"fmt"

	"github.com/kagami/github-social-graph/pkg/socialgraph"
)

func ExampleNormalize() {
	data := socialgraph.Data{
		"alice": {Followers: []string{"bob", "carol"}, Following: []string{}},
		"bob":   {Followers: []string{}, Following: []string{"alice"}},
	}

	normalized := socialgraph.Normalize(data)
	fmt.Println(normalized["alice"].Followers)
	fmt.Println(data["alice"].Followers)
	// Output:
	// [bob]
	// [bob carol]
}
