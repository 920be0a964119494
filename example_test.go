package probprep_test

import (
	"fmt"

	probprep "github.com/alnah/go-probprep"
)

// ExampleBuildReadme shows how a converted description becomes README.md.
func ExampleBuildReadme() {
	readme := probprep.BuildReadme("Two Sum", "**Example 1:**\n```\nInput: nums = [2,7]\n\n```")
	fmt.Println(readme)
	// Output:
	// # Two Sum
	//
	// ## Example 1:
	// ```
	// Input: nums = [2,7]
	// ```
}

// ExampleAssembleSource shows the layout of the generated source file.
func ExampleAssembleSource() {
	src := probprep.AssembleSource("#include <vector>\n", "class Solution {};", "int main(){}")
	fmt.Println(src)
	// Output:
	// #include <vector>
	//
	// class Solution {};
	//
	// int main(){}
}

// ExampleNewSnippetLoader loads the built-in C++ header and footer.
func ExampleNewSnippetLoader() {
	loader, err := probprep.NewSnippetLoader("")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	set, err := loader.LoadSnippets("cpp")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(set.Header)
	// Output:
	// #include <bits/stdc++.h>
	// using namespace std;
}
