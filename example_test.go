package keccak_test

import (
	"fmt"

	"github.com/whisperchain/keccak"
)

func ExampleHexSum256String() {
	fmt.Println(keccak.HexSum256String("Hello, WhisperChain!"))
	// Output: e957618bd21dd8e875ae631f15a66c34ab5bdd3c23886738647a902b1e7e9419
}

func ExampleHasher() {
	var h keccak.Hasher
	h.Write([]byte("Sign "))
	h.Write([]byte("this message"))
	digest, err := h.Finalize()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", digest)
	// Output: d6ce89c7d4f347455c7dddf19b42e0357edd7587b73b81b384810253c3c3c8ff
}
