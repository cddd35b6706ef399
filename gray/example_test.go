package gray_test

import (
	"fmt"

	"github.com/katalvlaran/symdiag/gray"
)

// ExampleSequence lists the 3-bit reflected binary code.
// Each line differs from the previous one (and the last from the first)
// in exactly one bit.
func ExampleSequence() {
	seq, err := gray.Sequence(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, code := range seq {
		fmt.Println(i, code)
	}
	// Output:
	// 0 000
	// 1 001
	// 2 011
	// 3 010
	// 4 110
	// 5 111
	// 6 101
	// 7 100
}

// ExampleDecode recovers the position of a code within its sequence.
func ExampleDecode() {
	fmt.Println(gray.Decode(0b110))
	fmt.Println(gray.Encode(4) == 0b110)
	// Output:
	// 4
	// true
}
