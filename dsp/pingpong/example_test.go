package pingpong_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pingpong/dsp/pingpong"
)

func ExampleBuffer() {
	b, err := pingpong.New[byte](4)
	if err != nil {
		panic(err)
	}

	swapped, err := b.Append([]byte{1, 2, 3, 4, 5, 6})
	fmt.Println(swapped, err, b.Position())

	batch, ok := b.Read()
	fmt.Println(batch, ok)

	_, ok = b.Read()
	fmt.Println(ok)

	rest, count := b.Flush()
	fmt.Println(rest, count)

	// Output:
	// true <nil> 2
	// [1 2 3 4] true
	// false
	// [5 6 0 0] 2
}

func ExampleBuffer_Append_reserveFull() {
	b, _ := pingpong.New[int](2)

	b.Append([]int{1, 2})
	_, err := b.Append([]int{3, 4})
	fmt.Println(errors.Is(err, pingpong.ErrReserveFull))

	// Drain the reserve, then complete the pending swap.
	b.Read()
	swapped, err := b.Append(nil)
	fmt.Println(swapped, err)

	batch, _ := b.Read()
	fmt.Println(batch)

	// Output:
	// true
	// true <nil>
	// [3 4]
}
