package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-pingpong/dsp/buffer"
)

func ExamplePool() {
	p := buffer.NewPool[float64](4)

	b := p.Get()
	n := copy(b.Samples(), []float64{1, 2, 3})
	b.SetValid(n)

	fmt.Println(b.Data(), b.Samples())
	p.Put(b)

	// Output:
	// [1 2 3] [1 2 3 0]
}
