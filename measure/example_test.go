package measure_test

import (
	"fmt"

	"github.com/katalvlaran/wfpath/measure"
)

func ExampleFisher() {
	v := measure.Fisher(0.5)
	fmt.Printf("%.4f %.2f\n", v, measure.Frequency(v))
	// Output: 1.5708 0.50
}
