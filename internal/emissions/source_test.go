package emissions

// constSource returns the same draw every time.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
