package searcher

import "math"

type ucb1 struct {
	c    float64
	logN float64
}

func newUCB1(c float64, parentVisits int) ucb1 {
	return ucb1{c: c, logN: math.Log(float64(parentVisits) + 1)}
}

// evaluate returns q/n + c*sqrt(ln(N+1)/n), unvisited children score +Inf
func (u ucb1) evaluate(q float64, n int) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	return q/float64(n) + u.c*math.Sqrt(u.logN/float64(n))
}
