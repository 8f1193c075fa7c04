package ocs2

import (
	"math"
	"sort"
)

// TimeDiscretizationWithEvents builds a solver time grid over
// [initTime, finalTime]: a uniform grid with step dt, with the schedule's
// event times spliced in so that mode switches land exactly on grid points.
// Grid points within eps of an event time are snapped onto it rather than
// duplicated; events outside the open horizon are ignored.
func TimeDiscretizationWithEvents(initTime, finalTime, dt float64, eventTimes []float64, eps float64) ScalarArray {
	n := int(math.Ceil((finalTime - initTime) / dt))
	grid := make(ScalarArray, 0, n+1+len(eventTimes))
	for i := 0; i < n; i++ {
		grid = append(grid, initTime+float64(i)*dt)
	}
	grid = append(grid, finalTime)

	for _, te := range eventTimes {
		if te <= initTime+eps || te >= finalTime-eps {
			continue
		}
		ind := sort.SearchFloat64s(grid, te)
		switch {
		case ind < len(grid) && grid[ind]-te < eps:
			grid[ind] = te
		case ind > 0 && te-grid[ind-1] < eps:
			grid[ind-1] = te
		default:
			grid = append(grid, 0)
			copy(grid[ind+1:], grid[ind:])
			grid[ind] = te
		}
	}

	return grid
}
