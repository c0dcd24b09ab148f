package component

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

// TestDepositDecayScenario verifies a 1000/50 deposit after one second
func TestDepositDecayScenario(t *testing.T) {
	n := NewDeposit(1, r2.Point{}, 20, 1000, 50)

	n.Tick(1)

	assert.InDelta(t, 950, n.Amount(), 1e-9)
	assert.InDelta(t, 20*950.0/1000.0, n.Radius(), 1e-9)
	assert.False(t, n.Depleted())
}

// TestTakeClampsAtZero verifies take never returns more than available
func TestTakeClampsAtZero(t *testing.T) {
	n := NewDeposit(1, r2.Point{}, 20, 100, 0)

	assert.InDelta(t, 60, n.Take(60), 1e-9)
	assert.InDelta(t, 40, n.Amount(), 1e-9)

	assert.InDelta(t, 40, n.Take(60), 1e-9, "should only return what was left")
	assert.Equal(t, 0.0, n.Amount())
	assert.True(t, n.Depleted())

	assert.Equal(t, 0.0, n.Take(5))
	assert.Equal(t, 0.0, n.Amount())
}

// TestGiveHasNoCap verifies give can push amount past the initial amount
func TestGiveHasNoCap(t *testing.T) {
	n := NewDeposit(1, r2.Point{}, 20, 100, 0)
	n.Give(50)
	assert.InDelta(t, 150, n.Amount(), 1e-9)

	n.Tick(0)
	assert.InDelta(t, 30, n.Radius(), 1e-9, "radius follows amount ratio even above cap")
}

// TestRadiusInvariantAfterTicks verifies radius tracks amount across mixed operations
func TestRadiusInvariantAfterTicks(t *testing.T) {
	n := NewDeposit(1, r2.Point{}, 20, 1000, 50)
	ops := []func(){
		func() { n.Take(123) },
		func() { n.Give(17) },
		func() { n.Tick(0.25) },
		func() { n.Take(5000) },
		func() { n.Tick(3) },
	}
	for _, op := range ops {
		op()
		n.Tick(0.016)
		assert.GreaterOrEqual(t, n.Amount(), 0.0)
		assert.InDelta(t, n.InitialRadius()*n.Amount()/n.InitialAmount(), n.Radius(), 1e-9)
	}
	assert.True(t, n.Depleted())
}

// TestObstacleTickIsNoop verifies obstacles keep their radius and zero amount
func TestObstacleTickIsNoop(t *testing.T) {
	n := NewObstacle(3, r2.Point{X: 5, Y: 5}, 40)
	n.Tick(10)

	assert.Equal(t, 40.0, n.Radius())
	assert.Equal(t, 0.0, n.Amount())
	assert.Equal(t, KindObstacle, n.Kind())
}

func TestNodeSelects(t *testing.T) {
	n := NewObstacle(1, r2.Point{X: 100, Y: 0}, 40)

	assert.True(t, n.Selects(r2.Point{X: 100, Y: 0}, 1.25))
	assert.True(t, n.Selects(r2.Point{X: 145, Y: 0}, 1.25), "inside enlarged radius")
	assert.False(t, n.Selects(r2.Point{X: 145, Y: 0}, 1))
	assert.False(t, n.Selects(r2.Point{X: 151, Y: 0}, 1.25))
}

func TestIDAllocatorNeverReuses(t *testing.T) {
	var a IDAllocator
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := a.Next()
		assert.NotZero(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
