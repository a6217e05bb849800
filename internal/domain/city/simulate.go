package city

// StepReport describes what a growth or tick step changed.
type StepReport struct {
	Grown     *Point  `json:"grown,omitempty"`
	Buildings int     `json:"buildings"`
	Economy   Economy `json:"economy"`
}

// Simulate visits every tile steps times. Within a step the order is
// row-major with x outer and y inner, so a building may observe state written
// by a tile visited earlier in the same step.
func (c *City) Simulate(steps int) {
	for count := 0; count < steps; count++ {
		for x := 0; x < c.size; x++ {
			for y := 0; y < c.size; y++ {
				c.tiles[x][y].Simulate(c)
			}
		}
	}
}

// ManualSimulate grows the city by one random building and settles the
// economy. It does not traverse the grid.
func (c *City) ManualSimulate() StepReport {
	grown := c.grow()
	buildings := c.settleEconomy()
	return StepReport{Grown: grown, Buildings: buildings, Economy: c.economy}
}

// Tick runs one full step: grid traversal, growth, economy settlement.
func (c *City) Tick() StepReport {
	c.Simulate(1)
	report := c.ManualSimulate()
	c.simTime++
	return report
}

// grow adds population and places the growth building on a uniformly random
// empty tile. Nothing is placed when the grid is full.
func (c *City) grow() *Point {
	c.economy.Population += c.tuning.GrowthPopulation

	if len(c.occupied) >= c.size*c.size {
		return nil
	}
	var x, y int
	for {
		x = c.rng.Intn(c.size)
		y = c.rng.Intn(c.size)
		if !c.IsOccupied(x, y) {
			break
		}
	}
	if _, err := c.PlaceBuilding(x, y, c.tuning.GrowthBuilding); err != nil {
		return nil
	}
	return &Point{X: x, Y: y}
}

func (c *City) settleEconomy() int {
	c.economy.consume(c.tuning)
	list := c.BuildingList()
	for _, bt := range list {
		c.economy.add(c.tuning.yieldFor(bt))
	}
	return len(list)
}
