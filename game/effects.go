package game

// --- Explosion Pool ---

// Explosion is an expanding, fading burst drawn on tower hits and deaths.
type Explosion struct {
	X, Y      float64
	Size      float64
	Angle     float64
	D         float64 // rotation per frame
	Alpha     float64
	PoolIndex int // Index in pool for swap-and-pop
}

// ExplosionPool manages reusable explosion objects.
type ExplosionPool struct {
	Pool        []*Explosion
	ActiveCount int
	MaxSize     int
}

// NewExplosionPool creates a new explosion pool with pre-allocated objects.
func NewExplosionPool(maxSize int) *ExplosionPool {
	pool := &ExplosionPool{
		Pool:    make([]*Explosion, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		pool.Pool[i] = &Explosion{PoolIndex: i}
	}
	return pool
}

// Acquire gets an available explosion from the pool.
func (p *ExplosionPool) Acquire() *Explosion {
	if p.ActiveCount >= p.MaxSize {
		return nil
	}
	e := p.Pool[p.ActiveCount]
	e.PoolIndex = p.ActiveCount
	p.ActiveCount++
	return e
}

// Release returns an explosion to the pool using swap-and-pop.
func (p *ExplosionPool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
		p.Pool[index].PoolIndex = index
	}
	p.ActiveCount--
}

// Clear resets the pool, marking all objects as inactive.
func (p *ExplosionPool) Clear() {
	p.ActiveCount = 0
}

// ForEachReverse iterates over active objects in reverse order, so a
// Release during iteration never skips an element.
func (p *ExplosionPool) ForEachReverse(fn func(*Explosion, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}

// Advance animates one explosion by a frame. Returns false once it has
// faded out and should be released.
func (e *Explosion) Advance() bool {
	e.Size += 14
	e.Angle += e.D
	e.Alpha -= 0.08
	return e.Alpha >= 0.1
}

// --- Spark Pool ---

// Spark is a short-lived particle thrown off by bullet impacts.
type Spark struct {
	X, Y       float64
	XAcc, YAcc float64
	T          int // frames remaining
	Color      int // palette index of the hit tower
	PoolIndex  int
}

// SparkPool manages reusable spark particles.
type SparkPool struct {
	Pool        []*Spark
	ActiveCount int
	MaxSize     int
}

// NewSparkPool creates a new spark pool with pre-allocated objects.
func NewSparkPool(maxSize int) *SparkPool {
	pool := &SparkPool{
		Pool:    make([]*Spark, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		pool.Pool[i] = &Spark{PoolIndex: i}
	}
	return pool
}

// Acquire gets an available spark from the pool.
func (p *SparkPool) Acquire() *Spark {
	if p.ActiveCount >= p.MaxSize {
		return nil
	}
	s := p.Pool[p.ActiveCount]
	s.PoolIndex = p.ActiveCount
	p.ActiveCount++
	return s
}

// Release returns a spark to the pool using swap-and-pop.
func (p *SparkPool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
		p.Pool[index].PoolIndex = index
	}
	p.ActiveCount--
}

// Clear resets the pool, marking all objects as inactive.
func (p *SparkPool) Clear() {
	p.ActiveCount = 0
}

// ForEachReverse iterates over active objects in reverse order.
func (p *SparkPool) ForEachReverse(fn func(*Spark, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}

// Advance moves one spark by a frame with light drag. Returns false once
// its lifetime has run out.
func (s *Spark) Advance() bool {
	s.X += s.XAcc
	s.Y += s.YAcc
	s.XAcc *= 0.92
	s.YAcc *= 0.92
	s.T--
	return s.T > 0
}
