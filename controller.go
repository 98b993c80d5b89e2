package tombmap

import "go.uber.org/zap"

// controller owns the live/tombstone counters and capacity class, and
// decides when the table grows, rebuilds in place, or shrinks (spec §4.4).
// It holds the only reference to the map's current slotArray generation.
type controller[K comparable, V any] struct {
	slots      *slotArray[K, V]
	live       uint64
	tombstones uint64
	class      int

	hashFunc HashFunc[K]
	alloc    Allocator[K, V]
	logger   *zap.Logger
	metrics  metricsSink
}

func (c *controller[K, V]) init() error {
	slots, err := newSlotArray[K, V](c.alloc, ladder[0])
	if err != nil {
		return ErrAllocationFailed
	}
	c.slots = slots
	c.class = 0
	c.live = 0
	c.tombstones = 0
	c.reportCapacity()
	return nil
}

func (c *controller[K, V]) length() uint64 {
	return c.slots.length()
}

func (c *controller[K, V]) reportCapacity() {
	c.metrics.setCapacity(c.length())
}

func (c *controller[K, V]) log(cause rebuildCause) {
	if c.logger == nil {
		return
	}
	c.logger.Debug("tombmap: rebuild",
		zap.String("cause", string(cause)),
		zap.Int("class", c.class),
		zap.Uint64("live", c.live),
		zap.Uint64("tombstones", c.tombstones),
	)
}

// adjustBeforeInsert is the gate every mutation that may add a live entry
// invokes first (spec §4.5): grow on load breach, then rebuild-in-place on
// tombstone saturation. Operations that cannot grow live count never call
// this.
func (c *controller[K, V]) adjustBeforeInsert() error {
	length := c.length()

	if loadBreached(c.live, length) {
		if c.class >= maxCapacityClass {
			return ErrCapacityExhausted
		}
		if err := c.rebuild(c.class+1, causeGrow); err != nil {
			return err
		}
		return nil
	}

	if c.tombstones > c.length() {
		// Rebuild-in-place trigger: decrement the class by one
		// (saturating at zero) before resizing, per spec's Open
		// Questions — documented as-is, not reinterpreted. See
		// DESIGN.md item 2.
		targetClass := c.class
		if targetClass > 0 {
			targetClass--
		}
		if err := c.rebuild(targetClass, causeTombstoneCleanup); err != nil {
			return err
		}
	}

	return nil
}

// rebuild allocates a fresh slot array at targetClass, re-inserts every
// live entry, and swaps it in. The old array is only released after the
// new one is fully populated, giving the strong allocation-failure
// guarantee spec §5/§7 require.
func (c *controller[K, V]) rebuild(targetClass int, cause rebuildCause) error {
	if targetClass > maxCapacityClass {
		return ErrCapacityExhausted
	}

	newSlots, err := newSlotArray[K, V](c.alloc, ladder[targetClass])
	if err != nil {
		return ErrAllocationFailed
	}

	old := c.slots
	for i, tag := range old.tags {
		if tag != tagLive {
			continue
		}
		e := old.entries[i]
		h := c.hashFunc(e.key)
		insertOnly(newSlots, h, e.key, e.value)
	}

	old.release(c.alloc)

	c.slots = newSlots
	c.class = targetClass
	c.tombstones = 0

	c.log(cause)
	c.metrics.incRebuild(cause)
	c.reportCapacity()

	return nil
}

// ensureCapacity raises the class so length >= target, without further
// grows, per spec §4.4/§4.5.
func (c *controller[K, V]) ensureCapacity(target uint64) error {
	targetClass := classForTarget(target)
	if targetClass > maxCapacityClass {
		return ErrCapacityExhausted
	}
	if c.class >= targetClass {
		return nil
	}
	return c.rebuild(targetClass, causeEnsureCapacity)
}

// reduceMemory shrinks the class per the §4.4 shrink rule. A no-op when
// already at the target class or when live is not low enough relative to
// length to qualify.
func (c *controller[K, V]) reduceMemory() error {
	length := c.length()
	if !shrinkEligible(c.live, length) {
		return nil
	}

	target := shrinkTargetClass(c.live)
	if target >= c.class {
		return nil
	}

	return c.rebuild(target, causeShrink)
}

// clearRetainCapacity empties every slot without reallocating; class is
// unchanged.
func (c *controller[K, V]) clearRetainCapacity() {
	c.slots.fillEmpty()
	c.live = 0
	c.tombstones = 0
}

// clearAndRelease shrinks the class to 0 and empties every slot.
func (c *controller[K, V]) clearAndRelease() error {
	if c.class == 0 {
		c.clearRetainCapacity()
		return nil
	}

	newSlots, err := newSlotArray[K, V](c.alloc, ladder[0])
	if err != nil {
		return ErrAllocationFailed
	}

	c.slots.release(c.alloc)
	c.slots = newSlots
	c.class = 0
	c.live = 0
	c.tombstones = 0
	c.reportCapacity()

	return nil
}
