package parser

// StackTracker integrates a stacking buff over time.
// Every transition first credits the time since the previous transition
// at the old stack count, then switches to the new count.
type StackTracker struct {
	current int
	last    int64

	// StackTime is the sum of stacks × ms held.
	StackTime int64

	// Uptime is the ms with at least one stack.
	Uptime int64
}

// NewStackTracker creates a tracker with no stacks, starting at start.
func NewStackTracker(start int64) *StackTracker {
	return &StackTracker{last: start}
}

// Stacks returns the current stack count.
func (st *StackTracker) Stacks() int {
	return st.current
}

// Apply records the buff being applied with the given starting stacks.
func (st *StackTracker) Apply(timestamp int64, stacks int) {
	st.advance(timestamp)
	st.current = stacks
}

// Stack records the buff changing to n stacks.
func (st *StackTracker) Stack(timestamp int64, n int) {
	st.advance(timestamp)
	st.current = n
}

// Remove records the buff falling off.
func (st *StackTracker) Remove(timestamp int64) {
	st.advance(timestamp)
	st.current = 0
}

// End closes the window at timestamp without changing the stack count.
func (st *StackTracker) End(timestamp int64) {
	st.advance(timestamp)
}

// advance credits the elapsed time at the current stack count.
// Out-of-order timestamps are ignored rather than subtracting time.
func (st *StackTracker) advance(timestamp int64) {
	elapsed := timestamp - st.last
	if elapsed <= 0 {
		return
	}
	st.StackTime += int64(st.current) * elapsed
	if st.current > 0 {
		st.Uptime += elapsed
	}
	st.last = timestamp
}
