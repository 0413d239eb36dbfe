package tui

// gestureKind identifies what a click on a region means.
type gestureKind int

const (
	gestureNone gestureKind = iota
	gestureToggle
	gesturePrev
	gestureNext
	gestureTitle
	gesturePickDay
	gesturePickMonth
	gesturePickYear
)

// gesture is a resolved click target. Value carries the day, 0-based
// month, or year for the pick gestures.
type gesture struct {
	kind  gestureKind
	value int
}

// region is a clickable rectangle in terminal cells.
type region struct {
	x, y, w, h int
	g          gesture
}

// HitMap maps terminal coordinates to gestures. It is rebuilt on every
// render, so regions always match what is on screen. Invalid cells are
// simply never registered; clicking them resolves to nothing, which is
// how out-of-range selection is prevented.
type HitMap struct {
	regions []region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Reset drops all regions, keeping the backing array.
func (h *HitMap) Reset() {
	h.regions = h.regions[:0]
}

// Add registers a clickable rectangle.
func (h *HitMap) Add(x, y, w, hgt int, g gesture) {
	h.regions = append(h.regions, region{x: x, y: y, w: w, h: hgt, g: g})
}

// At resolves a click position. Later regions win, so more specific
// targets should be added after broader ones.
func (h *HitMap) At(x, y int) (gesture, bool) {
	for i := len(h.regions) - 1; i >= 0; i-- {
		r := h.regions[i]
		if x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h {
			return r.g, true
		}
	}
	return gesture{}, false
}

// Len returns the number of registered regions.
func (h *HitMap) Len() int {
	return len(h.regions)
}
