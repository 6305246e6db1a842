package main

import "github.com/hajimehoshi/ebiten/v2"

// handleTouch tracks a single touch as the pointer. The first finger down
// owns the pointer until it lifts; further fingers are ignored.
func (s *Showcase) handleTouch() (x, y float64, ok bool) {
	// Use AppendTouchIDs instead of TouchIDs
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)

	if s.touchActive && !containsTouchID(touches, s.touchID) {
		s.touchActive = false
	}
	if !s.touchActive {
		if len(touches) == 0 {
			return 0, 0, false
		}
		s.touchID = touches[0]
		s.touchActive = true
	}

	tx, ty := ebiten.TouchPosition(s.touchID)
	return float64(tx), float64(ty), true
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
