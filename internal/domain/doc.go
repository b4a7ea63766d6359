// Package domain models the view records of the Wildfire Watch demo: cameras,
// simulated detections, alerts, incidents, public reports, and the analytics
// series shown on the dashboard.
//
// # Detections
//
// A detection is a synthetic fire or smoke event. Confidence is a fraction in
// [0, 1]; it is displayed as a percentage with one decimal place ("87.3%") in
// lists and rounded to a whole percent on the overlay label ("fire 87%").
//
// Bounding boxes are fractional relative to the frame:
//
//	x, y           top-left corner, 0..1 from the left/top edge
//	width, height  extent, 0..1 of the frame size
//
// A box must stay inside the frame (x+width <= 1, y+height <= 1).
//
// # Alert severity
//
// Alerts derived from detections are classified by type and confidence:
//
//	fire:  >= 0.85 high   | < 0.85 medium
//	smoke: >= 0.90 medium | < 0.90 low
//
// # Forms
//
// Incident and public report submissions declare their required fields. A
// submission is rejected with a [ValidationError] naming every empty required
// field. A field counts as filled when its value is non-empty; whitespace is
// not trimmed.
//
// # Storage
//
// Nothing in this package is persisted. Records live in memory for the lifetime
// of the process and are seeded from package mockdata at startup.
package domain
