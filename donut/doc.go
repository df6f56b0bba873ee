// Package donut renders a segmented annulus ("donut") chart and animates
// transitions between datasets.
//
// The package is frame-driven and performs no scheduling of its own: the
// host delivers a monotonic tick counter to Chart.Step (60 ticks/s on the
// desktop host) and the chart advances whatever timelines are in flight.
// All drawing goes through the Surface interface; the package never touches
// pixels itself.
//
// Dataset identity is carried by DataPoint.ID. A slice whose id survives an
// update keeps its drawable and animates from its current angles to the new
// ones; a new id grows open from a zero-width segment; a dropped id stays on
// screen untouched until the transition commits, then its drawable is
// released. At most one transition is in flight: updates requested while one
// is running are dropped, not queued.
package donut
