// Package donutgl is a minimal, predictable software 2D scene renderer for
// the donut chart.
//
// It retains a set of shape drawables (closed polygon outline, fill color,
// offset/scale transform) plus one text label, and rasterizes them into a
// caller-provided Target each frame. Shapes are identified by slot handles;
// the chart core updates them in place through the donut.Surface contract.
//
// Rasterization is scanline even-odd polygon fill; text is drawn through
// tinyfont onto the same target. The package allocates only when shape
// outlines grow.
package donutgl
