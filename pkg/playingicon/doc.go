// Package playingicon implements an animated "now playing" indicator: a row
// of vertical bars whose heights follow |sin(phase)|, like a tiny equalizer.
//
// The package owns the geometry and the animation loop only. Hosts plug in
// the rest through three small interfaces:
//
//   - Scheduler posts a callback after a delay on the widget's thread.
//   - Host receives redraw requests.
//   - Canvas fills rectangles when the host paints.
//
// A typical host creates an Icon, calls SetGeometry on every layout pass,
// Paint on every render pass, and Attach/Detach as the widget is shown and
// hidden. Looper and ManualScheduler are ready-made Schedulers.
package playingicon
