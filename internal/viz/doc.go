// Package viz provides the live terminal view for the braille canvas.
//
// The package implements an animated TUI using the Bubble Tea framework:
//
//   - [Model]: bouncing filled shapes, a crossing line pair and an eraser
//     that punches holes with UnsetPixel, a rotating wireframe cube, or
//     a Lorenz attractor trail integrated with RK4
//   - [Showcase]: a static scene that exercises every drawing primitive
//   - Theme selection with 5 built-in color schemes
//
// Every frame is rendered with RenderTo into one reused buffer, with the
// FPS counter and current blend mode on the status line.
//
// # Key Bindings
//
//	Space - Pause/Resume animation
//	B     - Toggle overwrite/keep-first blending
//	S     - Cycle shapes, cube and attractor
//	T     - Cycle color themes
//	+/-   - Zoom the 3D scenes
//	R     - Reset the scene
//	?     - Show help overlay
package viz
