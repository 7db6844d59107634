// Package scene describes layout trees and the operations run on them as
// data, in TOML or HCL.
//
// A scene names a root container, the boxes added to it (with their own
// nested layouts) and a list of steps such as a flexible resize or a revert.
// [Scene.Build] replays all of it against package layout and returns the
// resulting tree.
//
// # File Formats
//
// TOML:
//
//	name = "flex_overflow"
//	width = 200.0
//	height = 100.0
//
//	[layout]
//	variant = "flexible"
//
//	[[layout.box]]
//	width = 50.0
//	height = 100.0
//	repeat = 2
//
//	[[step]]
//	op = "resize"
//	axis = "x"
//
// HCL, which additionally allows arithmetic and the functions min, max,
// floor and ceil in attribute values:
//
//	name   = "nested"
//	width  = 300
//	height = 200
//
//	layout {
//	  variant = "block"
//	  box {
//	    width  = 300 / 2
//	    height = max(80, 100)
//	  }
//	}
//
// # Built-in Scenes
//
// [Builtins] lists the scenes shipped with the binary; [Builtin] loads one
// by name.
package scene
