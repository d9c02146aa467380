// Package color derives reproducible RGB colours from arbitrary text and
// adjusts them for log readability. Everything in this package is a pure
// function of its input: the same namespace renders in the same colour in
// every process, on every platform.
//
//	bg := color.ImproveForLogReadability(color.HashText("billing"))
//	fmt.Println(color.Hex(bg))
//
// The rendering adapters (pkt.systems/nslog/ansi and pkt.systems/nslog/css)
// consume Style values produced here.
package color
