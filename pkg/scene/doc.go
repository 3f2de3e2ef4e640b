// Package scene defines the scene produced by evaluating a planar script.
// A scene is an ordered list of named shapes plus the results of the
// geometric queries the script ran against them. Each evaluation produces
// a new scene; nothing mutates a scene once evaluation has finished.
package scene
