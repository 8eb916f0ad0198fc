// Package editor is the UI-independent edit controller behind an interactive
// graph window. A frontend translates its raw events into controller calls:
//
//   - Press / Drag / Release: select a node and drag it with the grab offset
//     preserved, or open the weight label of an edge for editing.
//   - Type / Backspace / Commit / Cancel: the weight edit buffer accepts
//     digits and a single dot. Commit keeps the old weight on invalid input.
//   - AddChildToSelected, NormalizeSelected, DeleteSelected.
//   - Reorganize: report overlapping nodes and crossing edges, then run one
//     separation pass. ResetLayout puts every node back on the circle.
//   - StartWalk, NextStep, Tick: drive an attached walker.
//
// The controller never draws. Recoverable user errors (nothing selected,
// invalid weight text, sink nodes, a stuck walker) are logged through the
// configured zerolog.Logger and returned; the caller decides whether to show
// them.
package editor
