package editor_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/editor"
	"github.com/katalvlaran/lvwalk/geometry"
)

// ExampleController replays a short editing session: select, grow a
// child, then retype a weight.
func ExampleController() {
	g := core.NewGraph()
	g.AddNode(0, core.Point{X: 100, Y: 100})
	eng, _ := geometry.NewEngine(g)
	c, _ := editor.New(eng)

	c.Press(core.Point{X: 100, Y: 100})
	child, _ := c.AddChildToSelected()
	fmt.Println("child:", child)

	// The 0→1 label sits 20 px off the edge midpoint (125,125).
	at, _ := eng.LabelPosition(0, child, editor.DefaultLabelOffset)
	c.Press(at)
	c.Backspace()
	c.Backspace()
	c.Backspace()
	c.Backspace()
	c.Type('4')
	w, err := c.Commit()
	fmt.Println(w, err)

	fmt.Println(g.OutEdges(0))

	// Output:
	// child: 1
	// 4 <nil>
	// [{0 1 4}]
}
