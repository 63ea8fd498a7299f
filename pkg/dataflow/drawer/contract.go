// Package drawer renders the dataflow graph of an executed run: variable
// vertices, step vertices and the edges between them.
package drawer

import "github.com/askiada/go-dataflow/pkg/dataflow/model"

// Drawer is an interface that defines the methods for drawing a run.
type Drawer interface {
	// AddVariable adds a variable vertex to the graph.
	AddVariable(name string) error
	// AddStep adds an executed step vertex to the graph.
	AddStep(step *model.StepInfo) error
	// AddFlow adds an edge between a variable and a step, in either
	// direction.
	AddFlow(from, to string) error
	// Draw creates a file with the dataflow graph.
	Draw() error
}
