package drawer

import (
	"io"
	"os"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-dataflow/pkg/dataflow/model"
)

// DOTDrawer is a drawer that creates a Graphviz DOT file with the dataflow
// graph. Variables are ellipses, steps are boxes colored by strategy.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
	}
}

// AddVariable adds a variable vertex. Adding the same variable twice is not
// an error; steps share variables.
func (d *DOTDrawer) AddVariable(name string) error {
	err := d.graph.AddVertex(name, graph.VertexAttribute("shape", "ellipse"))
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrapf(err, "unable to add variable %s", name)
	}

	return nil
}

// AddStep adds an executed step vertex.
func (d *DOTDrawer) AddStep(step *model.StepInfo) error {
	colour, err := strategyColour(step.Strategy)
	if err != nil {
		return err
	}

	err = d.graph.AddVertex(step.Label(),
		graph.VertexAttribute("shape", "box"),
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("fillcolor", colour),
	)
	if err != nil {
		return errors.Wrapf(err, "unable to add step %s", step.Label())
	}

	return nil
}

// AddFlow adds an edge between a variable and a step.
func (d *DOTDrawer) AddFlow(from, to string) error {
	err := d.graph.AddEdge(from, to)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", from, to)
	}

	return nil
}

// Draw creates a DOT file with the dataflow graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to render dot file %s", d.dotFileName)
	}

	return nil
}

const maxRGB = 240

func strategyColour(strategy model.Strategy) (string, error) {
	var red, blue uint8
	if strategy == model.AllStrategy {
		red = maxRGB
	} else {
		blue = maxRGB
	}

	colour, err := colors.RGB(red, 200, blue) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](gra graph.Graph[K, T], wrt io.Writer) error {
	desc := description{
		GraphType:    "graph",
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
		})

		for adjacency, edge := range adjacencies {
			desc.Statements = append(desc.Statements, statement{
				Source:     vertex,
				Target:     adjacency,
				EdgeWeight: edge.Properties.Weight,
			})
		}
	}

	return renderDOT(wrt, desc)
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
