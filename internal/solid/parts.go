package solid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unixpickle/model3d/model3d"

	"github.com/roach88/manifold/internal/design"
)

// Part is one printable component: its catalog name, how many copies
// the assembly needs, and the solid itself.
type Part struct {
	Name     string
	Quantity int
	Solid    model3d.Solid
}

// Build returns the standard part set for the given parameters. The
// transition ships both ways: four print-bed-sized quadrants for the
// assembly, and the one-piece full-height duct for printers large
// enough to take it.
func Build(p design.Params) ([]Part, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	parts := []Part{
		{Name: "manifold_base", Quantity: 1, Solid: Base(p)},
	}
	for q, name := range QuadrantNames {
		parts = append(parts, Part{
			Name:     "manifold_transition_" + name,
			Quantity: 1,
			Solid:    TransitionQuadrant(p, q),
		})
	}
	parts = append(parts, Part{Name: "manifold_transition_full", Quantity: 1, Solid: Transition(p)})
	parts = append(parts,
		Part{Name: "manifold_sensor_chamber", Quantity: 1, Solid: SensorChamber(p)},
		Part{Name: "manifold_fan_adapter", Quantity: 1, Solid: FanAdapter(p)},
		Part{Name: "intake_tube", Quantity: p.TubeCount(), Solid: IntakeTube(p)},
		Part{Name: "retaining_nut", Quantity: p.TubeCount(), Solid: RetainingNut(p)},
		Part{Name: "pcb_holder", Quantity: 1, Solid: PCBHolder(p)},
	)
	return parts, nil
}

// Select filters parts down to the requested names, preserving catalog
// order. Unknown names are an error so a typo cannot silently skip a
// part.
func Select(parts []Part, names []string) ([]Part, error) {
	if len(names) == 0 {
		return parts, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.TrimSpace(n)] = true
	}
	var out []Part
	for _, p := range parts {
		if want[p.Name] {
			out = append(out, p)
			delete(want, p.Name)
		}
	}
	if len(want) > 0 {
		unknown := make([]string, 0, len(want))
		for n := range want {
			unknown = append(unknown, n)
		}
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown part name(s): %s", strings.Join(unknown, ", "))
	}
	return out, nil
}
