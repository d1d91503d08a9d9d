// catalog.go assembles the full operation table and the parameter helpers
// the family files share.

package catalog

import "github.com/jpl-au/protect-mcp/internal/safety"

// Default returns the full catalog in family order: system, camera, the four
// device types, live views, files. The result is built fresh on each call
// and must not be mutated after registration.
func Default() []*Operation {
	var ops []*Operation
	ops = append(ops, systemOperations()...)
	ops = append(ops, cameraOperations()...)
	for _, dt := range DeviceTypes {
		ops = append(ops, deviceOperations(dt)...)
	}
	ops = append(ops, liveViewOperations()...)
	ops = append(ops, fileOperations()...)
	return ops
}

// Find returns the operation called name.
func Find(ops []*Operation, name string) (*Operation, bool) {
	for _, op := range ops {
		if op.Name == name {
			return op, true
		}
	}
	return nil, false
}

// Filter returns the operations matching class and family. A nil pointer
// matches everything.
func Filter(ops []*Operation, class *safety.Class, family *Family) []*Operation {
	var out []*Operation
	for _, op := range ops {
		if class != nil && op.Class != *class {
			continue
		}
		if family != nil && op.Family != *family {
			continue
		}
		out = append(out, op)
	}
	return out
}

const dryRunDescription = "If true, return what would happen without making changes"

func idParam(label string) Param {
	return Param{Name: ParamID, Type: String, Required: true, Description: label + " ID"}
}

func dryRunParam() Param {
	return Param{Name: ParamDryRun, Type: Boolean, Description: dryRunDescription}
}

func confirmParam(description string) Param {
	return Param{Name: ParamConfirm, Type: Boolean, Required: true, Literal: true, Description: description}
}

func settingsParam(description string) Param {
	return Param{Name: ParamSettings, Type: Object, Required: true, Description: description}
}

func slotParam(description string) Param {
	return Param{Name: ParamSlot, Type: Integer, Required: true, Description: description}
}
