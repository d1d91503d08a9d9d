// devices.go declares the list/get/update triplet shared by lights, sensors,
// chimes and viewers. One template is instantiated per device type; this
// family has no destructive operations.

package catalog

import (
	"strings"

	"github.com/jpl-au/protect-mcp/internal/safety"
)

// DeviceType is a Protect accessory with the standard CRUD endpoints.
type DeviceType string

const (
	DeviceLight  DeviceType = "light"
	DeviceSensor DeviceType = "sensor"
	DeviceChime  DeviceType = "chime"
	DeviceViewer DeviceType = "viewer"
)

// DeviceTypes lists device types in catalog order.
var DeviceTypes = []DeviceType{DeviceLight, DeviceSensor, DeviceChime, DeviceViewer}

// Plural is the collection name used in tool names and paths.
func (d DeviceType) Plural() string { return string(d) + "s" }

// Label is the capitalised type name used in descriptions.
func (d DeviceType) Label() string {
	s := string(d)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// settingsHints lists the writable fields the API is known to accept.
var settingsHints = map[DeviceType]string{
	DeviceLight:  "Known fields: name (string), isLightForceEnabled (boolean), lightModeSettings (object with mode, enableAt), lightDeviceSettings (object with isIndicatorEnabled, pirDuration, pirSensitivity, ledLevel)",
	DeviceSensor: "Known fields: name (string), mountType (string), motionSettings (object), humiditySettings (object), temperatureSettings (object), lightSettings (object), alarmSettings (object)",
	DeviceChime:  "Known fields: name (string), volume (number), ringSettings (array of ring tone configurations)",
	DeviceViewer: "Known fields: name (string), liveview (string, liveview ID to display)",
}

func deviceOperations(d DeviceType) []*Operation {
	plural := d.Plural()
	label := d.Label()
	return []*Operation{
		{
			Name:        "protect_list_" + plural,
			Title:       "List " + label + "s",
			Description: "List all " + plural + " managed by UniFi Protect",
			Family:      FamilyDevice,
			Method:      "GET",
			Path:        "/" + plural,
			Class:       safety.ReadOnly,
		},
		{
			Name:        "protect_get_" + string(d),
			Title:       "Get " + label,
			Description: "Get details for a specific " + string(d) + " by ID",
			Family:      FamilyDevice,
			Method:      "GET",
			Path:        "/" + plural + "/{id}",
			Class:       safety.ReadOnly,
			Params:      []Param{idParam(label)},
		},
		{
			Name:        "protect_update_" + string(d),
			Title:       "Update " + label,
			Description: "Update " + string(d) + " settings (partial update via PATCH)",
			Family:      FamilyDevice,
			Method:      "PATCH",
			Path:        "/" + plural + "/{id}",
			Class:       safety.Write,
			Body:        ParamSettings,
			Params: []Param{
				idParam(label),
				settingsParam("Partial " + string(d) + " settings to update. " + settingsHints[d]),
				dryRunParam(),
			},
		},
	}
}
