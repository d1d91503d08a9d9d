// cameras.go declares camera operations: inspection, snapshots, stream and
// talkback sessions, PTZ control, and the irreversible microphone disable.

package catalog

import "github.com/jpl-au/protect-mcp/internal/safety"

func cameraOperations() []*Operation {
	return []*Operation{
		{
			Name:        "protect_list_cameras",
			Title:       "List Cameras",
			Description: "List all cameras managed by UniFi Protect",
			Family:      FamilyCamera,
			Method:      "GET",
			Path:        "/cameras",
			Class:       safety.ReadOnly,
		},
		{
			Name:        "protect_get_camera",
			Title:       "Get Camera",
			Description: "Get details for a specific camera by ID",
			Family:      FamilyCamera,
			Method:      "GET",
			Path:        "/cameras/{id}",
			Class:       safety.ReadOnly,
			Params:      []Param{idParam("Camera")},
		},
		{
			Name:        "protect_get_snapshot",
			Title:       "Get Snapshot",
			Description: "Get a JPEG snapshot from a camera (returns image)",
			Family:      FamilyCamera,
			Method:      "GET",
			Path:        "/cameras/{id}/snapshot",
			Class:       safety.ReadOnly,
			Kind:        KindImage,
			Params:      []Param{idParam("Camera")},
		},
		{
			Name:        "protect_get_rtsp_streams",
			Title:       "Get RTSPS Streams",
			Description: "Get active RTSPS stream sessions for a camera",
			Family:      FamilyCamera,
			Method:      "GET",
			Path:        "/cameras/{id}/rtsps-stream",
			Class:       safety.ReadOnly,
			Params:      []Param{idParam("Camera")},
		},
		{
			Name:        "protect_update_camera",
			Title:       "Update Camera",
			Description: "Update camera settings (partial update via PATCH)",
			Family:      FamilyCamera,
			Method:      "PATCH",
			Path:        "/cameras/{id}",
			Class:       safety.Write,
			Body:        ParamSettings,
			Params: []Param{
				idParam("Camera"),
				settingsParam("Partial camera settings to update (JSON object)"),
				dryRunParam(),
			},
		},
		{
			Name:        "protect_create_rtsp_stream",
			Title:       "Create RTSPS Stream",
			Description: "Create an RTSPS stream session for a camera",
			Family:      FamilyCamera,
			Method:      "POST",
			Path:        "/cameras/{id}/rtsps-stream",
			Class:       safety.Write,
			Params:      []Param{idParam("Camera"), dryRunParam()},
		},
		{
			Name:        "protect_delete_rtsp_stream",
			Title:       "Delete RTSPS Stream",
			Description: "Stop and delete an active RTSPS stream session for a camera",
			Family:      FamilyCamera,
			Method:      "DELETE",
			Path:        "/cameras/{id}/rtsps-stream",
			Class:       safety.Destructive,
			Params:      []Param{idParam("Camera"), dryRunParam()},
		},
		{
			Name:        "protect_create_talkback",
			Title:       "Create Talkback Session",
			Description: "Create a talkback (two-way audio) session for a camera",
			Family:      FamilyCamera,
			Method:      "POST",
			Path:        "/cameras/{id}/talkback-session",
			Class:       safety.Write,
			Params:      []Param{idParam("Camera"), dryRunParam()},
		},
		{
			Name:        "protect_disable_mic",
			Title:       "Disable Microphone Permanently",
			Description: "IRREVERSIBLE: Permanently disable the microphone on a camera. Cannot be re-enabled.",
			Family:      FamilyCamera,
			Method:      "POST",
			Path:        "/cameras/{id}/disable-mic-permanently",
			Class:       safety.Destructive,
			Action:      "permanently disable the camera microphone",
			Params: []Param{
				idParam("Camera"),
				confirmParam("Must be true to confirm this irreversible action"),
			},
		},
		{
			Name:        "protect_start_ptz_patrol",
			Title:       "Start PTZ Patrol",
			Description: "Start PTZ patrol on a camera at a given slot",
			Family:      FamilyCamera,
			Method:      "POST",
			Path:        "/cameras/{id}/ptz/patrol/start/{slot}",
			Class:       safety.Write,
			Params: []Param{
				idParam("Camera"),
				slotParam("Patrol slot number"),
				dryRunParam(),
			},
		},
		{
			Name:        "protect_stop_ptz_patrol",
			Title:       "Stop PTZ Patrol",
			Description: "Stop PTZ patrol on a camera",
			Family:      FamilyCamera,
			Method:      "POST",
			Path:        "/cameras/{id}/ptz/patrol/stop",
			Class:       safety.Write,
			Params:      []Param{idParam("Camera"), dryRunParam()},
		},
		{
			Name:        "protect_goto_ptz_preset",
			Title:       "Go To PTZ Preset",
			Description: "Move camera PTZ to a preset position",
			Family:      FamilyCamera,
			Method:      "POST",
			Path:        "/cameras/{id}/ptz/goto/{slot}",
			Class:       safety.Write,
			Params: []Param{
				idParam("Camera"),
				slotParam("PTZ preset slot number"),
				dryRunParam(),
			},
		},
	}
}
