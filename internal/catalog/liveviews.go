package catalog

import "github.com/jpl-au/protect-mcp/internal/safety"

// liveViewOperations manage the camera layouts shown on viewers and in the app.
func liveViewOperations() []*Operation {
	return []*Operation{
		{
			Name:        "protect_list_liveviews",
			Title:       "List Live Views",
			Description: "List all live views configured in UniFi Protect",
			Family:      FamilyLiveView,
			Method:      "GET",
			Path:        "/liveviews",
			Class:       safety.ReadOnly,
		},
		{
			Name:        "protect_get_liveview",
			Title:       "Get Live View",
			Description: "Get details for a specific live view by ID",
			Family:      FamilyLiveView,
			Method:      "GET",
			Path:        "/liveviews/{id}",
			Class:       safety.ReadOnly,
			Params:      []Param{idParam("Liveview")},
		},
		{
			Name:        "protect_create_liveview",
			Title:       "Create Live View",
			Description: "Create a new live view",
			Family:      FamilyLiveView,
			Method:      "POST",
			Path:        "/liveviews",
			Class:       safety.Write,
			Body:        ParamSettings,
			Params: []Param{
				settingsParam("Liveview configuration (JSON object with name, slots, etc.)"),
				dryRunParam(),
			},
		},
		{
			Name:        "protect_update_liveview",
			Title:       "Update Live View",
			Description: "Update an existing live view (partial update via PATCH)",
			Family:      FamilyLiveView,
			Method:      "PATCH",
			Path:        "/liveviews/{id}",
			Class:       safety.Write,
			Body:        ParamSettings,
			Params: []Param{
				idParam("Liveview"),
				settingsParam("Partial liveview settings to update (JSON object)"),
				dryRunParam(),
			},
		},
	}
}
