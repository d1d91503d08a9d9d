package catalog

import "github.com/jpl-au/protect-mcp/internal/safety"

// systemOperations report on the console itself. Read-only in every mode.
func systemOperations() []*Operation {
	return []*Operation{
		{
			Name:        "protect_get_info",
			Title:       "Get System Info",
			Description: "Get UniFi Protect system information and version details",
			Family:      FamilySystem,
			Method:      "GET",
			Path:        "/meta/info",
			Class:       safety.ReadOnly,
		},
		{
			Name:        "protect_list_nvrs",
			Title:       "List NVRs",
			Description: "List all NVR (Network Video Recorder) devices",
			Family:      FamilySystem,
			Method:      "GET",
			Path:        "/nvrs",
			Class:       safety.ReadOnly,
		},
	}
}
