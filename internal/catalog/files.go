// files.go declares file operations and the alarm webhook trigger.
//
// The webhook lives here because the integration API groups it with the
// file endpoints; it is the only operation whose effect leaves the console.

package catalog

import "github.com/jpl-au/protect-mcp/internal/safety"

// DefaultUploadType is used when an upload omits contentType.
const DefaultUploadType = "application/octet-stream"

type webhookReply struct {
	Triggered bool   `json:"triggered"`
	WebhookID string `json:"webhookId"`
}

func fileOperations() []*Operation {
	return []*Operation{
		{
			Name:        "protect_list_files",
			Title:       "List Files",
			Description: "List files of a given type (e.g. 'video', 'timelapse')",
			Family:      FamilyFile,
			Method:      "GET",
			Path:        "/files/{fileType}",
			Class:       safety.ReadOnly,
			Params: []Param{
				{Name: ParamFileType, Type: String, Required: true, Description: "File type to list (e.g. 'video', 'timelapse')"},
			},
		},
		{
			Name:        "protect_trigger_alarm_webhook",
			Title:       "Trigger Alarm Webhook",
			Description: "Trigger an alarm manager webhook by ID. This fires an external alarm action.",
			Family:      FamilyFile,
			Method:      "POST",
			Path:        "/alarm-manager/webhook/{id}",
			Class:       safety.Destructive,
			Action:      "trigger the alarm webhook",
			Params: []Param{
				idParam("Webhook"),
				confirmParam("Must be true to confirm triggering the alarm webhook"),
			},
			Reply: func(args map[string]any) any {
				return webhookReply{Triggered: true, WebhookID: stringArg(args, ParamID)}
			},
		},
		{
			Name:        "protect_upload_file",
			Title:       "Upload File",
			Description: "Upload a base64-encoded file to UniFi Protect",
			Family:      FamilyFile,
			Method:      "POST",
			Path:        "/files/{fileType}",
			Class:       safety.Write,
			Kind:        KindUpload,
			Params: []Param{
				{Name: ParamFileType, Type: String, Required: true, Description: "File type category for upload"},
				{Name: ParamBase64Data, Type: String, Required: true, Description: "Base64-encoded file content"},
				{Name: ParamContentType, Type: String, Default: DefaultUploadType, Description: "MIME type of the file"},
				dryRunParam(),
			},
		},
	}
}
