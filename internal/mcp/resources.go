// resources.go serves the embedded guides as MCP resources.
//
// Resources give a client read-only context without a tool call, so an LLM
// can load the safety rules before it decides which tools to use. URIs follow
// protect://guide/{topic}; an empty topic returns the main guide.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/protect-mcp/guide"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ErrInvalidURI indicates a malformed resource URI.
var ErrInvalidURI = errors.New("invalid URI")

const guidePrefix = "protect://guide/"

func registerResources(s *server.MCPServer) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			guidePrefix+"{topic}",
			"Guide",
			mcp.WithTemplateDescription("Usage and safety guide for the UniFi Protect tools, by topic"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		readGuide,
	)
}

// readGuide handles protect://guide/{topic} resource requests.
func readGuide(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	topic, err := parseGuideURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	content, err := guide.Get(topic)
	if err != nil {
		topics, _ := guide.List()
		return nil, fmt.Errorf("guide %q not found (available: %s): %w", topic, strings.Join(topics, ", "), err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the topic from protect://guide/{topic}.
func parseGuideURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, guidePrefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	topic := strings.TrimPrefix(uri, guidePrefix)
	if strings.Contains(topic, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return topic, nil
}
