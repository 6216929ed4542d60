package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerCollectionsResource(srv, svc)
	registerCollectionTemplate(srv, svc)
	registerRecordTemplate(srv, svc)
}

func registerCollectionsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"journal://collections",
		"Collections",
		mcp.WithResourceDescription("Every practice in the journal with counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListCollections(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"collections": summaries,
			"count":       len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerCollectionTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"journal://collections/{name}",
		"Collection Records",
		mcp.WithTemplateDescription("Records that belong to a collection, newest first."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request, "name")
		if name == "" {
			return nil, fmt.Errorf("collection name is required")
		}

		records, err := svc.ListRecords(ctx, name, 0)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"collection": name,
			"count":      len(records),
			"records":    records,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerRecordTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"journal://records/{id}",
		"Record",
		mcp.WithTemplateDescription("A single record from any collection."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request, "id")
		if id == "" {
			return nil, fmt.Errorf("record id is required")
		}

		dto, err := svc.RecordByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"record": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// templateArg reads a URI template variable, which arrives as a string or
// a one-element list depending on the template matcher.
func templateArg(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}
