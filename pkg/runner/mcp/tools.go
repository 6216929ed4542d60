package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/storyjournal/pkg/record"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListCollectionsTool(srv, svc)
	registerListRecordsTool(srv, svc)
	registerGetRecordTool(srv, svc)
	registerWriteEntryTool(srv, svc)
	registerStreakTool(srv, svc)
}

func collectionNames() []string {
	names := make([]string, 0, len(record.Kinds()))
	for _, k := range record.Kinds() {
		names = append(names, string(k))
	}
	return names
}

func registerListCollectionsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_collections",
		mcp.WithDescription("List the journal's practices with record counts and streaks."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := svc.ListCollections(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"collections": summaries,
			"count":       len(summaries),
		})
	})
}

func registerListRecordsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_records",
		mcp.WithDescription("List records in a collection, newest first."),
		mcp.WithString("collection",
			mcp.Required(),
			mcp.Description("Collection to list."),
			mcp.Enum(collectionNames()...),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of records to return (default 20)."),
			mcp.Min(1),
			mcp.Max(500),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		collection, err := request.RequireString("collection")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		records, err := svc.ListRecords(ctx, collection, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"collection": collection,
			"records":    records,
			"count":      len(records),
		})
	})
}

func registerGetRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_record",
		mcp.WithDescription("Fetch a single record by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RecordByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerWriteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"write_entry",
		mcp.WithDescription("Write a new journal entry."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Text of the entry."),
		),
		mcp.WithString("title",
			mcp.Description("Optional title; defaults to today's date."),
		),
		mcp.WithString("prompt",
			mcp.Description("Optional prompt the entry answers."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Content string `json:"content"`
			Title   string `json:"title"`
			Prompt  string `json:"prompt"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.WriteEntry(ctx, args.Title, args.Content, args.Prompt)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerStreakTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"streak",
		mcp.WithDescription("Current and longest run of consecutive days with writing."),
		mcp.WithString("collection",
			mcp.Description("Limit to one collection; omit for the whole journal."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Streak(ctx, request.GetString("collection", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
