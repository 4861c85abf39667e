// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the site content tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/eihojp/corpsite/internal/jsonlist"
	"github.com/eihojp/corpsite/internal/markup"
	"github.com/eihojp/corpsite/internal/models"
	"github.com/eihojp/corpsite/internal/sitesvc"
	"github.com/eihojp/corpsite/internal/store"
)

// Server wraps the MCP server with the content tools.
type Server struct {
	mcp *server.MCPServer
	svc *sitesvc.Service
	st  store.RecordStore
}

// New creates a new MCP server with all tools registered.
func New(svc *sitesvc.Service, st store.RecordStore) *Server {
	s := &Server{svc: svc, st: st}

	s.mcp = server.NewMCPServer(
		"Corpsite",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_home",
		mcp.WithDescription("Read the public landing-page content as JSON."),
	), s.getHome)

	s.mcp.AddTool(mcp.NewTool("list_news",
		mcp.WithDescription("List news entries including drafts. Returns id, title and status per entry."),
		mcp.WithString("query", mcp.Description("Optional keyword filter on title and body")),
		mcp.WithString("status", mcp.Description("Optional status filter: published or draft (empty for all)")),
	), s.listNews)

	s.mcp.AddTool(mcp.NewTool("read_news",
		mcp.WithDescription("Read one news entry with its raw body and attachments."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("News entry id")),
	), s.readNews)

	s.mcp.AddTool(mcp.NewTool("create_news",
		mcp.WithDescription("Create a news entry as a draft. The body may use the site markup "+
			"vocabulary; read the contract first via the get_markup_contract tool or the "+
			"corpsite://markup-format resource."),
		mcp.WithString("title", mcp.Required(), mcp.Description("News title")),
		mcp.WithString("body", mcp.Required(), mcp.Description("Body text, optionally with markup tags")),
	), s.createNews)

	s.mcp.AddTool(mcp.NewTool("publish_news",
		mcp.WithDescription("Mark a news entry as published so it appears on the public site."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("News entry id")),
	), s.publishNews)

	s.mcp.AddTool(mcp.NewTool("get_markup_contract",
		mcp.WithDescription("Returns the body markup contract. Call this before writing news bodies."),
	), s.getMarkupContract)

	s.mcp.AddResource(
		mcp.NewResource("corpsite://markup-format", "Body Markup Contract",
			mcp.WithResourceDescription("Bracket-tag vocabulary accepted in news and service bodies."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readMarkupResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) getHome(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, err := s.svc.Home()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(view, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

type newsRow struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
	CreatedAt string `json:"created_at"`
}

func (s *Server) listNews(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, _, err := s.st.ListNews(store.NewsQuery{
		Keyword:  req.GetString("query", ""),
		Status:   req.GetString("status", store.StatusAll),
		PageSize: 50,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows := make([]newsRow, 0, len(items))
	for _, n := range items {
		rows = append(rows, newsRow{
			ID:        n.ID,
			Title:     n.Title,
			Published: n.IsPublished,
			CreatedAt: n.CreatedAt.Format("2006-01-02"),
		})
	}
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNews(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, err := s.st.GetNews(int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: news %d", id)), nil
	}
	images := jsonlist.DecodeURLList(n.ImagePathsJSON)
	blocks, leftover := markup.Parse(n.Body, images)
	out, _ := json.MarshalIndent(map[string]any{
		"id":              n.ID,
		"title":           n.Title,
		"body":            n.Body,
		"blocks":          blocks,
		"leftover_images": leftover,
		"files":           jsonlist.DecodeFileRefs(n.FilePathsJSON),
		"published":       n.IsPublished,
	}, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createNews(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := req.RequireString("body")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n, err := s.svc.CreateNews(sitesvc.NewsInput{Title: title, Body: body})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created draft: news %d", n.ID)), nil
}

func (s *Server) publishNews(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	published := true
	if _, err := s.st.UpdateNews(int64(id), models.NewsPatch{IsPublished: &published}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: news %d", id)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("published: news %d", id)), nil
}

func (s *Server) getMarkupContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(MarkupContract), nil
}

func (s *Server) readMarkupResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "corpsite://markup-format",
			MIMEType: "text/markdown",
			Text:     MarkupContract,
		},
	}, nil
}
