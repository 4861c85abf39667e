package mcpserver

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/eihojp/corpsite/internal/sitesvc"
	"github.com/eihojp/corpsite/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	st := testutil.NewStore(t)
	svc := sitesvc.New(st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(svc, st)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error
	switch name {
	case "get_home":
		result, err = srv.getHome(ctx, req)
	case "list_news":
		result, err = srv.listNews(ctx, req)
	case "read_news":
		result, err = srv.readNews(ctx, req)
	case "create_news":
		result, err = srv.createNews(ctx, req)
	case "publish_news":
		result, err = srv.publishNews(ctx, req)
	case "get_markup_contract":
		result, err = srv.getMarkupContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}
	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestGetHome(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "get_home", nil)
	if r.IsError {
		t.Fatalf("get_home failed: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), "company_name") {
		t.Error("expected company_name in home payload")
	}
}

func TestCreateListPublish(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "create_news", map[string]interface{}{
		"title": "MCP経由のお知らせ",
		"body":  "[h2]見出し[/h2]本文",
	})
	text := resultText(r)
	if r.IsError || !strings.HasPrefix(text, "created draft: news ") {
		t.Fatalf("create result = %q", text)
	}

	r = callTool(t, srv, "list_news", map[string]interface{}{"status": "draft"})
	if !strings.Contains(resultText(r), "MCP経由のお知らせ") {
		t.Fatalf("draft missing from list: %s", resultText(r))
	}

	r = callTool(t, srv, "publish_news", map[string]interface{}{"id": 1})
	if r.IsError {
		t.Fatalf("publish failed: %s", resultText(r))
	}
	r = callTool(t, srv, "list_news", map[string]interface{}{"status": "published"})
	if !strings.Contains(resultText(r), "MCP経由のお知らせ") {
		t.Fatalf("published entry missing from list: %s", resultText(r))
	}
}

func TestReadNewsMissing(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "read_news", map[string]interface{}{"id": 9999})
	if !r.IsError {
		t.Error("expected error for missing news")
	}
}

func TestCreateNewsRequiresTitle(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "create_news", map[string]interface{}{"body": "x"})
	if !r.IsError {
		t.Error("expected error without title")
	}
}

func TestMarkupContract(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "get_markup_contract", nil)
	if !strings.Contains(resultText(r), "{{img:N}}") {
		t.Error("contract should document the image tag")
	}
}
