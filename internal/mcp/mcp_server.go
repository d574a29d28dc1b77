// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the readiness MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, r *schema.Rubric, warnings []string) *server.MCPServer {
	s := server.NewMCPServer(
		"Launch Readiness Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		rubric:   r,
		warnings: warnings,
	}

	// --- 1. Tool: score_jurisdiction ---
	s.AddTool(mcp.NewTool("score_jurisdiction",
		mcp.WithDescription("Score one jurisdiction's launch readiness against the loaded rubric."),
		mcp.WithString("jurisdiction", mcp.Description("Name of the market being assessed."), mcp.Required()),
		mcp.WithObject("values", mcp.Description("Raw metric inputs keyed by category, then metric key. Missing metrics score a neutral 3.")),
		mcp.WithArray("set", mcp.Description("Category.metric=value overrides applied after values."), mcp.WithStringItems()),
	), h.handleScoreJurisdiction)

	// --- 2. Tool: rank_jurisdictions ---
	s.AddTool(mcp.NewTool("rank_jurisdictions",
		mcp.WithDescription("Score several jurisdictions and rank them by overall readiness."),
		mcp.WithObject("markets", mcp.Description("Map of jurisdiction name to its metric values (category, then metric key)."), mcp.Required()),
	), h.handleRankJurisdictions)

	// --- 3. Tool: describe_rubric ---
	s.AddTool(mcp.NewTool("describe_rubric",
		mcp.WithDescription("Return the loaded rubric: categories, weights, metric rules and load warnings."),
	), h.handleDescribeRubric)

	// --- 4. Tool: readiness_label ---
	s.AddTool(mcp.NewTool("readiness_label",
		mcp.WithDescription("Map an overall 1-5 readiness score to its verdict label."),
		mcp.WithNumber("score", mcp.Description("Overall readiness score."), mcp.Required()),
	), h.handleReadinessLabel)

	return s
}

// StartMCPServer starts the readiness MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, r *schema.Rubric, warnings []string) error {
	s := NewMCPServer(baseCfg, r, warnings)
	return server.ServeStdio(s)
}
