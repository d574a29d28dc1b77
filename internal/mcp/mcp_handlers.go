package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/huangsam/readiness/core"
	"github.com/huangsam/readiness/core/agg"
	"github.com/huangsam/readiness/core/algo"
	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/internal/inputs"
	"github.com/huangsam/readiness/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	rubric   *schema.Rubric
	warnings []string
}

func (h *toolHandler) handleScoreJurisdiction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jurisdiction := strings.TrimSpace(request.GetString("jurisdiction", ""))
	if jurisdiction == "" {
		return mcp.NewToolResultError("jurisdiction is required"), nil
	}

	values, err := decodeValues(request.GetArguments()["values"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid values: %v", err)), nil
	}
	sets := append(append([]string{}, h.baseCfg.Overrides...), request.GetStringSlice("set", nil)...)
	values, err = inputs.ApplyOverrides(values, sets)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid set: %v", err)), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := core.Assess(h.rubric, jurisdiction, values)
	jsonData, _ := json.MarshalIndent(a, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankJurisdictions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	markets, ok := request.GetArguments()["markets"].(map[string]any)
	if !ok || len(markets) == 0 {
		return mcp.NewToolResultError("markets must be a non-empty object"), nil
	}

	names := make([]string, 0, len(markets))
	for name := range markets {
		names = append(names, name)
	}
	sort.Strings(names)

	assessments := make([]schema.Assessment, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values, err := decodeValues(markets[name])
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid values for %s: %v", name, err)), nil
		}
		values, err = inputs.ApplyOverrides(values, h.baseCfg.Overrides)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid set: %v", err)), nil
		}
		assessments = append(assessments, *core.Assess(h.rubric, name, values))
	}

	enriched := schema.EnrichAssessments(algo.RankAssessments(assessments))
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDescribeRubric(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	warnings := h.warnings
	if warnings == nil {
		warnings = []string{}
	}
	payload := struct {
		*schema.Rubric
		TotalWeight float64  `json:"total_weight"`
		Warnings    []string `json:"warnings"`
	}{h.rubric, h.rubric.TotalWeight(), warnings}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleReadinessLabel(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	score, err := request.RequireFloat("score")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if math.IsNaN(score) || score < 0 || score > schema.MaxScore {
		return mcp.NewToolResultError(fmt.Sprintf("score must be between 0 and %d", schema.MaxScore)), nil
	}

	label, severity := agg.ReadinessLabel(score)
	payload := schema.OverallResult{
		Score:    score,
		Percent:  agg.Percent(score),
		Label:    label,
		Severity: severity,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// decodeValues converts a {category: {metric: scalar}} argument into Values.
func decodeValues(raw any) (schema.Values, error) {
	values := schema.Values{}
	if raw == nil {
		return values, nil
	}
	categories, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected an object keyed by category, got %T", raw)
	}
	for category, rawMetrics := range categories {
		metrics, ok := rawMetrics.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("category %q: expected an object keyed by metric, got %T", category, rawMetrics)
		}
		for key, v := range metrics {
			switch v.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("%s.%s: metric values must be scalars", category, key)
			}
			values.Set(category, key, schema.ValueOf(v))
		}
	}
	return values, nil
}
