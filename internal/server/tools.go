package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Mask Information
		{
			Name:        "shape_load",
			Description: "Load a binary shape mask and return its dimensions, foreground area, coverage and component count. Caches the mask for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the mask image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "shape_methods",
			Description: "List the available rectangularity methods with their short codes, full names and descriptions.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Scoring
		{
			Name:        "shape_score",
			Description: "Score the rectangularity of a shape mask with one method. The score is in [0, 1], where 1 means perfectly rectangular.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the mask image file",
					},
					"method": map[string]interface{}{
						"type":        "string",
						"description": "Method code (r_b, r_d, r_r, r_a, r_m) or full method name",
					},
				},
				"required": []string{"path", "method"},
			},
		},
		{
			Name:        "shape_score_all",
			Description: "Score the rectangularity of a shape mask with every method at once.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the mask image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Inspection
		{
			Name:        "shape_geometry",
			Description: "Inspect the geometry behind the scores: contours, bounding boxes, minimum-area rectangles, centroid and moment rectangle sides.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the mask image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "shape_preview",
			Description: "Render the mask with its contours drawn in distinct colors and return it as base64-encoded PNG. Optionally overlays each component's minimum bounding rectangle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the mask image file",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
					"show_mbr": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw each component's minimum bounding rectangle in red",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Dataset Operations
		{
			Name:        "dataset_kinds",
			Description: "List the shape kinds present in a dataset directory of masks named <kind>-<index>.<ext>.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dir": map[string]interface{}{
						"type":        "string",
						"description": "Dataset directory. Defaults to SHAPE_MCP_DATA_DIR",
					},
				},
			},
		},
		{
			Name:        "dataset_score",
			Description: "Score every sample of a kind and return per-sample scores plus mean/stddev/min/max summaries per method.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dir": map[string]interface{}{
						"type":        "string",
						"description": "Dataset directory. Defaults to SHAPE_MCP_DATA_DIR",
					},
					"kind": map[string]interface{}{
						"type":        "string",
						"description": "Sample kind to score (e.g., \"bottle\")",
					},
					"methods": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Method codes to apply. Default: all methods",
					},
				},
				"required": []string{"kind"},
			},
		},
		{
			Name:        "dataset_report",
			Description: "Score every sample of a kind and render scatter charts: one per method plus a combined chart with a legend. Returns the chart paths and summaries.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dir": map[string]interface{}{
						"type":        "string",
						"description": "Dataset directory. Defaults to SHAPE_MCP_DATA_DIR",
					},
					"kind": map[string]interface{}{
						"type":        "string",
						"description": "Sample kind to chart (e.g., \"bottle\")",
					},
					"methods": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Method codes to chart. Default: all methods",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for chart files. Defaults to SHAPE_MCP_OUTPUT_DIR",
					},
				},
				"required": []string{"kind"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
