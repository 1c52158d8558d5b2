package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/shape-metrics-mcp/internal/dataset"
	"github.com/ironsheep/shape-metrics-mcp/internal/descriptor"
	"github.com/ironsheep/shape-metrics-mcp/internal/geometry"
	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
	"github.com/ironsheep/shape-metrics-mcp/internal/report"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "shape_load", "shape_score").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads masks from cache as needed
//  4. Calls the appropriate descriptor/dataset/report function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Mask Information
	case "shape_load":
		return s.handleShapeLoad(args)
	case "shape_methods":
		return s.handleShapeMethods(args)

	// Scoring
	case "shape_score":
		return s.handleShapeScore(args)
	case "shape_score_all":
		return s.handleShapeScoreAll(args)

	// Inspection
	case "shape_geometry":
		return s.handleShapeGeometry(args)
	case "shape_preview":
		return s.handleShapePreview(args)

	// Dataset Operations
	case "dataset_kinds":
		return s.handleDatasetKinds(args)
	case "dataset_score":
		return s.handleDatasetScore(args)
	case "dataset_report":
		return s.handleDatasetReport(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Mask Information Handlers ===

type shapeLoadArgs struct {
	Path string `json:"path"`
}

type shapeLoadResult struct {
	*imaging.MaskInfo
	Path       string `json:"path"`
	Components int    `json:"components"`
}

func (s *Server) handleShapeLoad(args json.RawMessage) (interface{}, error) {
	var a shapeLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	info, err := imaging.LoadMaskInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	mask, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return &shapeLoadResult{
		MaskInfo:   info,
		Path:       a.Path,
		Components: len(s.backend.Contours(mask)),
	}, nil
}

func (s *Server) handleShapeMethods(json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"methods": descriptor.MethodInfos(),
	}, nil
}

// === Scoring Handlers ===

type shapeScoreArgs struct {
	Path   string `json:"path"`
	Method string `json:"method"`
}

func (s *Server) handleShapeScore(args json.RawMessage) (interface{}, error) {
	var a shapeScoreArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	method, err := descriptor.ParseMethod(a.Method)
	if err != nil {
		return nil, err
	}
	mask, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return descriptor.ComputeWith(s.backend, mask, method)
}

type shapeScoreAllResult struct {
	Path   string               `json:"path"`
	Scores []*descriptor.Result `json:"scores"`
}

func (s *Server) handleShapeScoreAll(args json.RawMessage) (interface{}, error) {
	var a shapeLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mask, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	scores, err := descriptor.ComputeAllWith(s.backend, mask)
	if err != nil {
		return nil, err
	}
	return &shapeScoreAllResult{Path: a.Path, Scores: scores}, nil
}

// === Inspection Handlers ===

func (s *Server) handleShapeGeometry(args json.RawMessage) (interface{}, error) {
	var a shapeLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mask, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return descriptor.AnalyzeWith(s.backend, mask)
}

type shapePreviewArgs struct {
	Path    string  `json:"path"`
	Scale   float64 `json:"scale"`
	ShowMBR bool    `json:"show_mbr"`
}

func (s *Server) handleShapePreview(args json.RawMessage) (interface{}, error) {
	var a shapePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	mask, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	contours := s.backend.Contours(mask)
	palette := imaging.OverlayPalette(len(contours))

	var overlays []imaging.Overlay
	for i, c := range contours {
		overlays = append(overlays, imaging.Overlay{
			Points: contourPoints(c),
			Closed: true,
			Color:  palette[i],
		})
	}
	if a.ShowMBR {
		for _, c := range contours {
			corners := s.backend.MinAreaRect(c).Corners()
			box := make([]image.Point, len(corners))
			for i, p := range corners {
				box[i] = image.Point{X: int(p.X), Y: int(p.Y)}
			}
			overlays = append(overlays, imaging.Overlay{
				Points: box,
				Closed: true,
				Color:  mbrOverlayRed,
			})
		}
	}

	return imaging.RenderPreview(mask, overlays, a.Scale)
}

// === Dataset Operation Handlers ===

type datasetKindsArgs struct {
	Dir string `json:"dir"`
}

func (s *Server) handleDatasetKinds(args json.RawMessage) (interface{}, error) {
	var a datasetKindsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	loader, err := s.datasetLoader(a.Dir)
	if err != nil {
		return nil, err
	}
	kinds, err := loader.Kinds()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"dir":   loader.Root(),
		"kinds": kinds,
	}, nil
}

type datasetScoreArgs struct {
	Dir     string   `json:"dir"`
	Kind    string   `json:"kind"`
	Methods []string `json:"methods"`
}

func (s *Server) handleDatasetScore(args json.RawMessage) (interface{}, error) {
	var a datasetScoreArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	samples, scores, err := s.scoreKind(a.Dir, a.Kind, a.Methods)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"kind":      a.Kind,
		"samples":   len(samples),
		"scores":    scores,
		"summaries": report.Summarize(scores),
	}, nil
}

type datasetReportArgs struct {
	Dir       string   `json:"dir"`
	Kind      string   `json:"kind"`
	Methods   []string `json:"methods"`
	OutputDir string   `json:"output_dir"`
}

func (s *Server) handleDatasetReport(args json.RawMessage) (interface{}, error) {
	var a datasetReportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	samples, scores, err := s.scoreKind(a.Dir, a.Kind, a.Methods)
	if err != nil {
		return nil, err
	}

	methods, err := parseMethods(a.Methods)
	if err != nil {
		return nil, err
	}
	outDir := a.OutputDir
	if outDir == "" {
		outDir = s.cfg.OutputDir
	}
	charts, err := report.WriteCharts(outDir, a.Kind, methods, scores)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"kind":      a.Kind,
		"samples":   len(samples),
		"charts":    charts,
		"summaries": report.Summarize(scores),
	}, nil
}

// === Helpers ===

// mbrOverlayRed marks minimum bounding rectangles in previews,
// distinct from the hue-spread contour palette.
var mbrOverlayRed = color.RGBA{R: 255, A: 255}

// datasetLoader builds a loader for an explicit directory, falling
// back to the configured data directory.
func (s *Server) datasetLoader(dir string) (*dataset.Loader, error) {
	if dir == "" {
		dir = s.cfg.DataDir
	}
	if dir == "" {
		return nil, fmt.Errorf("no dataset directory: pass dir or set SHAPE_MCP_DATA_DIR")
	}
	return dataset.NewLoader(dir, s.cfg.Threshold), nil
}

// scoreKind loads every sample of a kind and scores it with the
// requested methods (all methods when none given).
func (s *Server) scoreKind(dir, kind string, methodCodes []string) ([]*dataset.Sample, []report.Score, error) {
	if kind == "" {
		return nil, nil, fmt.Errorf("kind is required")
	}
	methods, err := parseMethods(methodCodes)
	if err != nil {
		return nil, nil, err
	}
	loader, err := s.datasetLoader(dir)
	if err != nil {
		return nil, nil, err
	}
	samples, err := loader.LoadKind(kind)
	if err != nil {
		return nil, nil, err
	}

	runner := report.Runner{
		Backend: s.backend,
		Workers: s.cfg.Workers,
		Methods: methods,
	}
	return samples, runner.Run(samples), nil
}

// parseMethods resolves method codes; an empty list means all methods.
func parseMethods(codes []string) ([]descriptor.Method, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	methods := make([]descriptor.Method, 0, len(codes))
	for _, c := range codes {
		m, err := descriptor.ParseMethod(c)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}

// contourPoints converts a contour to overlay points.
func contourPoints(c geometry.Contour) []image.Point {
	pts := make([]image.Point, len(c))
	for i, p := range c {
		pts[i] = image.Point{X: p.X, Y: p.Y}
	}
	return pts
}
