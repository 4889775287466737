package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/checkerboard-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "pattern_generate").
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
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Pattern Operations
	case "pattern_generate":
		return s.handlePatternGenerate(args)
	case "pattern_preview":
		return s.handlePatternPreview(args)

	// Color Operations
	case "color_hsv_to_rgb":
		return s.handleColorHSVToRGB(args)

	// Inspection Operations
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating missing arguments as {}.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Pattern Handlers ===

// generatePattern maps tool options to parameters and renders the grid.
func generatePattern(opts imaging.PatternOptions) (imaging.PatternParameters, *imaging.PixelGrid, error) {
	params, err := opts.Parameters()
	if err != nil {
		return imaging.PatternParameters{}, nil, err
	}

	grid, err := imaging.Generate(params)
	if err != nil {
		return imaging.PatternParameters{}, nil, err
	}
	return params, grid, nil
}

type patternGenerateArgs struct {
	imaging.PatternOptions
	Path string `json:"path"`
}

// PatternGenerateResult describes a pattern written by pattern_generate.
type PatternGenerateResult struct {
	imaging.SaveResult
	TileSize    int                 `json:"tile_size"`
	FirstColor  imaging.ColorResult `json:"first_color"`
	SecondColor imaging.ColorResult `json:"second_color"`
}

func (s *Server) handlePatternGenerate(args json.RawMessage) (interface{}, error) {
	var a patternGenerateArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	params, grid, err := generatePattern(a.PatternOptions)
	if err != nil {
		return nil, err
	}

	saved, err := imaging.Save(grid, a.Path)
	if err != nil {
		return nil, err
	}
	// A previous version of the file may be cached by image_load.
	s.cache.Evict(a.Path)

	return &PatternGenerateResult{
		SaveResult:  *saved,
		TileSize:    params.TileSize,
		FirstColor:  imaging.NewColorResult(params.First),
		SecondColor: imaging.NewColorResult(params.Second),
	}, nil
}

type patternPreviewArgs struct {
	imaging.PatternOptions
	Scale        int    `json:"scale"`
	ShowTiles    bool   `json:"show_tiles"`
	OverlayColor string `json:"overlay_color"`
}

func (s *Server) handlePatternPreview(args json.RawMessage) (interface{}, error) {
	var a patternPreviewArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	overlay := imaging.DefaultOverlayColor
	if a.OverlayColor != "" {
		c, err := imaging.ParseHexColor(a.OverlayColor)
		if err != nil {
			return nil, fmt.Errorf("overlay_color: %w", err)
		}
		overlay = c
	}

	params, err := a.Parameters()
	if err != nil {
		return nil, err
	}
	if err := imaging.CheckPreviewSize(params.Width, params.Height, a.Scale); err != nil {
		return nil, err
	}
	grid, err := imaging.Generate(params)
	if err != nil {
		return nil, err
	}

	return imaging.EncodePreview(grid, imaging.PreviewOptions{
		Scale:        a.Scale,
		ShowTiles:    a.ShowTiles,
		OverlayColor: overlay,
		TileSize:     params.TileSize,
	})
}

// === Color Handlers ===

type colorHSVToRGBArgs struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

func (s *Server) handleColorHSVToRGB(args json.RawMessage) (interface{}, error) {
	var a colorHSVToRGBArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c := imaging.HSVColor{H: a.H, S: a.S, V: a.V}.RGB()
	result := imaging.NewColorResult(c.Opaque())
	return &result, nil
}

// === Inspection Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageDominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count)
}
