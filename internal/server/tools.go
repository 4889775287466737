package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// patternProperties returns the schema properties shared by the pattern tools.
func patternProperties() map[string]interface{} {
	hsv := func(slot string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "number"},
			"description": slot + " tile color as [hue degrees, saturation 0-1, value 0-1]. Fewer than 3 values means the default color.",
		}
	}
	hex := func(slot string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "string",
			"description": slot + " tile color as #RRGGBB or #RRGGBBAA. Ignored when the matching HSV color is given.",
		}
	}

	return map[string]interface{}{
		"preset": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"standard", "square"},
			"description": "standard: 600x450 with 10px tiles. square: height equals width (default 1024) with fixed 100px tiles.",
			"default":     "standard",
		},
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Image width in pixels. Omit for the preset default",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Image height in pixels. Omit for the preset default; ignored by the square preset",
		},
		"tile_size": map[string]interface{}{
			"type":        "integer",
			"description": "Tile edge length in pixels. Omit for the preset default; ignored by the square preset",
		},
		"hsv1": hsv("First (origin)"),
		"hsv2": hsv("Second"),
		"hex1": hex("First (origin)"),
		"hex2": hex("Second"),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	generateProps := patternProperties()
	generateProps["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute output path. The extension selects the format: .png, .jpg, .gif, .tif or .bmp",
	}

	previewProps := patternProperties()
	previewProps["scale"] = map[string]interface{}{
		"type":        "integer",
		"description": "Integer magnification using nearest-neighbor sampling. Default 1",
		"default":     1,
	}
	previewProps["show_tiles"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Draw tile boundary lines over the preview",
		"default":     false,
	}
	previewProps["overlay_color"] = map[string]interface{}{
		"type":        "string",
		"description": "Boundary line color as #RRGGBB or #RRGGBBAA. Default semi-transparent white",
	}

	return []Tool{
		// Pattern Operations
		{
			Name:        "pattern_generate",
			Description: "Generate a two-color checkerboard image and write it to a file.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": generateProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "pattern_preview",
			Description: "Generate a checkerboard and return it as a base64-encoded PNG without writing a file.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": previewProps,
			},
		},

		// Color Operations
		{
			Name:        "color_hsv_to_rgb",
			Description: "Convert an HSV color to RGB exactly as the pattern tools do. Hue wraps modulo 360, saturation and value are clamped to 0-1.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": map[string]interface{}{
						"type":        "number",
						"description": "Hue in degrees",
					},
					"s": map[string]interface{}{
						"type":        "number",
						"description": "Saturation (0.0-1.0)",
					},
					"v": map[string]interface{}{
						"type":        "number",
						"description": "Value/brightness (0.0-1.0)",
					},
				},
				"required": []string{"h", "s", "v"},
			},
		},

		// Inspection Operations
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has transparency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "List the most frequent exact colors in an image with their share of pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to return. Default 5",
						"default":     5,
					},
				},
				"required": []string{"path"},
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
