package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/checkerboard-mcp/internal/imaging"
	"github.com/ironsheep/checkerboard-mcp/internal/server"
)

func newRootCmd(debug bool) *cobra.Command {
	root := &cobra.Command{
		Use:   "checkerboard",
		Short: "Generate two-color checkerboard images",
		Long: `checkerboard renders a grid of square tiles in two alternating colors.

Colors may be given in HSV (hue in degrees, saturation and value 0.0-1.0) or
as hex. Run "checkerboard serve" to expose the same operations as MCP tools
over stdin/stdout.

Environment variables:
  CHECKERBOARD_LOG_LEVEL=debug    Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(debug),
		newInspectCmd(),
		newServeCmd(debug),
		newVersionCmd(),
	)
	return root
}

func newGenerateCmd(debug bool) *cobra.Command {
	var (
		opts   imaging.PatternOptions
		preset string
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a checkerboard image",
		Example: `  checkerboard generate -w 800 -H 600 -t 25 -o board.png
  checkerboard generate --hsv1 200,0.6,0.9 --hsv2 30,0.8,1
  checkerboard generate --preset square -o square.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Preset = imaging.Preset(preset)

			params, err := opts.Parameters()
			if err != nil {
				return err
			}
			if debug {
				log.Printf("Generating %dx%d, tile %d, colors %s / %s",
					params.Width, params.Height, params.TileSize, params.First.Hex(), params.Second.Hex())
			}

			grid, err := imaging.Generate(params)
			if err != nil {
				return err
			}

			if _, err := imaging.Save(grid, output); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Image '%s' created successfully.\n", output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Width, "width", "w", 0, "image width in pixels (default 600, or 1024 for the square preset)")
	flags.IntVarP(&opts.Height, "height", "H", 0, "image height in pixels (default 450; the square preset uses the width)")
	flags.IntVarP(&opts.TileSize, "tile-size", "t", 0, "tile size in pixels (default 10; the square preset uses 100)")
	flags.StringVarP(&output, "output", "o", imaging.DefaultOutput, "output file; the extension selects png, jpg, gif, tif or bmp")
	flags.StringVar(&preset, "preset", string(imaging.PresetStandard), "dimension preset: standard or square")
	flags.Float64SliceVar(&opts.HSV1, "hsv1", nil, "first color as hue,saturation,value (hue in degrees, sat and val 0.0-1.0)")
	flags.Float64SliceVar(&opts.HSV2, "hsv2", nil, "second color as hue,saturation,value")
	flags.StringVar(&opts.Hex1, "hex1", "", "first color as #RRGGBB or #RRGGBBAA, used when --hsv1 is absent")
	flags.StringVar(&opts.Hex2, "hex2", "", "second color as #RRGGBB or #RRGGBBAA, used when --hsv2 is absent")

	return cmd
}

func newInspectCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "inspect <image>",
		Short: "Print dimensions and dominant colors of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache := imaging.NewImageCache()

			info, err := imaging.LoadImageInfo(cache, args[0])
			if err != nil {
				return err
			}
			img, err := cache.Load(args[0])
			if err != nil {
				return err
			}
			dominant, err := imaging.DominantColors(img, count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %dx%d %s, %s, alpha: %t, %d bytes\n",
				args[0], info.Width, info.Height, info.Format, info.ColorDepth, info.HasAlpha, info.FileSizeBytes)
			for _, c := range dominant.Colors {
				fmt.Fprintf(out, "  %s %6.2f%%\n", c.Hex, c.Percentage)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "colors", "n", 5, "number of dominant colors to list")
	return cmd
}

func newServeCmd(debug bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run the MCP server on stdin/stdout.

This server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server.Version = Version
			srv := server.New(server.WithDebug(debug))
			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "checkerboard %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
