package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-board/board/pkg/manifest"
	"github.com/go-board/board/pkg/render"
)

func newRenderCmd() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Render a board manifest",
		Long: `Render reads a board manifest and draws it to the chosen surface.

The default format is "term" (styled text on stdout). With --format png
the board is rasterized and written to a file (default board.png).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], format, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "term", `output format: "term" or "png"`)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout for term, board.png for png)")
	return cmd
}

func runRender(path, format, out string) error {
	logger.Debug("loading manifest", "path", path)
	b, err := manifest.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded board", "blocks", b.Len())

	switch format {
	case "term":
		text := render.Terminal{Styles: render.DefaultStyles()}.Render(b)
		if out == "" {
			fmt.Println(text)
			return nil
		}
		return os.WriteFile(out, []byte(text+"\n"), 0o644)
	case "png":
		if out == "" {
			out = "board.png"
		}
		img := render.Image{}.Render(b)
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("failed to encode %s: %w", out, err)
		}
		logger.Info("wrote image", "path", out, "size", img.Bounds().Size())
		return nil
	default:
		return fmt.Errorf("unknown format %q (want term or png)", format)
	}
}
