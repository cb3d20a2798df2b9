package cmd

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/jpfielding/dcmpix/pkg/dcm"
	"github.com/jpfielding/dcmpix/pkg/raster"
)

// NewDecodeCmd converts DICOM frames to png, tiff, bmp or jpeg
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [uri]",
		Short: "DICOM decode to png, tiff, bmp or jpeg",
		Long:  "decodes every frame, or the selected frame, and writes it in the format named by the output extension",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			in, err := openInput(ctx, inputURI(cmd, args), verbose)
			if err != nil {
				return err
			}
			defer in.Close()

			opts, err := decodeOptions(ctx, cmd, in.Name)
			if err != nil {
				return err
			}
			img, err := dcm.Decode(in.Reader, opts)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			frame, _ := cmd.Flags().GetInt("frame")
			size, _ := cmd.Flags().GetString("resize")
			if out == "" {
				out = strings.TrimSuffix(filepath.Base(in.Name), filepath.Ext(in.Name)) + ".png"
			}
			frames := img.Frames
			if frame >= 0 {
				if frame >= len(frames) {
					return fmt.Errorf("frame index %d out of bounds (0-%d)", frame, len(frames)-1)
				}
				frames = frames[frame : frame+1]
			}
			for i, f := range frames {
				path := out
				if len(frames) > 1 {
					ext := filepath.Ext(out)
					path = fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(out, ext), i, ext)
				}
				if err := writeFrame(path, f, size); err != nil {
					return err
				}
				slog.InfoContext(ctx, "wrote frame", "path", path, "columns", f.Columns, "rows", f.Rows, "depth", f.Depth)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	pf := cmd.PersistentFlags()
	pf.StringP("out", "o", "", "output path; the extension picks png, tif, bmp or jpg")
	pf.Int("frame", -1, "decode only this frame")
	pf.String("resize", "", "resize to WIDTHxHEIGHT, 0 keeps the aspect ratio")
	return cmd
}

// writeFrame encodes one frame to path
func writeFrame(path string, f *raster.Image, size string) error {
	var img image.Image = f
	if f.IsGray() {
		img = f.Gray16()
	}
	if size != "" {
		var w, h int
		if _, err := fmt.Sscanf(size, "%dx%d", &w, &h); err != nil {
			return fmt.Errorf("invalid resize %q: %w", size, err)
		}
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := encode(out, path, img); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return out.Close()
}

func encode(w io.Writer, path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		format, err := imaging.FormatFromFilename(path)
		if err != nil {
			return err
		}
		return imaging.Encode(w, img, format, imaging.JPEGQuality(95))
	}
}
