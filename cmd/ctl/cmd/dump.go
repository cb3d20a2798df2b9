package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/jpfielding/dcmpix/pkg/dcm"
)

// NewDumpCmd lists the elements read before the pixel data
func NewDumpCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [uri]",
		Short: "DICOM element dump",
		Long:  "lists every element up to the pixel data; --filter matches a glob against the keyword or (gggg,eeee) tag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			in, err := openInput(ctx, inputURI(cmd, args), verbose)
			if err != nil {
				return err
			}
			defer in.Close()

			var match glob.Glob
			if pattern, _ := cmd.Flags().GetString("filter"); pattern != "" {
				if match, err = glob.Compile(pattern); err != nil {
					return fmt.Errorf("invalid filter %q: %w", pattern, err)
				}
			}
			format, _ := cmd.Flags().GetString("format")

			var elements []dcm.Element
			opts, err := decodeOptions(ctx, cmd, in.Name)
			if err != nil {
				return err
			}
			opts.Ping = true
			opts.OnElement = func(e dcm.Element) {
				if match == nil || match.Match(e.Name) || match.Match(e.Tag.String()) {
					elements = append(elements, e)
				}
			}
			if _, err := dcm.Decode(in.Reader, opts); err != nil {
				return err
			}

			switch format {
			case "text":
				for _, e := range elements {
					fmt.Printf("%s%s %s %-32s %8d  %s\n",
						strings.Repeat("  ", e.Depth), e.Tag, e.VR, e.Name, e.Length, e.Value)
				}
			default:
				j, _ := json.Marshal(elements)
				os.Stdout.Write(j)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	pf := cmd.PersistentFlags()
	pf.StringP("format", "f", "text", "output format (text|json)")
	pf.String("filter", "", "glob on keyword or tag, e.g. 'Pixel*' or '(0028,*'")
	return cmd
}
