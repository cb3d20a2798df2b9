package cmd

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpfielding/dcmpix/pkg/dcm"
)

// input is an opened DICOM source
type input struct {
	Name   string
	Reader io.ReadSeeker
	close  func() error
}

func (in *input) Close() error {
	if in.close == nil {
		return nil
	}
	return in.close()
}

// openInput opens a file path, file:// URI, http(s) URL or "-" for stdin.
// Remote and piped sources are buffered since decoding seeks.
func openInput(ctx context.Context, uri string, verbose bool) (*input, error) {
	uri = strings.TrimPrefix(uri, "file://")
	switch {
	case uri == "":
		return nil, fmt.Errorf("an input uri is required")
	case uri == "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return &input{Name: "stdin", Reader: bytes.NewReader(b)}, nil
	case strings.HasPrefix(uri, "http"):
		// TODO make certificate verification a flag
		cl := &http.Client{
			Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		resp, err := cl.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to download: %w", err)
		}
		defer resp.Body.Close()
		if verbose {
			reqDump, _ := httputil.DumpRequest(req, true)
			os.Stderr.Write(reqDump)
			resDump, _ := httputil.DumpResponse(resp, false)
			os.Stderr.Write(resDump)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to download: %s", resp.Status)
		}
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to download: %w", err)
		}
		return &input{Name: uri, Reader: bytes.NewReader(b)}, nil
	default:
		f, err := os.Open(uri)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		return &input{Name: uri, Reader: f, close: f.Close}, nil
	}
}

// addInputFlags registers the flags read by decodeOptions
func addInputFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringP("uri", "u", "", "DICOM file path, file:// or http(s) URI, or - for stdin")
	pf.BoolP("verbose", "v", false, "dump http requests and responses")
	pf.Bool("avoid-scaling", false, "keep stored sample values instead of stretching them")
	pf.StringArrayP("define", "D", nil, "decoder define key=value, e.g. dcm:pixel-limit=100000000")
	pf.String("tmp-dir", "", "directory for encapsulated frame scratch files")
}

// inputURI takes the uri flag or the first argument
func inputURI(cmd *cobra.Command, args []string) string {
	uri, _ := cmd.Flags().GetString("uri")
	if uri == "" && len(args) > 0 {
		uri = args[0]
	}
	return uri
}

// decodeOptions builds decoder options from the input flags. Decoding
// stops when ctx is canceled.
func decodeOptions(ctx context.Context, cmd *cobra.Command, name string) (dcm.Options, error) {
	avoid, _ := cmd.Flags().GetBool("avoid-scaling")
	defines, _ := cmd.Flags().GetStringArray("define")
	tmpDir, _ := cmd.Flags().GetString("tmp-dir")

	opts := dcm.Options{
		Filename:     name,
		AvoidScaling: avoid,
		Logger:       slog.Default().With("file", name),
		Monitor: func(current, total int64) bool {
			return ctx.Err() == nil
		},
	}
	opts.TempFiles.Dir = tmpDir
	opts.TempFiles.Prefix = "dcmctl-"

	kv := map[string]string{}
	for _, d := range defines {
		k, v, _ := strings.Cut(d, "=")
		kv[k] = v
	}
	return opts.ParseDefines(kv)
}
