package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/matrixbg/internal/config"
	"github.com/san-kum/matrixbg/internal/generator"
	"github.com/san-kum/matrixbg/internal/metrics"
	"github.com/san-kum/matrixbg/internal/raster"
	"github.com/san-kum/matrixbg/internal/viz"
)

var (
	verbose bool
	// preview
	at   float64
	cols int
	// watch
	interval time.Duration
)

// main renders one frame and prints its path when called without a
// subcommand. Any error exits with status 1.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "matrixbg: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "matrixbg",
		Short:         "render a digital rain frame for the lock screen",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: renderFrame,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "draw a frame in the terminal",
		Args:  cobra.NoArgs,
		RunE:  previewFrame,
	}
	previewCmd.Flags().Float64Var(&at, "at", 0, "unix time in seconds (default now)")
	previewCmd.Flags().IntVar(&cols, "cols", 0, "maximum terminal columns (0 = full size)")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "regenerate the frame periodically like the lock screen",
		Args:  cobra.NoArgs,
		RunE:  watchFrames,
	}
	watchCmd.Flags().DurationVar(&interval, "interval", time.Second, "regeneration interval")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "list chunks and row coverage of a written frame",
		Args:  cobra.MaximumNArgs(1),
		RunE:  inspectFile,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the compiled-in configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.DefaultConfig().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	rootCmd.AddCommand(previewCmd, watchCmd, inspectCmd, configCmd)
	return rootCmd
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func renderFrame(cmd *cobra.Command, args []string) error {
	gen, err := generator.New(config.DefaultConfig(), slog.Default())
	if err != nil {
		return err
	}

	path, err := gen.Run(time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func previewFrame(cmd *cobra.Command, args []string) error {
	gen, err := generator.New(config.DefaultConfig(), slog.Default())
	if err != nil {
		return err
	}

	now := time.Now()
	if cmd.Flags().Changed("at") {
		now = time.Unix(0, int64(at*1e9))
	}

	frame := gen.Frame(now)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Preview(frame, cols))
	fmt.Fprintln(out, viz.StatsLine(metrics.Collect(frame, metrics.Defaults()...)))
	return nil
}

func watchFrames(cmd *cobra.Command, args []string) error {
	gen, err := generator.New(config.DefaultConfig(), slog.Default())
	if err != nil {
		return err
	}
	return viz.RunWatch(gen, interval)
}

func inspectFile(cmd *cobra.Command, args []string) error {
	path, err := outputPath(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	chunks, err := raster.ReadChunks(bytes.NewReader(data))
	if err != nil {
		slog.Warn("inspect: chunk verification failed", "path", path, "error", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d bytes)\n\n", path, len(data))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OFFSET\tTAG\tLENGTH\tCRC\tSTATUS")
	for _, c := range chunks {
		status := "ok"
		if !c.Valid {
			status = "BAD"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%08x\t%s\n", c.Offset, c.Tag, len(c.Data), c.CRC, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err != nil && !hasChunk(chunks, "IDAT") {
		return err
	}
	if len(chunks) == 0 {
		return nil
	}

	hdr, herr := raster.ParseHeader(chunks[0])
	if herr != nil {
		return herr
	}
	fmt.Fprintf(out, "\n%dx%d depth=%d color=%d interlace=%d\n",
		hdr.Width, hdr.Height, hdr.BitDepth, hdr.ColorType, hdr.Interlace)

	raw, rerr := raster.Scanlines(chunks)
	if rerr != nil {
		return rerr
	}
	frame, ferr := unfiltered(hdr, raw)
	if ferr != nil {
		return ferr
	}

	fmt.Fprintln(out, viz.StatsLine(metrics.Collect(frame, metrics.Defaults()...)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(metrics.RowCounts(frame),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("lit pixels per row"),
	))

	return err
}

// unfiltered rebuilds a frame from filter-0 RGB scanlines, the only layout
// the encoder produces.
func unfiltered(hdr raster.Header, raw []byte) (*raster.Frame, error) {
	if hdr.BitDepth != 8 || hdr.ColorType != 2 {
		return nil, fmt.Errorf("unsupported pixel format depth=%d color=%d", hdr.BitDepth, hdr.ColorType)
	}

	w, h := int(hdr.Width), int(hdr.Height)
	stride := w*3 + 1
	if len(raw) != stride*h {
		return nil, fmt.Errorf("scanlines: expected %d bytes, got %d", stride*h, len(raw))
	}

	frame := raster.NewFrame(w, h)
	for y := 0; y < h; y++ {
		line := raw[y*stride : (y+1)*stride]
		if line[0] != 0 {
			return nil, fmt.Errorf("row %d: unsupported filter type %d", y, line[0])
		}
		copy(frame.Row(y), line[1:])
	}
	return frame, nil
}

func hasChunk(chunks []raster.Chunk, tag string) bool {
	for _, c := range chunks {
		if c.Tag == tag {
			return true
		}
	}
	return false
}

func outputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg := config.DefaultConfig()
	dir, err := cfg.CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, cfg.OutputName), nil
}
