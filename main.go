package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/controls"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/sampler"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Config holds the parsed command line
type Config struct {
	Scene       string
	Sampler     string
	Samples     int
	Out         string
	Scale       int
	Thumb       uint
	Interactive bool
	S3          output.S3Config
	Verbose     bool
	Help        bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}

	level := slog.LevelInfo
	if config.Verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(config, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	var config Config
	flag.StringVar(&config.Scene, "scene", "default", "Scene name or path to a .json scene file")
	flag.StringVar(&config.Sampler, "sampler", "simple", "Sampler: simple, regular, jitter or random")
	flag.IntVar(&config.Samples, "samples", 16, "Samples per pixel (rounded down to a perfect square)")
	flag.StringVar(&config.Out, "out", "", "Output file (.png, .bmp, .tif); default output/<scene>/render_<timestamp>.png")
	flag.IntVar(&config.Scale, "scale", 1, "Integer upscale factor applied before saving")
	flag.UintVar(&config.Thumb, "thumb", 0, "Also write a thumbnail no larger than this many pixels (0 disables)")
	flag.BoolVar(&config.Interactive, "interactive", false, "Read keys from stdin, one per line, and write a frame after each")
	flag.StringVar(&config.S3.Bucket, "s3-bucket", "", "Upload frames to this S3 bucket")
	flag.StringVar(&config.S3.Region, "s3-region", "us-east-1", "S3 region")
	flag.StringVar(&config.S3.Endpoint, "s3-endpoint", "", "Custom S3 endpoint (e.g. a MinIO server)")
	flag.BoolVar(&config.Verbose, "v", false, "Enable debug logging")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()

	config.S3.AccessKey = os.Getenv("S3_ACCESS_KEY")
	config.S3.SecretKey = os.Getenv("S3_SECRET_KEY")
	return config
}

func showHelp() {
	fmt.Println("Orthographic Raycaster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.Available() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println("  *.json   - Scene file with viewPlane, background, spheres and planes")
	fmt.Println()
	fmt.Println("Interactive keys:")
	for _, b := range controls.Bindings() {
		fmt.Printf("  %-4s  %s\n", b.Key, b.Description)
	}
	fmt.Println("  Q     quit")
	fmt.Println()
	fmt.Println("Keys are also accepted by name (PLUS, MINUS). In web API URLs write + as PLUS or %2B.")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// run renders the first frame and, in interactive mode, one more per key read from in
func run(config Config, in io.Reader, out io.Writer) error {
	world, err := createScene(config.Scene)
	if err != nil {
		return err
	}

	if config.Samples < 0 || config.Samples > 255 {
		return fmt.Errorf("samples must be between 0 and 255, got %d", config.Samples)
	}
	if config.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", config.Scale)
	}
	kind, err := sampler.ParseKind(config.Sampler)
	if err != nil {
		return err
	}
	smp, err := sampler.New(kind, uint8(config.Samples))
	if err != nil {
		return err
	}

	var publisher *output.Publisher
	if config.S3.Bucket != "" {
		if publisher, err = output.NewPublisher(config.S3); err != nil {
			return err
		}
	}

	filename := config.Out
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(createOutputDir(config.Scene), fmt.Sprintf("render_%s.png", timestamp))
	}
	if _, err := output.FormatFromPath(filename); err != nil {
		return err
	}

	session, err := controls.NewSession(world, renderer.NewTracer(smp))
	if err != nil {
		return err
	}
	if err := writeFrame(session, filename, config, publisher, out); err != nil {
		return err
	}

	if !config.Interactive {
		return nil
	}

	fmt.Fprintln(out, "Enter keys (W/S/A/D/UP/DOWN/J/R/G/P/+/-/K), Q to quit")
	scanner := bufio.NewScanner(in)
	frame := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
			break
		}

		key, err := controls.ParseKey(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		changed, err := session.Apply(key)
		if err != nil {
			return err
		}
		if !changed {
			continue
		}

		frame++
		if err := writeFrame(session, framePath(filename, frame), config, publisher, out); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// createScene resolves a built-in scene name or a .json scene file
func createScene(name string) (*scene.World, error) {
	if loaders.IsSceneFile(name) {
		return loaders.LoadScene(name)
	}
	return scene.Create(name)
}

// createOutputDir returns output/<scene>, using the file stem for scene files
func createOutputDir(sceneName string) string {
	base := sceneName
	if loaders.IsSceneFile(sceneName) {
		base = filepath.Base(sceneName)
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return filepath.Join("output", base)
}

// framePath numbers interactive frames: render.png becomes render_003.png
func framePath(filename string, frame int) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(filename, ext), frame, ext)
}

// thumbPath places the thumbnail next to the frame
func thumbPath(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_thumb" + ext
}

func writeFrame(session *controls.Session, filename string, config Config, publisher *output.Publisher, out io.Writer) error {
	width, height := session.Size()
	img, err := output.ToImage(session.Buffer(), width, height)
	if err != nil {
		return err
	}

	frame := output.Scale(img, config.Scale)
	if err := output.SaveImage(filename, frame); err != nil {
		return err
	}

	stats := session.Tracer.LastStats()
	fmt.Fprintf(out, "Render completed in %v (%dx%d, %.1f samples/pixel, %.0f%% coverage)\n",
		stats.Elapsed, width, height, stats.AverageSamples(), 100*stats.Coverage())
	fmt.Fprintf(out, "Render saved as %s\n", filename)

	if config.Thumb > 0 {
		if err := output.SaveImage(thumbPath(filename), output.Thumbnail(img, config.Thumb)); err != nil {
			return err
		}
	}

	if publisher != nil {
		format, err := output.FormatFromPath(filename)
		if err != nil {
			return err
		}
		data, err := output.EncodeBytes(frame, format)
		if err != nil {
			return err
		}
		if err := publisher.Publish(context.Background(), filepath.Base(filename), data, format); err != nil {
			return err
		}
	}
	return nil
}
