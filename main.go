package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/bmp"
	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/renderer"
	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/scene"
)

func main() {
	output := flag.String("output", "output.bmp", "Output BMP file path")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of render workers")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Renders a fixed single-sphere scene to a 24-bit BMP file.")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if err := run(*output, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(output string, workers int) error {
	s := scene.NewDefaultScene()

	fmt.Printf("Rendering %dx%d scene...\n", s.Width, s.Height)
	startTime := time.Now()
	fb := renderer.Render(s, s.Width, s.Height, workers)
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := bmp.Encode(file, fb); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", output, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}

	fmt.Printf("Render saved as %s\n", output)
	return nil
}
