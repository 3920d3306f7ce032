package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"backdrop/pkg/config"
	"backdrop/pkg/logging"
	"backdrop/pkg/render"
	"backdrop/pkg/resource"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	base := flag.String("base", "", "base URL or directory for relative image URLs")
	output := flag.String("o", "", "output PNG file path, nothing is painted when empty")
	width := flag.Int("w", 0, "width in pixels")
	height := flag.Int("h", 0, "height in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bgcompose [flags] <declarations>\n\n")
		fmt.Fprintf(os.Stderr, "Example: bgcompose -o out.png 'background: url(tile.png) repeat-x, linear-gradient(red, blue)'\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	conf := config.Default()
	if *configPath != "" {
		var err error
		if conf, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *base != "" {
		conf.BaseURL = *base
	}
	if conf.BaseURL == "" {
		if wd, err := os.Getwd(); err == nil {
			conf.BaseURL = wd + string(os.PathSeparator)
		}
	}
	if *width > 0 {
		conf.Viewport.Width = *width
	}
	if *height > 0 {
		conf.Viewport.Height = *height
	}

	logger := logging.New(os.Stderr, conf.Level())
	resolver, err := resource.NewResolver(resource.NewFetcher(conf.BaseURL), conf.CacheSize, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	renderer := resource.NewBackgroundRenderer(resolver, conf.RootFontSize, logger)

	spec, err := renderer.Compose(strings.Join(flag.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error composing background: %v\n", err)
		os.Exit(1)
	}
	describe(os.Stdout, spec)

	if *output == "" {
		return
	}

	target := image.NewRGBA(image.Rect(0, 0, conf.Viewport.Width, conf.Viewport.Height))
	render.NewRendererForImage(target).Paint(spec)

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, target); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Saved %dx%d to %s\n", conf.Viewport.Width, conf.Viewport.Height, *output)
}
