package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"backdrop/pkg/config"
	"backdrop/pkg/logging"
	"backdrop/pkg/resource"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	flag.Parse()

	conf := config.Default()
	if *configPath != "" {
		var err error
		if conf, err = config.Load(*configPath); err != nil {
			log.Fatalf("Couldn't load config: %v", err)
		}
	}
	if conf.BaseURL == "" {
		if wd, err := os.Getwd(); err == nil {
			conf.BaseURL = wd + string(os.PathSeparator)
		}
	}

	logger := logging.New(os.Stderr, conf.Level())
	resolver, err := resource.NewResolver(resource.NewFetcher(conf.BaseURL), conf.CacheSize, logger)
	if err != nil {
		log.Fatal(err)
	}
	renderer := resource.NewBackgroundRenderer(resolver, conf.RootFontSize, logger)

	width, height := conf.Viewport.Width, conf.Viewport.Height

	a := app.New()
	w := a.NewWindow("backdrop preview")
	w.Resize(fyne.NewSize(float32(width), float32(height+80)))

	target := image.NewRGBA(image.Rect(0, 0, width, height))
	canvasImg := canvas.NewImageFromImage(target)
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter background declarations and press Enter")

	entry := widget.NewEntry()
	entry.SetPlaceHolder("background: linear-gradient(to right, red, blue)")
	entry.OnSubmitted = func(declarations string) {
		status.SetText("Loading...")
		go func() {
			next := image.NewRGBA(image.Rect(0, 0, width, height))
			err := renderer.Render(declarations, next)
			fyne.Do(func() {
				if err != nil {
					status.SetText("Error: " + err.Error())
					return
				}
				canvasImg.Image = next
				canvasImg.Refresh()
				status.SetText(fmt.Sprintf("%dx%d", width, height))
			})
		}()
	}

	if flag.NArg() > 0 {
		entry.SetText(strings.Join(flag.Args(), " "))
		entry.OnSubmitted(entry.Text)
	}

	content := container.NewBorder(entry, status, nil, nil, canvasImg)
	w.SetContent(content)
	w.Canvas().Focus(entry)

	w.ShowAndRun()
}
