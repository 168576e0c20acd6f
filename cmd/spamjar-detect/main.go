package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"spamjar/internal/adapters/youtube"
	"spamjar/internal/core/classifier"
	"spamjar/internal/modkit/module"
	"spamjar/internal/platform/config"
	"spamjar/internal/platform/logger"
	"spamjar/internal/services/api"

	detectdom "spamjar/internal/services/api/detect/domain"
	detectmod "spamjar/internal/services/api/detect/module"
	videosdom "spamjar/internal/services/api/videos/domain"
	videosmod "spamjar/internal/services/api/videos/module"
)

func main() {
	var (
		text    = flag.String("text", "", "classify a single comment")
		video   = flag.String("video", "", "classify the first page of comments of this video id")
		limit   = flag.Int("max", videosdom.DefaultMaxResults, "comments to fetch with -video (1-100)")
		envFile = flag.String("env", os.Getenv("CORE_ENV_FILE"), "optional .env file")
	)
	flag.Parse()

	if (*text == "") == (*video == "") {
		log.Fatal("exactly one of -text or -video is required")
	}
	if _, err := config.LoadDotenv(*envFile); err != nil {
		log.Fatalf("dotenv: %v", err)
	}

	// logs go to stderr so stdout stays pure JSON
	opts := logger.FromEnv()
	opts.Writer = os.Stderr
	opts.Component = "cli"
	logger.Init(opts)
	l := logger.Get()

	root := config.New()
	cls, err := classifier.FromConfig(root.Prefix("CORE_CLASSIFIER_"))
	if err != nil {
		l.Fatal().Err(err).Msg("classifier load failed")
	}

	mods := api.Modules(api.Options{
		Config:     root,
		Logger:     l,
		Classifier: cls,
		Comments:   youtube.NewClient(youtube.FromConfig(root).Client),
	})

	ctx := context.Background()
	var out any
	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
	}
	switch {
	case *text != "":
		det := mustPorts[detectmod.Ports]("detect").Detector
		out, err = det.Detect(ctx, detectdom.DetectionRequest{Content: *text})
	default:
		proc := mustPorts[videosmod.Ports]("videos").Processor
		out, err = proc.ProcessVideo(ctx, videosdom.ProcessPageInput{VideoID: *video, MaxResults: *limit})
	}
	if err != nil {
		l.Fatal().Err(err).Msg("detect failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// mustPorts reads a port bundle back from the module registry
func mustPorts[T any](name string) T {
	p, ok := module.PortsAs[T](name)
	if !ok {
		logger.Get().Fatal().Str("module", name).Msg("module ports not registered")
	}
	return p
}
