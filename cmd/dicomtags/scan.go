package main

import (
	"context"
	"log/slog"

	"dicomtags/internal/catalog"
	"dicomtags/internal/config"
	"dicomtags/internal/dicomfile"
	"dicomtags/internal/extract"
	"dicomtags/internal/preflight"
	"dicomtags/internal/tagtable"
)

func runScan(ctx context.Context, root string, cfg *config.Config, logger *slog.Logger) (tagtable.Summary, error) {
	if err := preflight.FirstFailure(preflight.RunAll(root)); err != nil {
		return tagtable.Summary{}, err
	}

	extractor := extract.New(dicomDecoder(dicomfile.Options{SkipPixelData: cfg.Scan.SkipPixelData}), catalog.Attributes())
	return tagtable.Run(ctx, extractor, tagtable.Options{
		Root:             root,
		ProgressInterval: cfg.Scan.ProgressInterval,
		Logger:           logger,
	})
}

func dicomDecoder(opts dicomfile.Options) extract.Decoder {
	return extract.DecodeFunc(func(path string) (extract.Dataset, error) {
		file, err := dicomfile.Open(path, opts)
		if err != nil {
			return nil, err
		}
		return file, nil
	})
}
