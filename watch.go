package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hesusruiz/tagtree/tagtree"
	"go.uber.org/zap"
)

// Editors save in bursts, so events closer than this are processed once
const debounceDuration = 100 * time.Millisecond

// watch formats inputFileName into outputFileName, and again every time the input
// is modified, until ctx is done. Parse errors are logged and do not stop the loop.
func watch(ctx context.Context, p *tagtree.Parser, inputFileName, outputFileName string, sugar *zap.SugaredLogger) error {

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, because many editors replace the file instead of writing it
	inputFileName = filepath.Clean(inputFileName)
	if err := watcher.Add(filepath.Dir(inputFileName)); err != nil {
		return err
	}

	generate := func() error {
		doc, err := p.ParseFile(inputFileName)
		if err != nil {
			sugar.Errorw("processing", "file", inputFileName, "error", err)
			return nil
		}
		sugar.Infow("processing", "file", inputFileName, "output", outputFileName)
		return os.WriteFile(outputFileName, []byte(doc.Stringify()+"\n"), 0664)
	}

	if err := generate(); err != nil {
		return err
	}

	// pending is set when the input changed and is not yet processed
	var pending bool
	var lastEvent time.Time

	ticker := time.NewTicker(debounceDuration / 2)
	defer ticker.Stop()

	for {
		select {

		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != inputFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = true
			lastEvent = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err

		case <-ticker.C:
			if pending && time.Since(lastEvent) >= debounceDuration {
				pending = false
				if err := generate(); err != nil {
					return err
				}
			}

		}
	}
}
