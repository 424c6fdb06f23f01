package loader

import (
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/rs/zerolog"
)

// SceneLoaderBuilderOption is a function that modifies the sceneLoader
// during construction.
type SceneLoaderBuilderOption func(*sceneLoader)

// WithLoadWorkers sets the number of workers fetching and parsing assets.
//
// Parameters:
//   - workers: the worker count, ignored when less than 1
//
// Returns:
//   - SceneLoaderBuilderOption: the option function
func WithLoadWorkers(workers int) SceneLoaderBuilderOption {
	return func(l *sceneLoader) {
		if workers < 1 {
			return
		}
		l.pool = worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)
	}
}

// WithLoaderLogger sets the logger used by the loader.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - SceneLoaderBuilderOption: the option function
func WithLoaderLogger(log zerolog.Logger) SceneLoaderBuilderOption {
	return func(l *sceneLoader) {
		l.log = log
	}
}
