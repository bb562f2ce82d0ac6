package app

import (
	"context"

	"github.com/adanyl0v/go-todo-local/internal/config"
	"github.com/adanyl0v/go-todo-local/internal/services"
	"github.com/adanyl0v/go-todo-local/internal/storage"
	"github.com/adanyl0v/go-todo-local/internal/tasks"
)

var (
	globalStorageSlot storage.Slot
	globalTaskService services.TaskService
)

func MustOpenStorage() {
	cfg := config.Global()

	slot, err := storage.Open(context.Background(), cfg, globalLogger)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("driver", cfg.Storage.Driver).
			Msg("failed to open storage")
		panic(err)
	}
	globalStorageSlot = slot
	globalLogger.Info().
		Str("driver", cfg.Storage.Driver).
		Str("key", cfg.Storage.Key).
		Msg("opened storage")
}

func CloseStorage() {
	err := globalStorageSlot.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close storage")
		return
	}
	globalLogger.Info().Msg("closed storage")
}

func MustLoadTasks() {
	ids, err := tasks.NewIDProvider(config.Global().Tasks.IDFormat)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to select id provider")
		panic(err)
	}

	svc, err := services.NewTaskService(
		context.Background(),
		globalLogger,
		globalStorageSlot,
		tasks.SystemClock,
		ids,
	)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load tasks")
		panic(err)
	}
	globalTaskService = svc
}

// TaskService returns the service created by MustLoadTasks.
func TaskService() services.TaskService {
	return globalTaskService
}
