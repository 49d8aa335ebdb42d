// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/genesis-cli/genesis/internal/infra/config"
	"github.com/genesis-cli/genesis/internal/infra/linestore"
	"github.com/genesis-cli/genesis/internal/infra/logging"
	"github.com/genesis-cli/genesis/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir  string // Working directory (local config and relative data paths)
	DataPath string // Absolute path to the data file
	LogDir   string // Directory for genesis.log
}

// newConfig resolves paths for the working directory and configured data path.
func newConfig(workDir, dataPath string) Config {
	path := domain.ResolveDataPath(workDir, dataPath)
	return Config{
		WorkDir:  workDir,
		DataPath: path,
		LogDir:   domain.LogDir(path),
	}
}

// Container provides dependency injection for the application.
// It holds the task list, port implementations and factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Repository    domain.TaskRepository
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	AppLogger     domain.Logger

	// Pointer fields
	Tasks     *domain.TaskList
	Logger    *slog.Logger
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(appConfig.Log.Level),
	}))

	c := &Container{
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Tasks:         domain.NewTaskList(),
		Logger:        logger,
		AppConfig:     appConfig,
	}
	c.UseDataPath(dir, appConfig.Storage.Path)
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, repo domain.TaskRepository, logger *slog.Logger) *Container {
	return &Container{
		Repository: repo,
		Tasks:      domain.NewTaskList(),
		Logger:     logger,
		AppConfig:  domain.NewDefaultConfig(),
		Config:     cfg,
	}
}

// UseDataPath points the repository and the file logger at dataPath,
// resolved against workDir. Call it before any task is loaded.
func (c *Container) UseDataPath(workDir, dataPath string) {
	_ = c.closeLogger()
	c.Config = newConfig(workDir, dataPath)
	c.Repository = linestore.New(c.Config.DataPath)
	c.AppLogger = logging.New(c.Config.LogDir, logging.ParseLevel(c.AppConfig.Log.Level))
	c.Logger.Debug("using data file", "path", c.Config.DataPath)
}

// Close releases the file logger.
func (c *Container) Close() error {
	return c.closeLogger()
}

func (c *Container) closeLogger() error {
	if closer, ok := c.AppLogger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// ExecuteCommandUseCase returns a new ExecuteCommand use case.
func (c *Container) ExecuteCommandUseCase() *usecase.ExecuteCommand {
	return usecase.NewExecuteCommand(c.Tasks, c.Repository, c.AppLogger)
}

// LoadTasksUseCase returns a new LoadTasks use case.
func (c *Container) LoadTasksUseCase() *usecase.LoadTasks {
	return usecase.NewLoadTasks(c.Tasks, c.Repository, c.AppLogger)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.LogDir)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
