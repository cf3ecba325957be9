package service

import (
	"drink-coffee/internal/notify"
	"drink-coffee/internal/repositories"
	"drink-coffee/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

func testCatalog(t interface{ Fatalf(string, ...interface{}) }) *repositories.CatalogRepository {
	catalog, err := repositories.NewCatalogRepository("", testLogger())
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return catalog
}

// recordingPublisher captures pushed notices for assertions.
type recordingPublisher struct {
	messages []string
	levels   []notify.Level
}

func (p *recordingPublisher) Push(message string, level notify.Level) {
	p.messages = append(p.messages, message)
	p.levels = append(p.levels, level)
}
