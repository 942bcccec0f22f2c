package usecase

import (
	iofs "io/fs"

	"github.com/3-lines-studio/flashlearn/internal/adapters/fs"
	"github.com/3-lines-studio/flashlearn/internal/core"
)

// Site is what the export needs from the application.
type Site interface {
	Routes() []core.RouteEntry
	Render(path string) ([]byte, int, error)
	RenderNotFound() ([]byte, error)
	Assets() iofs.FS
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
