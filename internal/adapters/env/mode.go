package env

import (
	"os"

	"github.com/3-lines-studio/flashlearn/internal/core"
)

const DevVar = "FLASHLEARN_DEV"

func DetectMode() core.Mode {
	if os.Getenv(DevVar) == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}
