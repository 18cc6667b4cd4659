package alertruns

import (
	"log"
	"os"

	"github.com/google/uuid"
)

func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// NewBatchID returns a correlation id tying together the log lines of one batch.
// It never ends up in produced tables.
func NewBatchID() string {
	return uuid.New().String()
}
