package console

import (
	"bufio"
	"io"
	"log/slog"
	"sync"

	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
)

// Console writes user facing lines to a buffered writer. Lines reach the underlying writer
// on Flush.
type Console struct {
	mutex sync.Mutex
	w     *bufio.Writer
}

var _ interfaces.Console = (*Console)(nil)

func New(w io.Writer) *Console {
	return &Console{w: bufio.NewWriter(w)}
}

func (x *Console) Println(msg string) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	if _, err := x.w.WriteString(msg + "\n"); err != nil {
		logging.Default().Warn("Fail to write console output", slog.Any("error", err))
	}
}

func (x *Console) Flush() error {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return x.w.Flush()
}
