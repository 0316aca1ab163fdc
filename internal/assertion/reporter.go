package assertion

import (
	"fmt"
	"io"

	"github.com/nestjam/envassert/internal/domain"
)

// Reporter выводит итог проверки в консоль.
type Reporter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewReporter создает Reporter. Успех пишется в stdout, ошибки в stderr.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	return &Reporter{
		stdout: stdout,
		stderr: stderr,
	}
}

// Report выводит сообщение об итоге проверки.
func (r *Reporter) Report(result Result, err error) {
	if err != nil {
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return
	}

	if result.State != domain.ValueMatch {
		fmt.Fprintf(r.stderr, "Error: %s check ended in state %q\n", result.Name, result.State)
		return
	}

	fmt.Fprintf(r.stdout, "Success: %s is set to the expected value %q\n", result.Name, result.Expected)
}
