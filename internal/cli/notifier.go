package cli

import (
	"fmt"
	"io"
	"os"
)

// Notifier writes transient user feedback to the terminal, standing in for
// the host application's notice popups.
type Notifier struct {
	writer io.Writer
}

// NewNotifier creates a notifier. A nil writer defaults to stdout.
func NewNotifier(writer io.Writer) *Notifier {
	if writer == nil {
		writer = os.Stdout
	}
	return &Notifier{writer: writer}
}

// Success shows a success notice.
func (n *Notifier) Success(message string) {
	fmt.Fprintln(n.writer, FormatSuccess(message))
}

// Failure shows a failure notice. The message stays coarse; details belong
// in the log.
func (n *Notifier) Failure(message string) {
	fmt.Fprintln(n.writer, FormatError(message))
}
