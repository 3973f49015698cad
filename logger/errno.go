package logger

import (
	"strings"
	"syscall"

	"github.com/pkg/errors"
)

// describeError renders err the way strerror renders an errno.
// An errno found anywhere in the wrap chain is described with the platform
// text, capitalised ("No such file or directory"); other errors use Error().
func describeError(err error) string {
	if err == nil {
		return "Success"
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == 0 {
			return "Success"
		}
		return capitalize(errno.Error())
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
