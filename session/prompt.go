package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/projecteru2/vmreport/config"
)

var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// ResolvePassword fills conf.Password when it was not supplied.
// On a terminal the password is read without echo; otherwise one line is read from in.
func ResolvePassword(conf *config.Config, in *os.File, out io.Writer) error {
	if conf.Password != "" {
		return nil
	}
	_, _ = fmt.Fprintf(out, "Enter password for host %s and user %s: ", conf.Host, conf.User)

	fd := int(in.Fd()) //nolint:gosec
	if isTerminal(fd) {
		pw, err := readPassword(fd)
		_, _ = fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		conf.Password = string(pw)
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		conf.Password = strings.TrimRight(line, "\r\n")
	}
	if conf.Password == "" {
		return fmt.Errorf("%w: password", config.ErrMissing)
	}
	return nil
}
