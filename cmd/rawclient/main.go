package main

import (
	"bufio"
	"io"
	"net"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nhdewitt/http-echo/internal/config"
)

// Reads a request from stdin, sends it with CRLF line endings in one
// write, and prints the reply.
func main() {
	addr := config.GetEnv(config.EnvAddr, config.DefaultAddr)

	raw, err := readRequest(os.Stdin)
	if err != nil {
		logrus.WithError(err).Fatal("input error")
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"addr": addr}).Fatal("error connecting")
	}
	defer conn.Close()

	if _, err := io.WriteString(conn, raw); err != nil {
		logrus.WithError(err).Fatal("write error")
	}
	if _, err := io.Copy(os.Stdout, conn); err != nil {
		logrus.WithError(err).Error("read error")
	}
}

// readRequest joins the lines of r with CRLF. A final line ending is kept.
func readRequest(r io.Reader) (string, error) {
	var lines []string
	br := bufio.NewReader(r)
	trailing := false
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			trailing = strings.HasSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	out := strings.Join(lines, "\r\n")
	if trailing {
		out += "\r\n"
	}
	return out, nil
}
