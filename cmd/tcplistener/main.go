package main

import (
	"fmt"
	"net"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/nhdewitt/http-echo/internal/config"
	"github.com/nhdewitt/http-echo/internal/request"
)

// Prints whatever the echo server would parse, without answering.
func main() {
	port, err := config.GetEnvInt(config.EnvPort, config.DefaultPort)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid port")
	}
	addr := fmt.Sprintf(":%d", port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		logrus.WithError(err).Fatal("error listening")
	}
	defer listener.Close()

	fmt.Println("Listening for TCP traffic on", addr)
	for {
		c, err := listener.Accept()
		if err != nil {
			logrus.WithError(err).Fatal("error accepting connection")
		}
		logrus.WithFields(logrus.Fields{"remote_addr": c.RemoteAddr().String()}).Info("Connection accepted")

		req, err := request.RequestFromReader(c, request.DefaultBufferSize)
		c.Close()
		if err != nil {
			logrus.WithError(err).Warn("error parsing request")
			continue
		}
		printRequest(req)
	}
}

func printRequest(req *request.Request) {
	fmt.Println("Request line:")
	fmt.Printf("- Method: %s\n", req.Method)
	fmt.Printf("- Target: %s\n", req.URI)

	fmt.Println("Headers:")
	keys := make([]string, 0, len(req.Headers))
	for k := range req.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("- %s: %s\n", k, req.Headers[k])
	}

	fmt.Printf("Body (%s):\n", req.Body.Kind())
	switch req.Body.Kind() {
	case request.BodyJSON:
		fmt.Printf("%v\n", req.Body.Value())
	default:
		fmt.Println(req.Body.Raw())
	}
}
