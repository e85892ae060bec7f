package response

type StatusCode int

// StatusOK is the only status this server ever sends.
const StatusOK StatusCode = 200

var statusLines = map[StatusCode]string{
	StatusOK: "HTTP/1.1 200 OK\r\n",
}
