// Package realtime receives server-pushed events over Backand's
// socket.io websocket endpoint. It speaks just enough of the framing
// to log in, answer pings and dispatch events on the default
// namespace; acks and custom namespaces are not supported.
package realtime

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// engine.io frame types, first byte of every text frame.
const (
	packetOpen    byte = '0'
	packetClose   byte = '1'
	packetPing    byte = '2'
	packetPong    byte = '3'
	packetMessage byte = '4'
)

// socket.io message subtypes, first byte of a message payload.
const (
	messageConnect byte = '0'
	messageEvent   byte = '2'
)

// packet is one engine.io frame split into type byte and payload.
type packet struct {
	typ  byte
	data []byte
}

func parsePacket(raw []byte) (packet, error) {
	if len(raw) == 0 {
		return packet{}, errors.New("empty frame")
	}
	return packet{typ: raw[0], data: raw[1:]}, nil
}

// encodeEvent builds an event frame: "42" followed by a JSON array of
// the event name and its arguments.
func encodeEvent(name string, args ...any) ([]byte, error) {
	payload := append([]any{name}, args...)
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	frame := make([]byte, 0, len(raw)+2)
	frame = append(frame, packetMessage, messageEvent)
	return append(frame, raw...), nil
}

// parseEvent unpacks a message payload. Only plain event frames yield
// ok; connect acks and anything namespaced fall through. The returned
// payload is the event's first argument.
func parseEvent(data []byte) (name string, payload gjson.Result, ok bool) {
	if len(data) == 0 || data[0] != messageEvent {
		return "", gjson.Result{}, false
	}
	arr := gjson.ParseBytes(data[1:])
	if !arr.IsArray() {
		return "", gjson.Result{}, false
	}
	items := arr.Array()
	if len(items) == 0 {
		return "", gjson.Result{}, false
	}
	name = items[0].String()
	if len(items) > 1 {
		payload = items[1]
	}
	return name, payload, true
}
