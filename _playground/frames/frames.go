package main

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// socket.io frames as seen in the browser devtools against the hosted
// socket endpoint
var captured = []string{
	`0{"sid":"p8rcNhIzS4MKbB1IAAAG","upgrades":[],"pingInterval":25000,"pingTimeout":60000}`,
	`40`,
	`42["items_updated",{"object":"todos","id":"3","action":"update"}]`,
	`3`,
}

func main() {
	for _, f := range captured {
		if len(f) == 0 {
			continue
		}
		switch f[0] {
		case '0':
			fmt.Println("open, pingInterval =", gjson.Get(f[1:], "pingInterval").Int())
		case '3':
			fmt.Println("pong")
		case '4':
			rest := f[1:]
			if len(rest) > 0 && rest[0] == '2' {
				arr := gjson.Parse(rest[1:]).Array()
				fmt.Println("event:", arr[0].String(), "->", arr[1].Raw)
			} else {
				fmt.Println("message (non-event):", rest)
			}
		default:
			fmt.Println("other:", f)
		}
	}
}
