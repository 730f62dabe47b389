package main

import (
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"
)

func main() {
	// captured from GET /1/objects/todos?pageSize=5&pageNumber=1 on a test app
	var msg string = `{
    "totalRows": 42,
    "data": [
      {
        "__metadata": {
          "id": "3",
          "fields": {
            "title": { "type": "text" },
            "done": { "type": "boolean" },
            "owner": { "type": "singleSelect" }
          },
          "descriptives": {},
          "dates": ["dueDate"]
        },
        "id": 3,
        "title": "buy milk",
        "done": false,
        "dueDate": "2016-02-21T00:00:00Z",
        "owner": {
          "__metadata": { "id": "1" },
          "id": 1,
          "email": "ada@example.com",
          "firstName": "Ada"
        }
      }
    ]
  }`

	parsed := gjson.Parse(msg)
	fmt.Println("totalRows:", parsed.Get("totalRows").Int())
	fmt.Println("first title:", parsed.Get("data.0.title").String())
	fmt.Println("owner email:", parsed.Get("data.0.owner.email").String())
	fmt.Println("metadata dates:", parsed.Get("data.0.__metadata.dates").Array())

	// what the dashboard sends for a filtered list, for comparison with
	// query.Encode output
	filter := `[{"fieldName":"done","operator":"equals","value":false}]`
	fmt.Println("filter segment: filter=" + url.QueryEscape(filter))
	// NB: QueryEscape uses + for spaces; the API wants %20. That is why
	// the encoder does its own escaping.
	fmt.Println("queryescape of space:", url.QueryEscape("a b"))
	fmt.Println("pathescape of space:", url.PathEscape("a b"))
	fmt.Println("pathescape of comma:", url.PathEscape("a,b"))
}
