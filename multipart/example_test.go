package multipart_test

import (
	"fmt"

	"github.com/offscale/cdd-web-ng-sub004/multipart"
)

func ExampleSerialize() {
	payload := multipart.Serialize(map[string]any{
		"name": "rex",
		"meta": map[string]any{"kind": "dog"},
	}, multipart.Config{})

	for _, field := range payload.Form.Fields() {
		if field.Blob != nil {
			fmt.Printf("%s: %s (%s)\n", field.Name, field.Blob.Data, field.Blob.MediaType)
			continue
		}
		fmt.Printf("%s: %s\n", field.Name, field.Value)
	}
	// Output:
	// meta: {"kind":"dog"} (application/json)
	// name: rex
}

func ExampleBuilder_Serialize() {
	builder := multipart.New(multipart.WithBoundarySource(func() string { return "boundary" }))
	payload := builder.Serialize(
		map[string]any{"name": "rex"},
		multipart.Config{MediaType: "multipart/form-data"},
	)

	fmt.Println(payload.Headers["Content-Type"])
	fmt.Printf("%q\n", payload.Raw)
	// Output:
	// multipart/form-data; boundary=boundary
	// "--boundary\r\nContent-Disposition: form-data; name=\"name\"\r\nContent-Type: text/plain\r\n\r\nrex\r\n--boundary--\r\n"
}
