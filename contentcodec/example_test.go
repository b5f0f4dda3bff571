package contentcodec_test

import (
	"fmt"

	"github.com/offscale/cdd-web-ng-sub004/contentcodec"
)

func ExampleEncode() {
	d := &contentcodec.Descriptor{ContentEncoding: contentcodec.EncodingBase64}
	fmt.Println(contentcodec.Encode([]byte("test-content"), d))
	// Output: dGVzdC1jb250ZW50
}

func ExampleDecode() {
	d := &contentcodec.Descriptor{
		ContentEncoding: contentcodec.EncodingBase64,
		Decode:          contentcodec.DecodeJSON,
	}
	fmt.Println(contentcodec.Decode("eyJuYW1lIjoicmV4In0=", d))
	// Output: map[name:rex]
}
