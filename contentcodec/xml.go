package contentcodec

import (
	mxj "github.com/clbanning/mxj/v2"
)

// XMLDecoder parses an XML document into a generic value. The codec only
// needs the inbound direction; outbound XML is produced upstream by the
// caller's own marshaling.
type XMLDecoder interface {
	Decode(data []byte) (any, error)
}

// defaultXMLDecoder maps XML elements onto nested map[string]any values.
type defaultXMLDecoder struct{}

func (defaultXMLDecoder) Decode(data []byte) (any, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, err
	}
	return map[string]any(m), nil
}
