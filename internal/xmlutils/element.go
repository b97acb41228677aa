// Package xmlutils provides the low-level XML access layer: a lightweight
// element tree decoder plus XPath helpers for format validation.
package xmlutils

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Element is one XML element: tag, attributes and child elements. Flex
// reports carry all data in attributes, so character data is not retained.
type Element struct {
	Tag      string
	Attr     map[string]string
	Children []*Element
}

// UnmarshalXML builds the element subtree from the decoder token stream.
func (e *Element) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	e.Tag = start.Name.Local
	if len(start.Attr) > 0 {
		e.Attr = make(map[string]string, len(start.Attr))
		for _, attr := range start.Attr {
			e.Attr[attr.Name.Local] = attr.Value
		}
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			e.Children = append(e.Children, child)
		case xml.EndElement:
			return nil
		}
	}
}

// Decode reads an XML document and returns its root element. Legacy HTML
// entities such as &nbsp; appear in old reports, so the full HTML entity
// table is accepted.
func Decode(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	d.Entity = xml.HTMLEntity

	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("document has no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode XML: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			root := &Element{}
			if err := root.UnmarshalXML(d, start); err != nil {
				return nil, fmt.Errorf("failed to decode XML: %w", err)
			}
			return root, nil
		}
	}
}

// DecodeBytes decodes an in-memory XML document.
func DecodeBytes(data []byte) (*Element, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile decodes an XML file.
func DecodeFile(path string) (*Element, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()
	return Decode(file)
}
