// Package flexparser turns a Flex query response document into immutable
// typed records. Parsing is schema-driven and strict: unknown elements,
// unknown attributes and malformed values all fail the parse.
package flexparser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"fjacquet/flex-csv/internal/currencyutils"
	"fjacquet/flex-csv/internal/enums"
	"fjacquet/flex-csv/internal/fields"
	"fjacquet/flex-csv/internal/flexerror"
	"fjacquet/flex-csv/internal/logging"
	"fjacquet/flex-csv/internal/models"
	"fjacquet/flex-csv/internal/schema"
	"fjacquet/flex-csv/internal/xmlutils"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		xmlutils.SetLogger(logger)
	}
}

// rootTag is the only legal document root.
const rootTag = "FlexQueryResponse"

// Parser drives schema-based parsing. A parser is immutable after New and
// safe for concurrent use.
type Parser struct {
	registry *schema.Registry
	conv     *fields.Converter
}

// Option customizes a Parser.
type Option func(*options)

type options struct {
	registry *schema.Registry
	table    *enums.Table
	dayFirst bool
}

// WithDayFirst makes slashed dates read day-before-month, matching a report
// configured with a European date format.
func WithDayFirst(dayFirst bool) Option {
	return func(o *options) { o.dayFirst = dayFirst }
}

// WithRegistry substitutes the shape registry, mainly for tests.
func WithRegistry(r *schema.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithEnumTable substitutes the enumeration table, mainly for tests.
func WithEnumTable(t *enums.Table) Option {
	return func(o *options) { o.table = t }
}

// New builds a parser over the default schema registry and enumeration
// table.
func New(opts ...Option) *Parser {
	o := options{
		registry: schema.Default,
		table:    enums.Default,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		registry: o.registry,
		conv:     fields.NewConverter(o.table, o.dayFirst),
	}
}

// Parse reads a Flex query response document from r.
func (p *Parser) Parse(r io.Reader) (*models.FlexQueryResponse, error) {
	root, err := xmlutils.Decode(r)
	if err != nil {
		return nil, err
	}
	if root.Tag != rootTag {
		return nil, &flexerror.StructuralError{
			Tag:    root.Tag,
			Reason: fmt.Sprintf("document root must be <%s>", rootTag),
		}
	}
	rec, err := p.parseElement(root)
	if err != nil {
		return nil, err
	}
	return models.NewFlexQueryResponse(rec), nil
}

// ParseBytes parses an in-memory document.
func (p *Parser) ParseBytes(data []byte) (*models.FlexQueryResponse, error) {
	return p.Parse(bytes.NewReader(data))
}

// ParseFile parses a Flex query response XML file. This is the main entry
// point for file-based conversion.
func (p *Parser) ParseFile(xmlFile string) (*models.FlexQueryResponse, error) {
	log.WithField(logging.FieldFile, xmlFile).Info("Parsing Flex query response XML file")
	file, err := os.Open(xmlFile)
	if err != nil {
		return nil, fmt.Errorf("error opening XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	resp, err := p.Parse(file)
	if err != nil {
		log.WithError(err).Error("Failed to parse Flex query response")
		return nil, err
	}
	log.WithField(logging.FieldStatements, len(resp.Statements())).Info("Successfully parsed Flex query response")
	return resp, nil
}

// ValidateFormat checks whether a file looks like a Flex query response.
func ValidateFormat(xmlFile string) (bool, error) {
	return xmlutils.HasRoot(xmlFile, rootTag)
}

// parseElement parses one data element into a record: every attribute is
// converted per its field declaration, and child elements are parsed
// recursively for the aggregate shapes.
func (p *Parser) parseElement(el *xmlutils.Element) (*models.Record, error) {
	shape, ok := p.registry.Lookup(el.Tag)
	if !ok {
		return nil, &flexerror.UnknownShapeError{Tag: el.Tag}
	}

	values := make(map[string]models.Value, len(el.Attr))
	for name, raw := range el.Attr {
		field, ok := shape.Fields.Get(name)
		if !ok {
			return nil, &flexerror.UnknownFieldError{Shape: shape.Tag, Field: name}
		}
		// Currency-typed attributes are validated against the ISO 4217
		// table before conversion, whatever their declared kind.
		if strings.Contains(strings.ToLower(name), "currency") {
			if err := currencyutils.Validate(raw); err != nil {
				return nil, &flexerror.ConversionError{Shape: shape.Tag, Field: name, Value: raw, Err: err}
			}
		}
		v, present, err := p.conv.Convert(shape.Tag, field, raw)
		if err != nil {
			return nil, err
		}
		if present {
			values[name] = v
		}
	}

	for _, name := range shape.Fields.Names() {
		field, _ := shape.Fields.Get(name)
		if field.Required {
			if _, ok := values[name]; !ok {
				return nil, &flexerror.RequiredValueMissingError{Shape: shape.Tag, Field: name}
			}
		}
	}

	var children map[string][]*models.Record
	if len(el.Children) > 0 {
		if len(shape.Children) == 0 {
			return nil, &flexerror.StructuralError{
				Tag:    el.Tag,
				Reason: "data element must not have child elements",
			}
		}
		children = make(map[string][]*models.Record, len(el.Children))
		for _, child := range el.Children {
			itemTag, ok := shape.Children[child.Tag]
			if !ok {
				return nil, &flexerror.StructuralError{
					Tag:    child.Tag,
					Reason: fmt.Sprintf("unexpected child of <%s>", el.Tag),
				}
			}
			if itemTag == "" {
				// The child is itself a data element, e.g. AccountInformation.
				rec, err := p.parseElement(child)
				if err != nil {
					return nil, err
				}
				children[child.Tag] = []*models.Record{rec}
				continue
			}
			recs, err := p.parseContainer(child)
			if err != nil {
				return nil, err
			}
			children[child.Tag] = recs
		}
	}

	return models.NewRecord(shape, values, children), nil
}

// statementsTag is the one container allowed to carry an attribute: its
// count, which must match the number of statements.
const statementsTag = "FlexStatements"

// parseContainer parses the items of a container element. Containers carry
// no data themselves and, FlexStatements aside, no attributes either; all
// items must share one tag.
func (p *Parser) parseContainer(el *xmlutils.Element) ([]*models.Record, error) {
	for name := range el.Attr {
		if el.Tag == statementsTag && name == "count" {
			continue
		}
		return nil, &flexerror.StructuralError{
			Tag:    el.Tag,
			Reason: fmt.Sprintf("unexpected attribute %q on container element", name),
		}
	}

	items, err := flattenWrappers(el)
	if err != nil {
		return nil, err
	}

	if el.Tag == statementsTag {
		raw, ok := el.Attr["count"]
		if !ok {
			return nil, &flexerror.StructuralError{
				Tag:    el.Tag,
				Reason: "missing count attribute",
			}
		}
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &flexerror.StructuralError{
				Tag:    el.Tag,
				Reason: fmt.Sprintf("count attribute %q is not a number", raw),
			}
		}
		if count != len(items) {
			return nil, &flexerror.StructuralError{
				Tag:    el.Tag,
				Reason: fmt.Sprintf("count attribute says %d items, found %d", count, len(items)),
			}
		}
	}

	tags := lo.Uniq(lo.Map(items, func(item *xmlutils.Element, _ int) string {
		return item.Tag
	}))
	if len(tags) > 1 {
		return nil, &flexerror.StructuralError{
			Tag:    el.Tag,
			Reason: fmt.Sprintf("container holds mixed element types %v", tags),
		}
	}

	recs := make([]*models.Record, 0, len(items))
	for _, item := range items {
		rec, err := p.parseElement(item)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// fxWrapperTag is the intermediate wrapper FxPositions puts around its
// lots, one per functional currency.
const fxWrapperTag = "FxLots"

// flattenWrappers returns the container's items, splicing out at most one
// FxLots wrapper. A second wrapper child, or a wrapper nested inside another
// wrapper, is malformed.
func flattenWrappers(el *xmlutils.Element) ([]*xmlutils.Element, error) {
	items := make([]*xmlutils.Element, 0, len(el.Children))
	wrappers := 0
	for _, child := range el.Children {
		if child.Tag != fxWrapperTag {
			items = append(items, child)
			continue
		}
		wrappers++
		if wrappers > 1 {
			return nil, &flexerror.StructuralError{
				Tag:    el.Tag,
				Reason: fmt.Sprintf("more than one <%s> wrapper child", fxWrapperTag),
			}
		}
		for _, grandchild := range child.Children {
			if grandchild.Tag == fxWrapperTag {
				return nil, &flexerror.StructuralError{
					Tag:    el.Tag,
					Reason: "wrapper elements nested more than one level deep",
				}
			}
			items = append(items, grandchild)
		}
	}
	return items, nil
}
