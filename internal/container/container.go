// Package container builds and reads the (id, criticality, value) lists that
// make up F1AP protocol IE containers, single containers and extension
// containers. Values are kept as complete APER encodings so that every
// message can dispatch on the id itself.
package container

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
)

// Body params for SEQUENCE { protocolIEs, ... }.
const BodyParams = "valueExt"

// Marshal encodes v with APER and the given field params.
func Marshal(v interface{}, params string) (aper.OctetString, error) {
	b, err := aper.MarshalWithParams(v, params)
	if err != nil {
		return nil, err
	}
	return aper.OctetString(b), nil
}

// Unmarshal decodes b into ptr. APER panics on truncated or hostile input
// are turned into errors.
func Unmarshal(b []byte, ptr interface{}, params string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("aper panic: %v", p)
		}
	}()
	if len(b) == 0 {
		return errors.New("empty open type value")
	}
	return aper.UnmarshalWithParams(b, ptr, params)
}

// IEList accumulates protocol IEs in encode order; the first error stops
// further appends and is reported by Err.
type IEList struct {
	list []f1apType.ProtocolIEField
	err  error
}

func (l *IEList) Add(id int64, criticality aper.Enumerated, value interface{}, params string) {
	if l.err != nil {
		return
	}
	b, err := Marshal(value, params)
	if err != nil {
		l.err = errors.Wrapf(err, "encode IE %d", id)
		return
	}
	l.list = append(l.list, NewField(id, criticality, b))
}

func (l *IEList) Err() error {
	return l.err
}

func (l *IEList) Len() int {
	return len(l.list)
}

// Fields returns the accumulated IEs, or nil if an Add failed.
func (l *IEList) Fields() []f1apType.ProtocolIEField {
	if l.err != nil {
		return nil
	}
	return l.list
}

func (l *IEList) Container() f1apType.ProtocolIEContainer {
	return f1apType.ProtocolIEContainer{List: l.Fields()}
}

func NewField(id int64, criticality aper.Enumerated, value aper.OctetString) f1apType.ProtocolIEField {
	var ie f1apType.ProtocolIEField
	ie.Id.Value = id
	ie.Criticality.Value = criticality
	ie.Value = value
	return ie
}

// ExtList is the extension container counterpart of IEList.
type ExtList struct {
	list []f1apType.ProtocolExtensionField
	err  error
}

func (l *ExtList) Add(id int64, criticality aper.Enumerated, value interface{}, params string) {
	if l.err != nil {
		return
	}
	b, err := Marshal(value, params)
	if err != nil {
		l.err = errors.Wrapf(err, "encode extension %d", id)
		return
	}
	var ext f1apType.ProtocolExtensionField
	ext.Id.Value = id
	ext.Criticality.Value = criticality
	ext.ExtensionValue = b
	l.list = append(l.list, ext)
}

func (l *ExtList) Err() error {
	return l.err
}

// Container returns nil when nothing was added: an extension container
// must hold at least one field.
func (l *ExtList) Container() *f1apType.ProtocolExtensionContainer {
	if l.err != nil || len(l.list) == 0 {
		return nil
	}
	return &f1apType.ProtocolExtensionContainer{List: l.list}
}
