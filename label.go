package stocks

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-logfmt/logfmt"
)

// Label identifies an instrument by symbol with optional metadata.  Labels are marshalled to a string using a
// modified logfmt, e.g. ACME[name="Acme Corp" points=366]
type Label struct {
	symbol string
	md     map[string]string
}

// NewLabel returns a new label with the associated metadata
func NewLabel(symbol string, md map[string]string) Label {
	return Label{symbol: symbol, md: md}
}

// String marshals the label, dropping the metadata if it cannot be encoded
func (l Label) String() string {
	md, err := MarshalText(l.md)
	if err != nil {
		md = []byte{}
	}
	return l.symbol + string(md)
}

// MarshalText encodes metadata as (key, value) pairs k=v in sorted key order enclosed in [ ].  Empty metadata
// encodes to nothing.
func MarshalText(md map[string]string) ([]byte, error) {
	if len(md) == 0 {
		return []byte{}, nil
	}
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	b.WriteString("[")
	e := logfmt.NewEncoder(&b)
	for _, k := range keys {
		if err := e.EncodeKeyval(k, md[k]); err != nil {
			return nil, fmt.Errorf("failed to encode %s=%s: %v", k, md[k], err)
		}
	}
	b.WriteString("]")
	return b.Bytes(), nil
}
