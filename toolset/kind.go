// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package toolset

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/tools/bspzip"
	"github.com/specialistvlad/srcbuild/tools/vbsp"
	"github.com/specialistvlad/srcbuild/tools/vrad"
	"github.com/specialistvlad/srcbuild/tools/vvis"
)

// Kind identifies one of the supported compiler tools.
type Kind int

const (
	Vbsp Kind = iota
	Vvis
	Vrad
	Bspzip
)

var kindKeys = [...]string{
	Vbsp:   vbsp.Key,
	Vvis:   vvis.Key,
	Vrad:   vrad.Key,
	Bspzip: bspzip.Key,
}

// Kinds returns every supported kind in pipeline order.
func Kinds() []Kind {
	return []Kind{Vbsp, Vvis, Vrad, Bspzip}
}

// String returns the catalog key of the kind, e.g. "vbsp".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindKeys[k]
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kindKeys)
}

// ParseKind maps a tool name to its kind. Matching ignores case, so both
// "vbsp" and "VBSP" are accepted.
func ParseKind(s string) (Kind, error) {
	for k, key := range kindKeys {
		if strings.EqualFold(key, s) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q, expected one of %s", s, strings.Join(kindKeys[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("invalid tool kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Spec returns the catalog of the tool. It panics for an invalid kind.
func (k Kind) Spec() *compiler.ToolSpec {
	switch k {
	case Vbsp:
		return vbsp.Tool{}.Spec()
	case Vvis:
		return vvis.Tool{}.Spec()
	case Vrad:
		return vrad.Tool{}.Spec()
	case Bspzip:
		return bspzip.Tool{}.Spec()
	default:
		panic(fmt.Sprintf("toolset: invalid kind %d", int(k)))
	}
}
