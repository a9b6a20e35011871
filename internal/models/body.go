package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Body identifies a target either by name or by NAIF code. The zero value
// is an empty name and never resolves.
type Body struct {
	name   string
	code   int
	byCode bool
}

func ByName(name string) Body {
	return Body{name: name}
}

func ByCode(code int) Body {
	return Body{code: code, byCode: true}
}

// ParseBody treats integer text as a NAIF code and anything else as a name.
func ParseBody(s string) Body {
	trimmed := strings.TrimSpace(s)
	if code, err := strconv.Atoi(trimmed); err == nil {
		return ByCode(code)
	}
	return ByName(s)
}

func (b Body) IsCode() bool { return b.byCode }

func (b Body) Name() string { return b.name }

func (b Body) Code() int { return b.code }

func (b Body) String() string {
	if b.byCode {
		return strconv.Itoa(b.code)
	}
	return fmt.Sprintf("%q", b.name)
}
