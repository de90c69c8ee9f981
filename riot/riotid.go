package riot

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalidRiotID is returned when a raw identity string does not match the
// Name#Tag shape.
var ErrInvalidRiotID = errors.New("invalid riot id, expected Name#Tag with name 3-16 and tag 3-5 characters")

// RiotID is a parsed Name#Tag identity pair.
type RiotID struct {
	GameName string
	TagLine  string
}

func (id RiotID) String() string {
	return id.GameName + "#" + id.TagLine
}

var riotIdPattern = regexp.MustCompile(`^(.+)#(.+)$`)

// ParseRiotID validates and splits a raw "Name#Tag" string.
// The name must be 3-16 characters and the tag 3-5, both bounds applied
// before trimming surrounding whitespace.
func ParseRiotID(raw string) (*RiotID, error) {
	match := riotIdPattern.FindStringSubmatch(raw)
	if match == nil {
		return nil, ErrInvalidRiotID
	}

	// Bounds count characters, not bytes, names are routinely non-ASCII.
	gameName, tagLine := match[1], match[2]
	if nameLen := utf8.RuneCountInString(gameName); nameLen < 3 || nameLen > 16 {
		return nil, ErrInvalidRiotID
	}
	if tagLen := utf8.RuneCountInString(tagLine); tagLen < 3 || tagLen > 5 {
		return nil, ErrInvalidRiotID
	}

	return &RiotID{
		GameName: strings.TrimSpace(gameName),
		TagLine:  strings.TrimSpace(tagLine),
	}, nil
}
